package component

// ClockPhase — состояние таймера слоя
type ClockPhase int

const (
	ClockStopped ClockPhase = iota
	ClockRunning
	ClockWarned
	ClockExpired
)

func (p ClockPhase) String() string {
	switch p {
	case ClockStopped:
		return "stopped"
	case ClockRunning:
		return "running"
	case ClockWarned:
		return "warned"
	case ClockExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// RunClock is the per-layer countdown.
type RunClock struct {
	Phase         ClockPhase
	TimeRemaining float64
	Budget        float64
	HasWarned     bool
}
