package component

// RunPhase — фаза текущего забега
type RunPhase int

const (
	RunIdle    RunPhase = iota // no run in progress (menus, results)
	RunIntro                   // layers generated, countdown not started yet
	RunActive                  // countdown and dives enabled
	RunOver                    // timer expired, waiting for the results hand-off
)

func (p RunPhase) String() string {
	switch p {
	case RunIdle:
		return "idle"
	case RunIntro:
		return "intro"
	case RunActive:
		return "active"
	case RunOver:
		return "over"
	default:
		return "unknown"
	}
}

// RunState holds the per-run flags that gate the countdown and input.
type RunState struct {
	Phase          RunPhase
	Depth          int // depth index, starts at 1
	Paused         bool
	InputSuspended bool
	IntroTimer     float64
	GameTime       float64 // seconds spent in RunActive, shown on the HUD
	Economy        EconomyState
}

// Running reports whether time-driven systems may advance this tick.
func (r *RunState) Running() bool {
	return r.Phase == RunActive && !r.Paused
}
