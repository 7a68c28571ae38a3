// internal/event/types.go
package event

const (
	RunStarted      EventType = "RunStarted"      // Слои сгенерированы, идёт интро
	RunActivated    EventType = "RunActivated"    // Интро закончилось, таймер пошёл
	RunEnded        EventType = "RunEnded"        // Data: RunSummary
	DiveStarted     EventType = "DiveStarted"     // Data: DiveInfo
	DivePenalized   EventType = "DivePenalized"   // Нырок без достаточного заряда
	LayerShifted    EventType = "LayerShifted"    // Data: LayerShiftedData
	ShiftFailed     EventType = "ShiftFailed"     // Data: error
	TimeWarning     EventType = "TimeWarning"     // Data: float64 seconds left
	TimeExpired     EventType = "TimeExpired"     // Таймер слоя истёк
	RewardCollected EventType = "RewardCollected" // Data: RewardCollectedData
)

// DiveInfo accompanies DiveStarted.
type DiveInfo struct {
	FromDepth int
	Penalized bool
}

// LayerShiftedData accompanies LayerShifted.
type LayerShiftedData struct {
	Penalized bool
}

// RewardCollectedData accompanies RewardCollected.
type RewardCollectedData struct {
	Value   int
	Balance int
}

// RunSummary accompanies RunEnded.
type RunSummary struct {
	Depth int
	Score int
}
