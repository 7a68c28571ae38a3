// internal/system/run_timer.go
package system

import (
	"go-layer-dive/internal/component"
	"go-layer-dive/internal/entity"
	"go-layer-dive/internal/event"
)

// ShiftState is the part of the transition the timer needs.
type ShiftState interface {
	IsShifting() bool
}

// RunTimer counts the per-layer budget down and reports expiry once per depth.
type RunTimer struct {
	ecs              *entity.ECS
	shift            ShiftState
	eventDispatcher  *event.Dispatcher
	warningThreshold float64
}

func NewRunTimer(ecs *entity.ECS, shift ShiftState, eventDispatcher *event.Dispatcher, warningThreshold float64) *RunTimer {
	return &RunTimer{
		ecs:              ecs,
		shift:            shift,
		eventDispatcher:  eventDispatcher,
		warningThreshold: warningThreshold,
	}
}

// Reset starts a new countdown from budget.
func (t *RunTimer) Reset(budget float64) {
	*t.ecs.Clock = component.RunClock{
		Phase:         component.ClockRunning,
		TimeRemaining: budget,
		Budget:        budget,
	}
}

// Stop freezes the clock until the next Reset.
func (t *RunTimer) Stop() {
	t.ecs.Clock.Phase = component.ClockStopped
}

// Update advances the countdown. It does nothing while the run is paused or
// inactive, while a shift is in flight, or once the clock has expired.
func (t *RunTimer) Update(deltaTime float64) {
	clock := t.ecs.Clock
	if clock.Phase != component.ClockRunning && clock.Phase != component.ClockWarned {
		return
	}
	if !t.ecs.Run.Running() || t.shift.IsShifting() {
		return
	}

	clock.TimeRemaining -= deltaTime
	if clock.TimeRemaining <= 0 {
		clock.TimeRemaining = 0
		clock.Phase = component.ClockExpired
		t.eventDispatcher.Dispatch(event.Event{Type: event.TimeExpired})
		return
	}

	if !clock.HasWarned && clock.TimeRemaining <= t.warningThreshold {
		clock.HasWarned = true
		clock.Phase = component.ClockWarned
		t.eventDispatcher.Dispatch(event.Event{Type: event.TimeWarning, Data: clock.TimeRemaining})
	}
}
