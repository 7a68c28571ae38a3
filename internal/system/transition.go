// internal/system/transition.go
package system

import (
	"errors"
	"log"

	"go-layer-dive/internal/component"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/entity"
	"go-layer-dive/internal/event"
	"go-layer-dive/internal/interfaces"
	"go-layer-dive/internal/types"
	"go-layer-dive/internal/utils"
)

// ErrNoNextLayer is returned when the stack has no layer to dive into.
var ErrNoNextLayer = errors.New("no next layer to dive into")

// TransitionPhase is the phase of a dive between two layers.
type TransitionPhase int

const (
	TransitionIdle TransitionPhase = iota
	TransitionShifting
	TransitionSettling // one tick after commit
)

func (p TransitionPhase) String() string {
	switch p {
	case TransitionIdle:
		return "idle"
	case TransitionShifting:
		return "shifting"
	case TransitionSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// DiveTransition moves the run from the active layer to the next one over a
// fixed duration. It is the only code that moves the stack's active pointer.
type DiveTransition struct {
	ecs             *entity.ECS
	stack           *LayerStack
	camera          interfaces.CameraMover
	player          interfaces.PlayerMover
	eventDispatcher *event.Dispatcher
	duration        float64

	phase     TransitionPhase
	elapsed   float64
	penalized bool
	outgoing  types.EntityID
	incoming  types.EntityID
	bottom    types.EntityID
}

func NewDiveTransition(ecs *entity.ECS, stack *LayerStack, camera interfaces.CameraMover, player interfaces.PlayerMover, eventDispatcher *event.Dispatcher, duration float64) *DiveTransition {
	return &DiveTransition{
		ecs:             ecs,
		stack:           stack,
		camera:          camera,
		player:          player,
		eventDispatcher: eventDispatcher,
		duration:        duration,
	}
}

// IsShifting is true from the start of a shift until the settle tick is over.
func (t *DiveTransition) IsShifting() bool {
	return t.phase != TransitionIdle
}

func (t *DiveTransition) Phase() TransitionPhase {
	return t.phase
}

// CanShift reports whether RequestShift would start a shift right now.
func (t *DiveTransition) CanShift() bool {
	return t.phase == TransitionIdle && t.stack.Len() >= 2
}

// RequestShift starts a shift. While a shift is in flight the request is
// dropped and started is false with a nil error. Content errors leave the
// stack as it was.
func (t *DiveTransition) RequestShift(penalized bool) (started bool, err error) {
	if t.phase != TransitionIdle {
		return false, nil
	}

	snapshot := t.stack.Sorted()
	bottom, err := t.stack.GenerateBottomLayer()
	if err != nil {
		t.fail(err)
		return false, err
	}
	if len(snapshot) < 2 {
		t.stack.RetireLayer(bottom.ID)
		t.fail(ErrNoNextLayer)
		return false, ErrNoNextLayer
	}

	outgoing, next := snapshot[0], snapshot[1]
	target := next.Anchor.Sub(t.camera.Forward().Scale(config.CameraDistance))
	t.camera.FollowDepthTarget(target, t.duration)

	for i, layer := range snapshot {
		t.ecs.Fades[layer.ID] = &component.LayerFade{
			Brightness: component.Tween{From: layer.Brightness, To: t.stack.BrightnessAt(i - 1), Duration: t.duration},
		}
	}
	t.ecs.Fades[bottom.ID] = &component.LayerFade{
		Brightness: component.Tween{From: bottom.Brightness, To: bottom.Brightness, Duration: t.duration},
		Opacity:    &component.Tween{From: 0, To: config.SettledOpacity, Duration: t.duration},
	}

	outgoing.Phase = component.LayerRetiring
	next.Phase = component.LayerActive

	pos := t.player.Position()
	pos.Z = next.Anchor.Z
	t.player.SetPosition(pos)

	t.phase = TransitionShifting
	t.elapsed = 0
	t.penalized = penalized
	t.outgoing = outgoing.ID
	t.incoming = next.ID
	t.bottom = bottom.ID
	return true, nil
}

// Update advances the tweens and commits the shift once the duration is up.
func (t *DiveTransition) Update(deltaTime float64) {
	switch t.phase {
	case TransitionShifting:
		t.elapsed += deltaTime
		t.applyFades(t.elapsed)
		if t.elapsed >= t.duration {
			t.commit()
		}
	case TransitionSettling:
		t.phase = TransitionIdle
	}
}

func (t *DiveTransition) applyFades(elapsed float64) {
	for id, fade := range t.ecs.Fades {
		layer, ok := t.ecs.Layers[id]
		if !ok {
			continue
		}
		fade.Brightness.Timer = elapsed
		layer.Brightness = utils.Lerp(fade.Brightness.From, fade.Brightness.To, utils.EaseInOutCubic(fade.Brightness.Progress()))
		if fade.Opacity != nil {
			fade.Opacity.Timer = elapsed
			layer.Opacity = utils.Lerp(fade.Opacity.From, fade.Opacity.To, utils.EaseInOutCubic(fade.Opacity.Progress()))
		}
	}
}

// commit makes the depth change visible to the rest of the game in one step.
func (t *DiveTransition) commit() {
	t.stack.setActive(t.incoming)
	t.stack.RetireLayer(t.outgoing)
	if bottom, ok := t.ecs.Layers[t.bottom]; ok {
		bottom.Phase = component.LayerIdle
	}
	t.stack.resort()
	for id, fade := range t.ecs.Fades {
		if layer, ok := t.ecs.Layers[id]; ok {
			layer.Brightness = fade.Brightness.To
			if fade.Opacity != nil {
				layer.Opacity = fade.Opacity.To
			}
		}
		delete(t.ecs.Fades, id)
	}

	t.phase = TransitionSettling
	t.eventDispatcher.Dispatch(event.Event{
		Type: event.LayerShifted,
		Data: event.LayerShiftedData{Penalized: t.penalized},
	})
}

// Bottom returns the layer queued by the last shift.
func (t *DiveTransition) Bottom() (*component.Layer, bool) {
	return t.stack.Layer(t.bottom)
}

// Reset abandons any shift in progress. Only used when the run is torn down.
func (t *DiveTransition) Reset() {
	t.phase = TransitionIdle
	t.elapsed = 0
	t.outgoing, t.incoming, t.bottom = 0, 0, 0
}

func (t *DiveTransition) fail(err error) {
	log.Printf("DiveTransition: shift aborted: %v", err)
	t.eventDispatcher.Dispatch(event.Event{Type: event.ShiftFailed, Data: err})
}
