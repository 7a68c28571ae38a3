package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-layer-dive/internal/component"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/defs"
	"go-layer-dive/internal/entity"
	"go-layer-dive/internal/event"
	"go-layer-dive/internal/utils"
)

type fakeCamera struct {
	targets   []component.Vec3
	durations []float64
}

func (c *fakeCamera) FollowDepthTarget(pos component.Vec3, duration float64) {
	c.targets = append(c.targets, pos)
	c.durations = append(c.durations, duration)
}

func (c *fakeCamera) Forward() component.Vec3 { return component.Vec3{Z: 1} }

type fakeSound struct {
	played []defs.SoundID
}

func (s *fakeSound) PlaySound(id defs.SoundID) { s.played = append(s.played, id) }

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func recordAll(d *event.Dispatcher) *eventRecorder {
	r := &eventRecorder{}
	for _, t := range []event.EventType{
		event.LayerShifted, event.ShiftFailed, event.TimeWarning,
		event.TimeExpired, event.RewardCollected,
	} {
		d.Subscribe(t, r)
	}
	return r
}

func testPool(t *testing.T) *defs.Pool {
	t.Helper()
	pool, err := defs.NewPool(
		[]defs.LayerTemplate{
			{Key: "a", Name: "A", Radius: 60, NoiseScale: 0.05},
			{Key: "b", Name: "B", Radius: 60, NoiseScale: 0.05},
		},
		[]defs.ClusterTemplate{
			{Key: "charge", Value: 1, PickupRadius: 3},
		},
	)
	require.NoError(t, err)
	return pool
}

// world bundles the core services the way the run context wires them.
type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	events     *eventRecorder
	stack      *LayerStack
	camera     *fakeCamera
	player     *PlayerSystem
	transition *DiveTransition
	timer      *RunTimer
	ledger     *ResourceLedger
	economy    *Economy
	tuning     config.Tuning
}

func newWorld(t *testing.T) *world {
	t.Helper()
	tuning := config.DefaultTuning()
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		camera:     &fakeCamera{},
		tuning:     tuning,
	}
	w.events = recordAll(w.dispatcher)
	w.stack = NewLayerStack(w.ecs, testPool(t), utils.NewPRNGService(1), tuning.Stack)
	w.player = NewPlayerSystem(w.ecs, w.stack, tuning.Player, 60)
	w.transition = NewDiveTransition(w.ecs, w.stack, w.camera, w.player, w.dispatcher, tuning.Stack.ShiftDuration)
	w.timer = NewRunTimer(w.ecs, w.transition, w.dispatcher, tuning.Timer.WarningThreshold)
	w.ledger = NewResourceLedger(w.ecs)
	w.economy = NewEconomy(tuning.Economy)
	w.ecs.Run.Phase = component.RunActive
	return w
}

func (w *world) generate(t *testing.T, count, rewards int) {
	t.Helper()
	require.NoError(t, w.stack.GenerateInitialStack(count, rewards))
	w.player.Spawn(w.stack.Anchor())
}

// finishShift ticks until the transition is idle again.
func (w *world) finishShift() {
	for i := 0; i < 100 && w.transition.IsShifting(); i++ {
		w.transition.Update(0.25)
	}
}
