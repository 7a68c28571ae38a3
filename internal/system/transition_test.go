package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-layer-dive/internal/component"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/event"
)

func TestRequestShiftStartsTransition(t *testing.T) {
	w := newWorld(t)
	w.generate(t, config.MaxLayers, 2)
	snapshot := w.stack.Sorted()
	w.player.SetPosition(component.Vec3{X: 4, Y: 5, Z: 0})

	started, err := w.transition.RequestShift(false)
	require.NoError(t, err)
	require.True(t, started)
	assert.True(t, w.transition.IsShifting())
	assert.Equal(t, config.MaxLayers+1, w.stack.Len())

	next := snapshot[1]
	assert.Equal(t, component.Vec3{X: 4, Y: 5, Z: next.Anchor.Z}, w.player.Position(), "player jumps to the new depth at once")
	require.Len(t, w.camera.targets, 1)
	assert.Equal(t, next.Anchor.Sub(component.Vec3{Z: config.CameraDistance}), w.camera.targets[0])
	assert.Equal(t, config.ShiftDuration, w.camera.durations[0])

	assert.Equal(t, component.LayerRetiring, snapshot[0].Phase)
	assert.Equal(t, component.LayerActive, next.Phase)
	assert.Same(t, snapshot[0], w.stack.Active(), "active pointer moves only at commit")

	bottom, ok := w.transition.Bottom()
	require.True(t, ok)
	assert.Equal(t, component.LayerQueued, bottom.Phase)
	assert.Zero(t, bottom.Opacity)
}

func TestShiftWhileShiftingIsDropped(t *testing.T) {
	w := newWorld(t)
	w.generate(t, config.MaxLayers, 1)

	started, err := w.transition.RequestShift(false)
	require.NoError(t, err)
	require.True(t, started)
	layers, clusters, next := len(w.ecs.Layers), len(w.ecs.Clusters), w.ecs.NextID
	pos := w.player.Position()

	started, err = w.transition.RequestShift(true)
	assert.NoError(t, err)
	assert.False(t, started)
	assert.Len(t, w.ecs.Layers, layers)
	assert.Len(t, w.ecs.Clusters, clusters)
	assert.Equal(t, next, w.ecs.NextID)
	assert.Equal(t, pos, w.player.Position())
	assert.Len(t, w.camera.targets, 1)

	w.finishShift()
	require.Equal(t, 1, w.events.count(event.LayerShifted))
	assert.Equal(t, event.LayerShiftedData{Penalized: false}, w.events.events[0].Data)
}

func TestShiftCommitsAfterDuration(t *testing.T) {
	w := newWorld(t)
	w.generate(t, config.MaxLayers, 2)
	snapshot := w.stack.Sorted()

	_, err := w.transition.RequestShift(true)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		w.transition.Update(0.25)
		assert.Equal(t, config.MaxLayers+1, w.stack.Len())
		assert.Zero(t, w.events.count(event.LayerShifted))
	}
	w.transition.Update(0.25)

	require.Equal(t, 1, w.events.count(event.LayerShifted))
	assert.Equal(t, event.LayerShiftedData{Penalized: true}, w.events.events[0].Data)
	assert.Equal(t, config.MaxLayers, w.stack.Len())
	assert.Equal(t, TransitionSettling, w.transition.Phase())
	assert.True(t, w.transition.IsShifting())

	sorted := w.stack.Sorted()
	assert.Same(t, snapshot[1], w.stack.Active())
	assert.Same(t, sorted[0], w.stack.Active())
	assert.Equal(t, snapshot[1].Anchor, w.stack.Anchor())
	_, ok := w.stack.Layer(snapshot[0].ID)
	assert.False(t, ok, "old active layer is retired")
	for _, cid := range snapshot[0].Clusters {
		_, ok := w.ecs.Clusters[cid]
		assert.False(t, ok)
	}

	for i, l := range sorted {
		assert.InDelta(t, w.stack.BrightnessAt(i), l.Brightness, 1e-9, "layer %d", i)
		if i > 0 {
			assert.Equal(t, component.LayerIdle, l.Phase)
		}
	}
	assert.Equal(t, config.SettledOpacity, sorted[len(sorted)-1].Opacity)
	assert.Equal(t, config.InitialOpacity, sorted[1].Opacity, "existing layers keep their opacity")
	assert.Empty(t, w.ecs.Fades)

	w.transition.Update(0.25)
	assert.False(t, w.transition.IsShifting())
}

func TestShiftTweensMidway(t *testing.T) {
	w := newWorld(t)
	w.generate(t, config.MaxLayers, 0)
	second := w.stack.Sorted()[1]
	from := second.Brightness

	_, err := w.transition.RequestShift(false)
	require.NoError(t, err)
	bottom, _ := w.transition.Bottom()

	w.transition.Update(config.ShiftDuration / 2)
	assert.InDelta(t, (from+1.0)/2, second.Brightness, 1e-9)
	assert.InDelta(t, config.SettledOpacity/2, bottom.Opacity, 1e-9)
}

func TestShiftWithSingleLayerFails(t *testing.T) {
	w := newWorld(t)
	w.generate(t, 1, 1)
	active := w.stack.Active()

	started, err := w.transition.RequestShift(false)
	assert.False(t, started)
	require.ErrorIs(t, err, ErrNoNextLayer)
	assert.False(t, w.transition.IsShifting())
	assert.Equal(t, 1, w.stack.Len())
	assert.Same(t, active, w.stack.Active())
	assert.Len(t, w.ecs.Layers, 1)
	assert.Equal(t, 1, w.events.count(event.ShiftFailed))
	assert.Empty(t, w.camera.targets)
}

func TestStackInvariantAcrossManyShifts(t *testing.T) {
	w := newWorld(t)
	w.generate(t, config.MaxLayers, 1)

	for dive := 0; dive < 12; dive++ {
		started, err := w.transition.RequestShift(dive%3 == 0)
		require.NoError(t, err)
		require.True(t, started)
		for w.transition.IsShifting() {
			w.transition.Update(0.1)
			n := w.stack.Len()
			assert.True(t, n == config.MaxLayers || n == config.MaxLayers+1, "stack length %d", n)
			sorted := w.stack.Sorted()
			for i := 1; i < len(sorted); i++ {
				assert.Less(t, sorted[i-1].Depth, sorted[i].Depth)
			}
		}
		assert.Same(t, w.stack.Sorted()[0], w.stack.Active())
		assert.Equal(t, dive+2, w.stack.Active().Depth)
		assert.Equal(t, w.stack.Active().Anchor.Z, w.player.Position().Z)
	}
	assert.Equal(t, 12, w.events.count(event.LayerShifted))
}

func TestCanShift(t *testing.T) {
	w := newWorld(t)
	assert.False(t, w.transition.CanShift())
	w.generate(t, config.MaxLayers, 0)
	assert.True(t, w.transition.CanShift())
	_, err := w.transition.RequestShift(false)
	require.NoError(t, err)
	assert.False(t, w.transition.CanShift())
}
