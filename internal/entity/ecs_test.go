package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-layer-dive/internal/component"
)

func TestNewEntityIsMonotonic(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	assert.NotZero(t, a)
	assert.Greater(t, b, a)
}

func TestClearWorldKeepsIDsIncreasing(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Layers[id] = &component.Layer{ID: id}
	ecs.ClearWorld()
	assert.Empty(t, ecs.Layers)
	assert.Greater(t, ecs.NewEntity(), id)
	assert.Equal(t, 1, ecs.Run.Depth)
}
