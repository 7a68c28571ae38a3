// internal/entity/ecs.go
package entity

import (
	"go-layer-dive/internal/component"
	"go-layer-dive/internal/types"
)

// ECS is the world store shared by all systems. It is only touched from the
// game loop goroutine.
type ECS struct {
	NextID   types.EntityID
	Layers   map[types.EntityID]*component.Layer
	Clusters map[types.EntityID]*component.RewardCluster
	Fades    map[types.EntityID]*component.LayerFade
	Player   *component.Player
	Clock    *component.RunClock
	Run      *component.RunState
}

func NewECS() *ECS {
	return &ECS{
		NextID:   1,
		Layers:   make(map[types.EntityID]*component.Layer),
		Clusters: make(map[types.EntityID]*component.RewardCluster),
		Fades:    make(map[types.EntityID]*component.LayerFade),
		Player:   &component.Player{},
		Clock:    &component.RunClock{Phase: component.ClockStopped},
		Run:      &component.RunState{Phase: component.RunIdle, Depth: 1},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// ClearWorld drops every layer, cluster and fade. IDs keep increasing.
func (ecs *ECS) ClearWorld() {
	ecs.Layers = make(map[types.EntityID]*component.Layer)
	ecs.Clusters = make(map[types.EntityID]*component.RewardCluster)
	ecs.Fades = make(map[types.EntityID]*component.LayerFade)
}
