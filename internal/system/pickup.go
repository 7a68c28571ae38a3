// internal/system/pickup.go
package system

import (
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/defs"
	"go-layer-dive/internal/entity"
	"go-layer-dive/internal/event"
	"go-layer-dive/internal/interfaces"
)

// PickupSystem collects reward clusters the player touches on the active layer.
type PickupSystem struct {
	ecs             *entity.ECS
	stack           *LayerStack
	ledger          *ResourceLedger
	player          *PlayerSystem
	shift           ShiftState
	sound           interfaces.SoundPlayer
	eventDispatcher *event.Dispatcher
}

func NewPickupSystem(ecs *entity.ECS, stack *LayerStack, ledger *ResourceLedger, player *PlayerSystem, shift ShiftState, sound interfaces.SoundPlayer, eventDispatcher *event.Dispatcher) *PickupSystem {
	return &PickupSystem{
		ecs:             ecs,
		stack:           stack,
		ledger:          ledger,
		player:          player,
		shift:           shift,
		sound:           sound,
		eventDispatcher: eventDispatcher,
	}
}

func (s *PickupSystem) Update(deltaTime float64) {
	if !s.ecs.Run.Running() || s.shift.IsShifting() {
		return
	}
	layer := s.stack.Active()
	if layer == nil {
		return
	}

	pos := s.player.Position()
	// copy: CollectCluster edits layer.Clusters
	ids := append(layer.Clusters[:0:0], layer.Clusters...)
	for _, id := range ids {
		cluster, ok := s.stack.Cluster(id)
		if !ok || pos.PlanarDistance(cluster.Position) > cluster.Radius+config.PlayerRadius {
			continue
		}
		collected, _ := s.stack.CollectCluster(id)
		s.ledger.CollectReward(collected.Value)
		s.player.AddBoost()
		s.sound.PlaySound(defs.SoundCollectPickup)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.RewardCollected,
			Data: event.RewardCollectedData{Value: collected.Value, Balance: s.ledger.Current()},
		})
	}
}
