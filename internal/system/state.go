// internal/system/state.go
package system

import (
	"go-layer-dive/internal/component"
	"go-layer-dive/internal/entity"
	"go-layer-dive/internal/event"
	"go-layer-dive/internal/interfaces"
)

// StateSystem advances the run phases: intro countdown, game time and the
// hand-off to game over when the layer timer runs out.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.TimeExpired, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.TimeExpired && s.ecs.Run.Phase == component.RunActive {
		s.ecs.Run.Phase = component.RunOver
		s.gameContext.EndRun()
	}
}

func (s *StateSystem) Update(deltaTime float64) {
	run := s.ecs.Run
	if run.Paused {
		return
	}
	switch run.Phase {
	case component.RunIntro:
		run.IntroTimer -= deltaTime
		if run.IntroTimer <= 0 {
			run.IntroTimer = 0
			s.gameContext.ActivateRun()
		}
	case component.RunActive:
		run.GameTime += deltaTime
	}
}
