// internal/system/player_system.go
package system

import (
	"math"

	"go-layer-dive/internal/component"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/entity"
	"go-layer-dive/internal/utils"
)

// turnRate is how quickly the player sprite turns toward its heading.
const turnRate = 12.0

// PlayerSystem moves the player on the active layer plane.
type PlayerSystem struct {
	ecs    *entity.ECS
	stack  *LayerStack
	tuning config.PlayerTuning
	bounds float64
}

func NewPlayerSystem(ecs *entity.ECS, stack *LayerStack, tuning config.PlayerTuning, bounds float64) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, stack: stack, tuning: tuning, bounds: bounds}
}

// Spawn resets the player onto the active layer anchor.
func (s *PlayerSystem) Spawn(pos component.Vec3) {
	*s.ecs.Player = component.Player{
		Position:  pos,
		MoveSpeed: s.tuning.BaseSpeed,
	}
}

func (s *PlayerSystem) Position() component.Vec3 {
	return s.ecs.Player.Position
}

func (s *PlayerSystem) SetPosition(pos component.Vec3) {
	s.ecs.Player.Position = pos
}

// SetDirection stores the input direction; it is normalised here.
func (s *PlayerSystem) SetDirection(x, y float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		s.ecs.Player.Direction = component.Velocity{}
		return
	}
	s.ecs.Player.Direction = component.Velocity{X: x / l, Y: y / l}
}

// AddBoost grants a temporary speed bonus.
func (s *PlayerSystem) AddBoost() {
	if s.tuning.BoostAmount <= 0 {
		return
	}
	p := s.ecs.Player
	p.Boosts = append(p.Boosts, component.SpeedBoost{Amount: s.tuning.BoostAmount, Remaining: s.tuning.BoostDuration})
	p.MoveSpeed = s.speed()
}

func (s *PlayerSystem) Update(deltaTime float64) {
	p := s.ecs.Player
	s.expireBoosts(deltaTime)

	run := s.ecs.Run
	if !run.Running() || run.InputSuspended {
		p.Velocity = component.Velocity{}
		return
	}

	p.Velocity = component.Velocity{X: p.Direction.X * p.MoveSpeed, Y: p.Direction.Y * p.MoveSpeed}
	p.Position.X += p.Velocity.X * deltaTime
	p.Position.Y += p.Velocity.Y * deltaTime
	if p.Direction != (component.Velocity{}) {
		p.Facing = utils.LerpAngle(p.Facing, math.Atan2(p.Direction.Y, p.Direction.X), math.Min(1, turnRate*deltaTime))
	}

	// keep the player on the layer disk
	anchor := s.stack.Anchor()
	if d := p.Position.PlanarDistance(anchor); d > s.bounds {
		k := s.bounds / d
		p.Position.X = anchor.X + (p.Position.X-anchor.X)*k
		p.Position.Y = anchor.Y + (p.Position.Y-anchor.Y)*k
	}
}

func (s *PlayerSystem) expireBoosts(deltaTime float64) {
	p := s.ecs.Player
	kept := p.Boosts[:0]
	for _, b := range p.Boosts {
		b.Remaining -= deltaTime
		if b.Remaining > 0 {
			kept = append(kept, b)
		}
	}
	p.Boosts = kept
	p.MoveSpeed = s.speed()
}

func (s *PlayerSystem) speed() float64 {
	speed := s.tuning.BaseSpeed
	for _, b := range s.ecs.Player.Boosts {
		speed += b.Amount
	}
	return math.Min(speed, s.tuning.MaxSpeed)
}
