// internal/system/visual_effect.go
package system

import (
	"go-layer-dive/internal/component"
	"go-layer-dive/internal/entity"
	"go-layer-dive/internal/utils"
)

const (
	swayAmplitude = 6.0  // world units
	swayFrequency = 0.15 // noise samples per second
	swaySettle    = 4.0  // how fast a non-idle layer returns to rest
)

// VisualEffectSystem drives the ambient drift of layers waiting behind the
// active one. It never touches anchors, only the visual Sway offset.
type VisualEffectSystem struct {
	ecs   *entity.ECS
	noise *utils.NoiseField
	time  float64
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, noise *utils.NoiseField) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, noise: noise}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	s.time += deltaTime
	t := s.time * swayFrequency
	settle := utils.Clamp(swaySettle*deltaTime, 0, 1)

	for id, layer := range s.ecs.Layers {
		if layer.Phase != component.LayerIdle {
			layer.Sway = layer.Sway.Lerp(component.Vec3{}, settle)
			continue
		}
		// each layer reads its own stretch of the noise line
		offset := float64(id) * 17.31
		target := component.Vec3{
			X: s.noise.Signed1D(t+offset) * swayAmplitude,
			Y: s.noise.Signed1D(t+offset+101.7) * swayAmplitude,
		}
		layer.Sway = layer.Sway.Lerp(target, settle)
	}
}
