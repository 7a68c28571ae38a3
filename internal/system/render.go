// internal/system/render.go
package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-layer-dive/internal/component"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/defs"
	"go-layer-dive/internal/entity"
	"go-layer-dive/internal/utils"
	"go-layer-dive/pkg/render"
)

const layerTextureSize = 256

// RenderSystem рисует слои, кластеры и игрока
type RenderSystem struct {
	ecs       *entity.ECS
	stack     *LayerStack
	camera    *CameraSystem
	pool      *defs.Pool
	projector render.Projector
	textures  map[defs.LayerTemplateID]*ebiten.Image
}

func NewRenderSystem(ecs *entity.ECS, stack *LayerStack, camera *CameraSystem, pool *defs.Pool) *RenderSystem {
	return &RenderSystem{
		ecs:       ecs,
		stack:     stack,
		camera:    camera,
		pool:      pool,
		projector: render.NewProjector(config.FocalLength, config.ScreenWidth, config.ScreenHeight),
		textures:  make(map[defs.LayerTemplateID]*ebiten.Image),
	}
}

// Draw paints the stack far to near so the active layer ends up on top.
func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	cam := s.camera.Position()
	layers := s.stack.Sorted()
	for i := len(layers) - 1; i >= 0; i-- {
		layer := layers[i]
		if layer.Opacity <= 0 {
			continue
		}
		s.drawLayer(screen, layer, cam)
		s.drawClusters(screen, layer, cam, gameTime)
	}
	s.drawPlayer(screen, cam)
}

func (s *RenderSystem) drawLayer(screen *ebiten.Image, layer *component.Layer, cam component.Vec3) {
	tmpl, ok := s.pool.Layer(layer.TemplateID)
	if !ok {
		return
	}
	pos := layer.Anchor.Add(layer.Sway)
	sx, sy, scale, ok := s.projector.Project(pos.X, pos.Y, pos.Z, cam.X, cam.Y, cam.Z)
	if !ok {
		return
	}
	radius := tmpl.Radius * scale
	if radius < 1 {
		return
	}

	tex := s.texture(tmpl)
	op := &ebiten.DrawImageOptions{}
	k := 2 * radius / layerTextureSize
	op.GeoM.Translate(-layerTextureSize/2, -layerTextureSize/2)
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.Scale(float32(layer.Brightness), float32(layer.Brightness), float32(layer.Brightness), 1)
	op.ColorScale.ScaleAlpha(float32(layer.Opacity))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tex, op)

	if layer.Phase == component.LayerActive {
		rim := render.WithAlpha(render.Shade(tmpl.Tint.RGBA(), 1, 1), layer.Opacity)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), config.StrokeWidth, rim, true)
	}
}

func (s *RenderSystem) drawClusters(screen *ebiten.Image, layer *component.Layer, cam component.Vec3, gameTime float64) {
	for _, id := range layer.Clusters {
		cluster, ok := s.ecs.Clusters[id]
		if !ok {
			continue
		}
		p := cluster.Position.Add(layer.Sway)
		sx, sy, scale, ok := s.projector.Project(p.X, p.Y, p.Z, cam.X, cam.Y, cam.Z)
		if !ok {
			continue
		}
		// пульсация как у руды
		phase := gameTime * cluster.PulseRate * math.Pi / 5
		pulseRadius := cluster.Radius * scale * (1 + 0.1*math.Sin(phase))
		c := cluster.Color
		c.A = uint8(128 + 64*math.Sin(phase))
		c = render.WithAlpha(c, layer.Opacity)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(pulseRadius), c, true)
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, cam component.Vec3) {
	player := s.ecs.Player
	if player == nil || s.stack.Active() == nil {
		return
	}
	p := player.Position
	sx, sy, scale, ok := s.projector.Project(p.X, p.Y, p.Z, cam.X, cam.Y, cam.Z)
	if !ok {
		return
	}
	r := config.PlayerRadius * scale
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r+config.StrokeWidth), config.IndicatorStroke, true)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r), config.PlayerColor, true)

	nose := r * 1.8
	ex := sx + math.Cos(player.Facing)*nose
	ey := sy - math.Sin(player.Facing)*nose
	vector.StrokeLine(screen, float32(sx), float32(sy), float32(ex), float32(ey), config.StrokeWidth, config.IndicatorStroke, true)
}

func (s *RenderSystem) texture(tmpl defs.LayerTemplate) *ebiten.Image {
	if img, ok := s.textures[tmpl.ID]; ok {
		return img
	}
	noise := utils.NewNoiseField(tmpl.NoiseSeed)
	src := render.NoiseDisk(layerTextureSize, tmpl.Tint.RGBA(), tmpl.Radius*tmpl.NoiseScale, noise.Sample2D)
	img := ebiten.NewImageFromImage(src)
	s.textures[tmpl.ID] = img
	return img
}
