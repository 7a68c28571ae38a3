// internal/system/camera.go
package system

import (
	"go-layer-dive/internal/component"
	"go-layer-dive/internal/utils"
)

// CameraSystem follows depth targets with an in-out cubic tween.
type CameraSystem struct {
	position component.Vec3
	forward  component.Vec3
	from     component.Vec3
	to       component.Vec3
	tween    component.Tween
	moving   bool
}

func NewCameraSystem(start component.Vec3) *CameraSystem {
	return &CameraSystem{
		position: start,
		forward:  component.Vec3{Z: 1},
	}
}

// FollowDepthTarget starts moving toward pos. A running move is replaced
// from the current position.
func (c *CameraSystem) FollowDepthTarget(pos component.Vec3, duration float64) {
	if duration <= 0 {
		c.SnapTo(pos)
		return
	}
	c.from = c.position
	c.to = pos
	c.tween = component.Tween{From: 0, To: 1, Duration: duration}
	c.moving = true
}

// SnapTo places the camera without a tween.
func (c *CameraSystem) SnapTo(pos component.Vec3) {
	c.position = pos
	c.to = pos
	c.moving = false
}

func (c *CameraSystem) Forward() component.Vec3 {
	return c.forward
}

func (c *CameraSystem) Position() component.Vec3 {
	return c.position
}

func (c *CameraSystem) IsMoving() bool {
	return c.moving
}

func (c *CameraSystem) Update(deltaTime float64) {
	if !c.moving {
		return
	}
	c.tween.Timer += deltaTime
	c.position = c.from.Lerp(c.to, utils.EaseInOutCubic(c.tween.Progress()))
	if c.tween.Done() {
		c.position = c.to
		c.moving = false
	}
}
