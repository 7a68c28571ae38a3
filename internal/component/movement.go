// component/movement.go
package component

import "math"

// Vec3 is a world-space position. X/Y span the layer plane, Z grows with depth.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Lerp interpolates every axis; t is not clamped.
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (to.X-v.X)*t,
		Y: v.Y + (to.Y-v.Y)*t,
		Z: v.Z + (to.Z-v.Z)*t,
	}
}

// PlanarDistance ignores depth: pickups and the player share a layer plane.
func (v Vec3) PlanarDistance(o Vec3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Velocity — компонент скорости
type Velocity struct {
	X, Y float64
}
