// pkg/render/projection.go
package render

// Projector is a pinhole camera looking down +Z with the screen centre on the
// optical axis.
type Projector struct {
	FocalLength float64
	CenterX     float64
	CenterY     float64
	Near        float64 // points closer than this are not drawn
}

// NewProjector creates a projector for a screen of the given size.
func NewProjector(focal float64, screenW, screenH int) Projector {
	return Projector{
		FocalLength: focal,
		CenterX:     float64(screenW) / 2,
		CenterY:     float64(screenH) / 2,
		Near:        1,
	}
}

// Project maps a world point seen from camera (cx, cy, cz) to screen space.
// scale is the pixel size of one world unit at that depth.
func (p Projector) Project(x, y, z, cx, cy, cz float64) (sx, sy, scale float64, ok bool) {
	dz := z - cz
	if dz < p.Near {
		return 0, 0, 0, false
	}
	scale = p.FocalLength / dz
	sx = p.CenterX + (x-cx)*scale
	sy = p.CenterY - (y-cy)*scale
	return sx, sy, scale, true
}
