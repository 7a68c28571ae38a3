// internal/utils/noise.go
package utils

import (
	"github.com/aquilax/go-perlin"
)

// NoiseField is a seeded Perlin generator with outputs mapped to friendly ranges.
type NoiseField struct {
	p *perlin.Perlin
}

// NewNoiseField creates a field with the smoothing and octave count used for
// all layer visuals.
func NewNoiseField(seed int64) *NoiseField {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &NoiseField{p: perlin.NewPerlin(alpha, beta, n, seed)}
}

// Sample2D returns noise in [0,1].
func (f *NoiseField) Sample2D(x, y float64) float64 {
	return Clamp((f.p.Noise2D(x, y)+1.0)/2.0, 0, 1)
}

// Signed1D returns noise roughly in [-1,1].
func (f *NoiseField) Signed1D(x float64) float64 {
	return Clamp(f.p.Noise1D(x)*2, -1, 1)
}
