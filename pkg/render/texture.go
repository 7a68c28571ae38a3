// pkg/render/texture.go
package render

import (
	"image"
	"image/color"
	"math"
)

// Sampler returns a noise value in [0,1] for a point.
type Sampler func(x, y float64) float64

// NoiseDisk paints a size×size disk tinted by tint, modulated by the sampler.
// scale is the noise frequency across one radius. Pixels outside the disk
// stay transparent and the rim fades out over the last tenth of the radius.
func NoiseDisk(size int, tint color.RGBA, scale float64, sample Sampler) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	r := float64(size) / 2
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx := (float64(px) + 0.5 - r) / r
			dy := (float64(py) + 0.5 - r) / r
			d := math.Hypot(dx, dy)
			if d > 1 {
				continue
			}
			n := sample(dx*scale, dy*scale)
			shade := 0.55 + 0.45*n
			alpha := 1.0
			if d > 0.9 {
				alpha = (1 - d) / 0.1
			}
			c := Shade(tint, shade, alpha)
			// image.RGBA stores premultiplied colour
			a := float64(c.A) / 255
			img.SetRGBA(px, py, color.RGBA{
				R: uint8(float64(c.R) * a),
				G: uint8(float64(c.G) * a),
				B: uint8(float64(c.B) * a),
				A: c.A,
			})
		}
	}
	return img
}
