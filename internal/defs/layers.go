// internal/defs/layers.go
package defs

// LayerTemplateID is resolved from the template key once, when the pool is built.
// Zero is never issued.
type LayerTemplateID uint16

// LayerTemplate holds all the static data for one kind of layer.
type LayerTemplate struct {
	ID         LayerTemplateID `yaml:"-"`
	Key        string          `yaml:"key"`
	Name       string          `yaml:"name"`
	Tint       Color           `yaml:"tint"`        // base colour; HSV value is replaced by the layer brightness
	NoiseSeed  int64           `yaml:"noise_seed"`  // seed for the procedural texture
	NoiseScale float64         `yaml:"noise_scale"` // texture frequency, texels per world unit
	Radius     float64         `yaml:"radius"`      // visual radius of the layer disk
}
