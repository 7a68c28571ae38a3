// internal/component/layer.go
package component

import (
	"go-layer-dive/internal/defs"
	"go-layer-dive/internal/types"
)

// LayerPhase — жизненный цикл слоя в стеке
type LayerPhase int

const (
	LayerIdle     LayerPhase = iota // settled, behind the active layer
	LayerActive                     // the layer the player occupies
	LayerQueued                     // freshly generated bottom layer, fading in
	LayerRetiring                   // outgoing top layer during a shift
)

func (p LayerPhase) String() string {
	switch p {
	case LayerIdle:
		return "idle"
	case LayerActive:
		return "active"
	case LayerQueued:
		return "queued"
	case LayerRetiring:
		return "retiring"
	default:
		return "unknown"
	}
}

// Layer is one materialised depth segment of the world.
type Layer struct {
	ID         types.EntityID
	Depth      int // strictly increasing with insertion order
	TemplateID defs.LayerTemplateID
	Anchor     Vec3
	Sway       Vec3 // ambient drift, visual only
	Opacity    float64
	Brightness float64 // HSV value applied to the template tint
	Clusters   []types.EntityID
	Phase      LayerPhase
}
