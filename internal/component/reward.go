// internal/component/reward.go
package component

import (
	"image/color"

	"go-layer-dive/internal/defs"
	"go-layer-dive/internal/types"
)

// RewardCluster is a collectible spawn point owned by a layer.
type RewardCluster struct {
	ID         types.EntityID
	LayerID    types.EntityID
	TemplateID defs.ClusterTemplateID
	Value      int        // charges granted on collection
	Position   Vec3       // world position
	Radius     float64    // pickup radius on the layer plane
	Color      color.RGBA // цвет кластера
	PulseRate  float64    // частота пульсации
}
