// internal/system/layer_stack.go
package system

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"go-layer-dive/internal/component"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/defs"
	"go-layer-dive/internal/entity"
	"go-layer-dive/internal/types"
	"go-layer-dive/internal/utils"
)

// ErrStackNotGenerated is returned when a layer is requested before the stack exists.
var ErrStackNotGenerated = errors.New("layer stack has not been generated")

// LayerStack owns the materialised layers, ordered by ascending depth.
// Its active pointer and anchor are changed only by DiveTransition.
type LayerStack struct {
	ecs       *entity.ECS
	pool      *defs.Pool
	rng       *utils.PRNGService
	tuning    config.StackTuning
	order     []types.EntityID // sorted by depth, index 0 is nearest
	active    types.EntityID
	anchor    component.Vec3
	nextDepth int
}

func NewLayerStack(ecs *entity.ECS, pool *defs.Pool, rng *utils.PRNGService, tuning config.StackTuning) *LayerStack {
	return &LayerStack{
		ecs:       ecs,
		pool:      pool,
		rng:       rng,
		tuning:    tuning,
		nextDepth: 1,
	}
}

// GenerateInitialStack replaces every existing layer with count fresh ones,
// each carrying rewardQuantity clusters. On error nothing is changed.
func (s *LayerStack) GenerateInitialStack(count, rewardQuantity int) error {
	if s.pool.LayerCount() == 0 {
		err := fmt.Errorf("generate initial stack: %w", defs.ErrEmptyTemplatePool)
		log.Printf("LayerStack: %v", err)
		return err
	}
	if rewardQuantity > 0 && s.pool.ClusterCount() == 0 {
		err := fmt.Errorf("generate initial stack: clusters: %w", defs.ErrEmptyTemplatePool)
		log.Printf("LayerStack: %v", err)
		return err
	}

	s.Clear()
	for i := 0; i < count; i++ {
		tmpl, _ := s.pool.RandomLayer(s.rng)
		brightness := utils.Lerp(1.0, config.MinBrightness, float64(i)/float64(count))
		layer := s.spawnLayer(tmpl, s.anchor.Add(component.Vec3{Z: float64(i) * s.tuning.LayerSpacing}), brightness, config.InitialOpacity)
		if i == 0 {
			layer.Phase = component.LayerActive
			s.active = layer.ID
		}
		if err := s.SpawnRewards(layer, rewardQuantity); err != nil {
			return err
		}
	}
	log.Printf("LayerStack: generated %d layers with %d rewards each", count, rewardQuantity)
	return nil
}

// GenerateBottomLayer adds one invisible layer a step beyond the farthest one.
// Its brightness is already the value it will settle at once the stack shifts.
func (s *LayerStack) GenerateBottomLayer() (*component.Layer, error) {
	tmpl, err := s.pool.RandomLayer(s.rng)
	if err != nil {
		err = fmt.Errorf("generate bottom layer: %w", err)
		log.Printf("LayerStack: %v", err)
		return nil, err
	}

	pos := s.anchor
	if n := len(s.order); n > 0 {
		farthest := s.ecs.Layers[s.order[n-1]]
		pos = farthest.Anchor.Add(component.Vec3{Z: s.tuning.LayerSpacing})
	}
	layer := s.spawnLayer(tmpl, pos, s.BrightnessAt(len(s.order)-1), 0)
	layer.Phase = component.LayerQueued
	return layer, nil
}

// SpawnRewards scatters quantity clusters inside the spawn disk of layer.
func (s *LayerStack) SpawnRewards(layer *component.Layer, quantity int) error {
	for i := 0; i < quantity; i++ {
		tmpl, err := s.pool.RandomCluster(s.rng)
		if err != nil {
			err = fmt.Errorf("spawn rewards: %w", err)
			log.Printf("LayerStack: %v", err)
			return err
		}
		x, y := s.rng.InsideUnitCircle()
		offset := component.Vec3{
			X: x * s.tuning.SpawnRadius,
			Y: y * s.tuning.SpawnRadius,
			Z: config.SpawnZOffset,
		}
		id := s.ecs.NewEntity()
		s.ecs.Clusters[id] = &component.RewardCluster{
			ID:         id,
			LayerID:    layer.ID,
			TemplateID: tmpl.ID,
			Value:      tmpl.Value,
			Position:   layer.Anchor.Add(offset),
			Radius:     tmpl.PickupRadius,
			Color:      tmpl.Color.RGBA(),
			PulseRate:  tmpl.PulseRate,
		}
		layer.Clusters = append(layer.Clusters, id)
	}
	return nil
}

// RetireLayer destroys a layer together with its clusters.
func (s *LayerStack) RetireLayer(id types.EntityID) {
	layer, ok := s.ecs.Layers[id]
	if !ok {
		return
	}
	for _, cid := range layer.Clusters {
		delete(s.ecs.Clusters, cid)
	}
	delete(s.ecs.Layers, id)
	delete(s.ecs.Fades, id)

	for i, lid := range s.order {
		if lid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.active == id {
		s.active = 0
	}
}

// CollectCluster removes a cluster from its layer and returns it.
func (s *LayerStack) CollectCluster(id types.EntityID) (component.RewardCluster, bool) {
	cluster, ok := s.ecs.Clusters[id]
	if !ok {
		return component.RewardCluster{}, false
	}
	if layer, ok := s.ecs.Layers[cluster.LayerID]; ok {
		for i, cid := range layer.Clusters {
			if cid == id {
				layer.Clusters = append(layer.Clusters[:i], layer.Clusters[i+1:]...)
				break
			}
		}
	}
	delete(s.ecs.Clusters, id)
	return *cluster, true
}

// Clear destroys every layer and cluster. Used at run reset.
func (s *LayerStack) Clear() {
	s.ecs.ClearWorld()
	s.order = s.order[:0]
	s.active = 0
	s.nextDepth = 1
}

// Sorted returns the layers ordered by ascending depth. The slice is a copy.
func (s *LayerStack) Sorted() []*component.Layer {
	out := make([]*component.Layer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.ecs.Layers[id])
	}
	return out
}

// Active returns the layer the player occupies, or nil before generation.
func (s *LayerStack) Active() *component.Layer {
	return s.ecs.Layers[s.active]
}

func (s *LayerStack) Len() int {
	return len(s.order)
}

// Anchor is the position of the active layer.
func (s *LayerStack) Anchor() component.Vec3 {
	return s.anchor
}

// SetOrigin places the stack before generation.
func (s *LayerStack) SetOrigin(pos component.Vec3) {
	s.anchor = pos
}

func (s *LayerStack) Layer(id types.EntityID) (*component.Layer, bool) {
	l, ok := s.ecs.Layers[id]
	return l, ok
}

func (s *LayerStack) Cluster(id types.EntityID) (*component.RewardCluster, bool) {
	c, ok := s.ecs.Clusters[id]
	return c, ok
}

// BrightnessAt maps a stack index onto the HSV value of its tint. Negative
// indices (a layer leaving the stack) stay at full brightness.
func (s *LayerStack) BrightnessAt(index int) float64 {
	if index < 0 {
		return 1.0
	}
	return utils.Lerp(1.0, config.MinBrightness, float64(index)/float64(s.tuning.MaxLayers))
}

func (s *LayerStack) setActive(id types.EntityID) {
	s.active = id
	if l, ok := s.ecs.Layers[id]; ok {
		l.Phase = component.LayerActive
		s.anchor = l.Anchor
	}
}

func (s *LayerStack) resort() {
	sort.SliceStable(s.order, func(i, j int) bool {
		return s.ecs.Layers[s.order[i]].Depth < s.ecs.Layers[s.order[j]].Depth
	})
}

func (s *LayerStack) spawnLayer(tmpl defs.LayerTemplate, pos component.Vec3, brightness, opacity float64) *component.Layer {
	id := s.ecs.NewEntity()
	layer := &component.Layer{
		ID:         id,
		Depth:      s.nextDepth,
		TemplateID: tmpl.ID,
		Anchor:     pos,
		Opacity:    opacity,
		Brightness: brightness,
		Phase:      component.LayerIdle,
	}
	s.nextDepth++
	s.ecs.Layers[id] = layer
	s.order = append(s.order, id)
	s.resort()
	return layer
}
