// internal/defs/pool.go
package defs

import (
	"errors"
	"fmt"
)

// ErrEmptyTemplatePool is returned when a random pick is requested from an empty pool.
// It is a content-configuration error and is never retried.
var ErrEmptyTemplatePool = errors.New("template pool is empty")

// Intner is the slice of a random source the pool needs for uniform picks.
type Intner interface {
	Intn(n int) int
}

// Pool is the read-only registry of layer and reward cluster templates.
// IDs are dense and issued in file order starting at 1.
type Pool struct {
	layers   []LayerTemplate
	clusters []ClusterTemplate
	layerIDs map[string]LayerTemplateID
	clustIDs map[string]ClusterTemplateID
}

// NewPool validates templates and resolves their keys into IDs.
func NewPool(layers []LayerTemplate, clusters []ClusterTemplate) (*Pool, error) {
	p := &Pool{
		layers:   make([]LayerTemplate, 0, len(layers)),
		clusters: make([]ClusterTemplate, 0, len(clusters)),
		layerIDs: make(map[string]LayerTemplateID, len(layers)),
		clustIDs: make(map[string]ClusterTemplateID, len(clusters)),
	}

	for _, t := range layers {
		if t.Key == "" {
			return nil, fmt.Errorf("layer template %q: empty key", t.Name)
		}
		if _, dup := p.layerIDs[t.Key]; dup {
			return nil, fmt.Errorf("layer template %q: duplicate key", t.Key)
		}
		if t.Radius <= 0 {
			return nil, fmt.Errorf("layer template %q: radius must be positive", t.Key)
		}
		if t.NoiseScale <= 0 {
			t.NoiseScale = 1
		}
		t.ID = LayerTemplateID(len(p.layers) + 1)
		p.layerIDs[t.Key] = t.ID
		p.layers = append(p.layers, t)
	}

	for _, t := range clusters {
		if t.Key == "" {
			return nil, errors.New("cluster template: empty key")
		}
		if _, dup := p.clustIDs[t.Key]; dup {
			return nil, fmt.Errorf("cluster template %q: duplicate key", t.Key)
		}
		if t.Value <= 0 {
			return nil, fmt.Errorf("cluster template %q: value must be positive", t.Key)
		}
		if t.PickupRadius <= 0 {
			return nil, fmt.Errorf("cluster template %q: pickup radius must be positive", t.Key)
		}
		t.ID = ClusterTemplateID(len(p.clusters) + 1)
		p.clustIDs[t.Key] = t.ID
		p.clusters = append(p.clusters, t)
	}

	return p, nil
}

// LayerCount returns the number of registered layer templates.
func (p *Pool) LayerCount() int { return len(p.layers) }

// ClusterCount returns the number of registered cluster templates.
func (p *Pool) ClusterCount() int { return len(p.clusters) }

// Layer looks a layer template up by ID.
func (p *Pool) Layer(id LayerTemplateID) (LayerTemplate, bool) {
	if id == 0 || int(id) > len(p.layers) {
		return LayerTemplate{}, false
	}
	return p.layers[id-1], true
}

// Cluster looks a cluster template up by ID.
func (p *Pool) Cluster(id ClusterTemplateID) (ClusterTemplate, bool) {
	if id == 0 || int(id) > len(p.clusters) {
		return ClusterTemplate{}, false
	}
	return p.clusters[id-1], true
}

// LayerID resolves a template key. Only used while loading and by tools.
func (p *Pool) LayerID(key string) (LayerTemplateID, bool) {
	id, ok := p.layerIDs[key]
	return id, ok
}

// Layers returns a copy of all layer templates in ID order.
func (p *Pool) Layers() []LayerTemplate {
	out := make([]LayerTemplate, len(p.layers))
	copy(out, p.layers)
	return out
}

// RandomLayer picks a layer template uniformly.
func (p *Pool) RandomLayer(rng Intner) (LayerTemplate, error) {
	if len(p.layers) == 0 {
		return LayerTemplate{}, fmt.Errorf("layers: %w", ErrEmptyTemplatePool)
	}
	return p.layers[rng.Intn(len(p.layers))], nil
}

// RandomCluster picks a reward cluster template uniformly.
func (p *Pool) RandomCluster(rng Intner) (ClusterTemplate, error) {
	if len(p.clusters) == 0 {
		return ClusterTemplate{}, fmt.Errorf("clusters: %w", ErrEmptyTemplatePool)
	}
	return p.clusters[rng.Intn(len(p.clusters))], nil
}
