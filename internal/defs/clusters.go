// internal/defs/clusters.go
package defs

// ClusterTemplateID is resolved from the template key once, when the pool is built.
type ClusterTemplateID uint16

// ClusterTemplate describes one kind of reward cluster.
type ClusterTemplate struct {
	ID           ClusterTemplateID `yaml:"-"`
	Key          string            `yaml:"key"`
	Value        int               `yaml:"value"`         // charges granted on pickup
	PickupRadius float64           `yaml:"pickup_radius"` // world units
	Color        Color             `yaml:"color"`
	PulseRate    float64           `yaml:"pulse_rate"`
}
