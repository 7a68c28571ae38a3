package defs

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed pool.yaml
var defaultPoolYAML []byte

// poolFile mirrors the on-disk layout of a pool definition file.
type poolFile struct {
	Layers   []LayerTemplate   `yaml:"layers"`
	Clusters []ClusterTemplate `yaml:"clusters"`
}

// LoadPool reads a pool definition file. An empty path loads the built-in pool.
func LoadPool(path string) (*Pool, error) {
	data := defaultPoolYAML
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read pool definitions file: %w", err)
		}
		data = file
	}
	return ParsePool(data)
}

// ParsePool decodes and validates pool definitions.
func ParsePool(data []byte) (*Pool, error) {
	var file poolFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pool definitions: %w", err)
	}

	pool, err := NewPool(file.Layers, file.Clusters)
	if err != nil {
		return nil, fmt.Errorf("invalid pool definitions: %w", err)
	}

	if pool.LayerCount() == 0 {
		log.Println("Warning: pool has no layer templates, layer generation will abort")
	}
	log.Printf("Loaded %d layer templates and %d cluster templates\n", pool.LayerCount(), pool.ClusterCount())
	return pool, nil
}
