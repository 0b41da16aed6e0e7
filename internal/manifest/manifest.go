// Package manifest loads the 3D model and texture records that accompany a
// chapter. The records belong to the caller; the segmentation engine only sees
// their ids.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Model is one 3D model with its textures
type Model struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	File     string   `yaml:"file" json:"file"`
	Textures []string `yaml:"textures,omitempty" json:"textures,omitempty"`
}

// Manifest lists the models of a chapter. The first entry is the main model.
type Manifest struct {
	Models []Model `yaml:"models" json:"models"`
}

// ModelID returns the id of m
func ModelID(m Model) string {
	return m.ID
}

// Parse decodes a YAML (or JSON) manifest
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	for i, model := range m.Models {
		if model.ID == "" {
			return nil, fmt.Errorf("model %d has no id", i)
		}
	}
	return &m, nil
}

// Load reads a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}
