package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed image_registry.yaml
var embeddedImageRegistry []byte

// ImageSlot is one named image position on a page.
type ImageSlot struct {
	Key         string `yaml:"key"`
	Page        string `yaml:"page"`
	Section     string `yaml:"section"`
	Description string `yaml:"description"`
}

type ImageRegistry struct {
	Placeholder string      `yaml:"placeholder"`
	Slots       []ImageSlot `yaml:"slots"`
}

// LoadImageRegistry reads the registry from path, or the embedded default when path is empty.
func LoadImageRegistry(path string) (*ImageRegistry, error) {
	buf := embeddedImageRegistry
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("⚠️ Image registry file not readable, using embedded defaults")
		} else {
			buf = data
		}
	}

	reg := &ImageRegistry{}
	if err := yaml.Unmarshal(buf, reg); err != nil {
		return nil, fmt.Errorf("in image registry: %w", err)
	}

	seen := make(map[string]bool, len(reg.Slots))
	for _, slot := range reg.Slots {
		if slot.Key == "" || slot.Page == "" || slot.Section == "" {
			return nil, fmt.Errorf("image registry slot %q is missing key, page or section", slot.Key)
		}
		if seen[slot.Key] {
			return nil, fmt.Errorf("duplicate image registry key: %s", slot.Key)
		}
		seen[slot.Key] = true
	}
	if reg.Placeholder == "" {
		reg.Placeholder = "/lovable-uploads/placeholder.png"
	}

	return reg, nil
}
