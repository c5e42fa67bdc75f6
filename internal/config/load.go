package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, normalizes, and validates a dmclockd config file.
func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read config: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("parse config: %w", err)
	}
	Normalize(&spec)
	if err := Validate(&spec); err != nil {
		return Spec{}, err
	}
	return spec, nil
}
