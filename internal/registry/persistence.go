package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads registry state from a YAML file if it exists.
func (r *Registry) Load(path string) error {
	if path == "" {
		return fmt.Errorf("registry path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var profiles []ClientProfile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = map[string]ClientProfile{}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return nil
}

// Save persists registry state to a YAML file using an atomic rename.
func (r *Registry) Save(path string) error {
	if path == "" {
		return fmt.Errorf("registry path is required")
	}
	profiles := r.List()
	payload, err := yaml.Marshal(profiles)
	if err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return writeErr
	}
	if syncErr != nil {
		_ = os.Remove(tmpPath)
		return syncErr
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return closeErr
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
