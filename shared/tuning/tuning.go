// Package tuning loads movement tuning from YAML and watches the file for
// edits while the game runs.
package tuning

import (
	"fmt"
	"os"

	"github.com/automoto/tilehop/shared/controller"
	"gopkg.in/yaml.v3"
)

// Decode parses YAML tuning. Keys missing from data keep their default
// values. The jump arc is validated.
func Decode(data []byte) (controller.Tuning, error) {
	t := controller.DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return controller.Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if _, err := t.Arc(); err != nil {
		return controller.Tuning{}, fmt.Errorf("tuning: %w", err)
	}
	return t, nil
}

// LoadFile reads and decodes a tuning file.
func LoadFile(path string) (controller.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return controller.Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := Decode(data)
	if err != nil {
		return controller.Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Encode renders tuning as YAML.
func Encode(t controller.Tuning) ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode tuning: %w", err)
	}
	return data, nil
}

// WriteFile seeds a tuning file at path with t.
func WriteFile(path string, t controller.Tuning) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write tuning %s: %w", path, err)
	}
	return nil
}
