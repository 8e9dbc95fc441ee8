package keybind

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the persisted keybind file. A missing file is not an error:
// a fresh terminal starts on the factory layout.
func Load(path string) (Bindings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read keybind file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse keybind file: %w", err)
	}

	b := Default()
	for name, key := range raw {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		b[action] = key
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Save persists the table. Called only on explicit confirmation in the
// keybind-settings dialog.
func Save(path string, b Bindings) error {
	if err := b.Validate(); err != nil {
		return err
	}

	raw := make(map[string]string, len(b))
	for action, key := range b {
		raw[action.String()] = key
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode keybinds: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write keybind file: %w", err)
	}
	return nil
}
