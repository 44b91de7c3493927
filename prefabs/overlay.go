package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadOverlaid loads filename and merges overrides over it. Keys missing
// from overrides keep the file's values.
func LoadOverlaid[T any](filename string, overrides map[string]any) (T, error) {
	spec, err := LoadSpec[T](filename)
	if err != nil {
		return spec, err
	}
	if len(overrides) == 0 {
		return spec, nil
	}
	b, err := yaml.Marshal(overrides)
	if err != nil {
		return spec, fmt.Errorf("prefabs: marshal overrides for %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return spec, fmt.Errorf("prefabs: apply overrides to %s: %w", filename, err)
	}
	return spec, nil
}
