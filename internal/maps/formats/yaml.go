// Package formats provides pluggable map file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLMap represents the YAML structure for a map file.
type YAMLMap struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Variant  string            `yaml:"variant"`
	Bridges  *YAMLBridges      `yaml:"bridges,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLBridges overrides the variant's bridge inventory.
type YAMLBridges struct {
	Start int `yaml:"start"`
	Max   int `yaml:"max"`
}

// Map represents a parsed map ready for use.
type Map struct {
	ID       string
	Name     string
	Variant  string
	Bridges  *YAMLBridges // nil keeps the variant defaults
	Rows     []string
	Metadata map[string]string
}

// Format errors.
var (
	ErrMissingID      = errors.New("missing id")
	ErrMissingVariant = errors.New("missing variant")
	ErrNoRows         = errors.New("no rows")
)

// ParseYAML parses a YAML map file. Row shape is checked later when the
// rows are turned into a board.
func ParseYAML(data []byte) (Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	switch {
	case ym.ID == "":
		return Map{}, ErrMissingID
	case ym.Variant == "":
		return Map{}, fmt.Errorf("map %s: %w", ym.ID, ErrMissingVariant)
	case len(ym.Rows) == 0:
		return Map{}, fmt.Errorf("map %s: %w", ym.ID, ErrNoRows)
	}

	if ym.Bridges != nil && ym.Bridges.Start < 0 {
		ym.Bridges.Start = 0
	}

	name := ym.Name
	if name == "" {
		name = ym.ID
	}

	return Map{
		ID:       ym.ID,
		Name:     name,
		Variant:  ym.Variant,
		Bridges:  ym.Bridges,
		Rows:     ym.Rows,
		Metadata: ym.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
