// Package maps loads puzzle map files and provides the built-in maps.
// This package depends on board but board does not depend on maps.
package maps

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/maps/formats"
)

// Inventory is a bridge inventory override.
type Inventory struct {
	Start int
	Max   int
}

// Map represents a complete map definition.
type Map struct {
	ID       string
	Name     string
	Variant  string
	Rows     []string
	Bridges  *Inventory // nil keeps the variant defaults
	Metadata map[string]string
	FilePath string // empty for built-in maps
}

// Rules returns the variant this map is played with, inventory overrides
// applied on top of base.
func (m Map) Rules(base board.Variant) board.Variant {
	if m.Bridges != nil {
		base.StartBridges = m.Bridges.Start
		base.MaxBridges = m.Bridges.Max
	}
	return base
}

// NewGame creates a fresh game from the map using the built-in variant rules.
func (m Map) NewGame() (*board.Game, error) {
	v, err := board.LookupVariant(m.Variant)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", m.ID, err)
	}
	return m.NewGameWith(v)
}

// NewGameWith creates a fresh game from the map with the given rules.
func (m Map) NewGameWith(v board.Variant) (*board.Game, error) {
	g, err := board.FromMapSpec(m.Rules(v), m.Rows)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", m.ID, err)
	}
	return g, nil
}

// Loader handles loading maps from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

func newFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{Root: root, fsys: fsys}
}

// LoadAll recursively scans and loads all map files.
// Invalid files are skipped. Returns maps sorted by ID.
func (l *Loader) LoadAll() ([]Map, error) {
	var out []Map

	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		m, err := l.load(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// LoadFile loads a single map file from disk. The path is not resolved
// against Root.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return parse(data, path)
}

func (l *Loader) load(path string) (Map, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return Map{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return parse(data, filepath.Join(l.Root, path))
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (Map, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Map{}, err
	}

	for _, m := range all {
		if m.ID == id {
			return m, nil
		}
	}

	return Map{}, fmt.Errorf("map not found: %s", id)
}

// ListIDs returns all map IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(all))
	for i, m := range all {
		ids[i] = m.ID
	}
	return ids, nil
}

// parse decodes and validates one map file. The map is rejected when its
// variant is unknown or its rows do not form a board.
func parse(data []byte, path string) (Map, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return Map{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	m := Map{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Variant:  parsed.Variant,
		Rows:     parsed.Rows,
		Metadata: parsed.Metadata,
		FilePath: path,
	}
	if parsed.Bridges != nil {
		m.Bridges = &Inventory{Start: parsed.Bridges.Start, Max: parsed.Bridges.Max}
	}

	if _, err := m.NewGame(); err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return m, nil
}
