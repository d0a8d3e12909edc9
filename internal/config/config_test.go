package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/splitlands/internal/board"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def := DefaultConfig()
	if cfg.Render != def.Render {
		t.Errorf("render = %+v, expected %+v", cfg.Render, def.Render)
	}
	if cfg.Variants[board.VariantStreak] != def.Variants[board.VariantStreak] {
		t.Errorf("streak = %+v, expected %+v", cfg.Variants[board.VariantStreak], def.Variants[board.VariantStreak])
	}
	if cfg.MapsDir != "" {
		t.Errorf("maps_dir = %q, expected empty", cfg.MapsDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)

	cfg, err := Load(filepath.Join("testdata", "custom.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Render.TileWidth != MaxTileWidth {
		t.Errorf("tile_width = %d, expected clamp to %d", cfg.Render.TileWidth, MaxTileWidth)
	}
	if cfg.Render.WindowTileSize != 32 {
		t.Errorf("window_tile_size = %d, expected default 32", cfg.Render.WindowTileSize)
	}
	if cfg.Render.ShowHelp {
		t.Error("show_help should be false")
	}
	if got := cfg.Variants[board.VariantStreak]; got.StartBridges != 2 || got.MaxBridges != 3 {
		t.Errorf("streak = %+v", got)
	}
	if _, ok := cfg.Variants[board.VariantBuild]; !ok {
		t.Error("build defaults should survive a partial override")
	}
	if cfg.MapsDir != "./my-maps" {
		t.Errorf("maps_dir = %q", cfg.MapsDir)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
	if _, err := Load(filepath.Join("testdata", "broken.yaml")); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".splitlands")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("render:\n  tile_width: 1\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Render.TileWidth != 1 {
		t.Errorf("tile_width = %d, expected 1 from user config", cfg.Render.TileWidth)
	}
}

func TestLoadBrokenUserConfigFallsThrough(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".splitlands")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("render: [x"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Render.TileWidth != 2 {
		t.Errorf("tile_width = %d, expected embedded default", cfg.Render.TileWidth)
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		Render: RenderConfig{TileWidth: 0, WindowTileSize: 1000},
		Variants: map[string]VariantConfig{
			"build": {StartBridges: -3, MaxBridges: -1},
		},
	}
	cfg.Normalize()

	if cfg.Render.TileWidth != MinTileWidth {
		t.Errorf("tile_width = %d", cfg.Render.TileWidth)
	}
	if cfg.Render.WindowTileSize != MaxWindowTileSize {
		t.Errorf("window_tile_size = %d", cfg.Render.WindowTileSize)
	}
	if got := cfg.Variants["build"]; got.StartBridges != 0 || got.MaxBridges != 0 {
		t.Errorf("build = %+v", got)
	}
}

func TestApplyVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variants[board.VariantBuild] = VariantConfig{StartBridges: 2, MaxBridges: 5}

	v := cfg.ApplyVariant(board.BuildVariant())
	if v.StartBridges != 2 || v.MaxBridges != 5 {
		t.Errorf("build inventory = %d/%d, expected 2/5", v.StartBridges, v.MaxBridges)
	}

	split := cfg.ApplyVariant(board.SplitVariant())
	if split.StartBridges != 0 || split.MaxBridges != 0 {
		t.Errorf("variants without config should be unchanged, got %d/%d", split.StartBridges, split.MaxBridges)
	}
}

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML invalid: %v", err)
	}
	def := DefaultConfig()
	if cfg.Render != def.Render {
		t.Errorf("embedded render = %+v, hardcoded %+v", cfg.Render, def.Render)
	}
	for id, vc := range def.Variants {
		if cfg.Variants[id] != vc {
			t.Errorf("variant %s: embedded %+v, hardcoded %+v", id, cfg.Variants[id], vc)
		}
	}
}
