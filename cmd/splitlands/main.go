// splitlands is a set of turn-based tile puzzles played in the terminal or
// in a desktop window.
//
// Usage:
//
//	splitlands list                       - List variants and maps
//	splitlands play <variant>             - Play a variant in the terminal
//	splitlands menu                       - Pick a variant and map interactively
//	splitlands show <variant> --keys ssx  - Apply a key script and print the board
//	splitlands window <variant>           - Play a variant in a desktop window
//
// Global flags:
//
//	--config <path>  - Config file (default: SPLITLANDS_CONFIG, then the search order)
//	--log <path>     - Write structured logs to a file (default: SPLITLANDS_LOG)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/config"
	"github.com/vovakirdan/splitlands/internal/games/puzzle"
	"github.com/vovakirdan/splitlands/internal/maps"
)

// Environment variables read after .env is loaded.
const (
	envConfig = "SPLITLANDS_CONFIG"
	envLog    = "SPLITLANDS_LOG"
)

var (
	// Global flags
	flagConfig string
	flagLog    string
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "splitlands",
	Short: "Splitlands - turn-based tile puzzles",
	Long: `Splitlands is a collection of small grid puzzles. Turn to face a
direction, step onto walkable tiles and use the action key to split the map
or to build and collapse bridges over water.

Variants:
  split   - Shoot a split that rolls the map around you
  paint   - Split rules, every direction key also steps
  streak  - Build oriented bridges over a streak of water
  build   - Build plain bridges, pick up extra bridges on the way

Examples:
  splitlands list
  splitlands play split
  splitlands play streak --map ./maps/lake.yaml
  splitlands menu
  splitlands show split --keys "ssx"
  splitlands window build`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagConfig == "" {
			flagConfig = os.Getenv(envConfig)
		}
		if flagLog == "" {
			flagLog = os.Getenv(envLog)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (env "+envConfig+")")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Path to log file (env "+envLog+")")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(windowCmd)
}

// session holds what every command needs: the loaded config and a logger.
type session struct {
	cfg    config.Config
	logger *log.Logger
	close  func()
}

// newSession loads the config and builds the logger. Interactive sessions
// discard logs unless --log is set, since the terminal belongs to the UI.
func newSession(interactive bool) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	puzzle.SetConfig(cfg)

	s := &session{cfg: cfg, close: func() {}}

	opts := log.Options{ReportTimestamp: true, Prefix: "splitlands"}
	switch {
	case flagLog != "":
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		opts.Level = log.DebugLevel
		s.logger = log.NewWithOptions(f, opts)
		s.close = func() { f.Close() }
	case interactive:
		s.logger = log.NewWithOptions(io.Discard, opts)
	default:
		opts.Level = log.WarnLevel
		s.logger = log.NewWithOptions(os.Stderr, opts)
	}

	s.logger = s.logger.With("session", uuid.NewString())
	s.logger.Debug("config loaded", "path", flagConfig, "maps_dir", cfg.MapsDir)
	return s, nil
}

// selectMap loads --map for the variant, or clears the selection so the
// built-in map is used.
func selectMap(variantID, path string) error {
	if path == "" {
		puzzle.SetMap(nil)
		return nil
	}
	m, err := maps.NewLoader(filepath.Dir(path)).LoadFile(path)
	if err != nil {
		return err
	}
	if m.Variant != variantID {
		return fmt.Errorf("map %s is for variant %q, not %q", m.ID, m.Variant, variantID)
	}
	puzzle.SetMap(&m)
	return nil
}

// extraMaps loads the maps of the configured maps_dir.
func (s *session) extraMaps() []maps.Map {
	if s.cfg.MapsDir == "" {
		return nil
	}
	all, err := maps.NewLoader(s.cfg.MapsDir).LoadAll()
	if err != nil {
		s.logger.Warn("could not load maps_dir", "dir", s.cfg.MapsDir, "err", err)
		return nil
	}
	return all
}

// useHelp names the action key in the help line.
func useHelp(variantID string) string {
	v, err := board.LookupVariant(variantID)
	if err != nil {
		return "act"
	}
	if v.Action == board.ActionToggleBridge {
		return "bridge"
	}
	return "split"
}
