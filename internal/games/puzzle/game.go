// Package puzzle adapts the board rule engine to the registry so every
// variant can be played from the terminal or the window front end.
package puzzle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/config"
	"github.com/vovakirdan/splitlands/internal/core"
	"github.com/vovakirdan/splitlands/internal/maps"
	"github.com/vovakirdan/splitlands/internal/registry"
)

// Game wraps one board.Game and the map it was loaded from.
type Game struct {
	variant board.Variant // built-in rules with config overrides applied
	m       maps.Map
	haveMap bool

	game    *board.Game
	loadErr error
	status  string

	screenW   int
	screenH   int
	tileWidth int
}

// Package-level selections consumed by the registry factories.
var (
	selectedMap    *maps.Map
	selectedConfig = config.DefaultConfig()
)

// SetMap selects the map used by the next game created through the
// registry. A nil map, or one for another variant, falls back to the
// built-in map of the variant.
func SetMap(m *maps.Map) {
	selectedMap = m
}

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.Config) {
	selectedConfig = cfg
}

func init() {
	for _, v := range board.Variants() {
		registry.Register(v.ID, func() registry.Game {
			return newFromSelection(v.ID)
		})
	}
}

func newFromSelection(id string) *Game {
	v, err := board.LookupVariant(id)
	if err != nil {
		return &Game{loadErr: err}
	}
	g := New(v, selectedConfig)
	if selectedMap != nil && selectedMap.Variant == id {
		g.UseMap(*selectedMap)
	}
	return g
}

// New creates a game for the variant. The map is loaded on Reset; without
// UseMap the variant's built-in map is played.
func New(v board.Variant, cfg config.Config) *Game {
	return &Game{
		variant:   cfg.ApplyVariant(v),
		tileWidth: cfg.Render.TileWidth,
	}
}

// UseMap sets the map played from the next Reset on.
func (g *Game) UseMap(m maps.Map) {
	g.m = m
	g.haveMap = true
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// MapName returns the name of the loaded map.
func (g *Game) MapName() string {
	return g.m.Name
}

// Board returns the underlying rule engine, or nil if the map failed to load.
func (g *Game) Board() *board.Game {
	return g.game
}

// Err returns the map loading error, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// Status returns a short description of the last step.
func (g *Game) Status() string {
	return g.status
}

// Reset reloads the map from scratch.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	if cfg.TileWidth > 0 {
		g.tileWidth = cfg.TileWidth
	}
	if g.tileWidth <= 0 {
		g.tileWidth = core.DefaultConfig().TileWidth
	}
	g.status = ""

	if g.variant.ID == "" {
		return // unknown variant, loadErr already set
	}

	if !g.haveMap {
		m, err := maps.Builtin(g.variant.ID)
		if err != nil {
			g.game, g.loadErr = nil, err
			return
		}
		g.m = m
		g.haveMap = true
	}

	g.game, g.loadErr = g.m.NewGameWith(g.variant)
}

// Step applies one key press. Restart is handled first, then at most one
// move and the action key. Input is ignored once the map is solved.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, TileWidth: g.tileWidth})
		g.status = "restarted"
		return core.StepResult{State: g.State(), Changed: true}
	}

	if g.game == nil || g.game.Solved() {
		return core.StepResult{State: g.State()}
	}

	changed := false
	for _, am := range actionDirs {
		if in.Has(am.action) {
			changed = g.move(am.dir)
			break
		}
	}

	if in.Has(core.ActionUse) {
		if g.use() {
			changed = true
		}
	}

	if g.game.Solved() {
		g.status = "solved"
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// actionDirs maps direction actions to board directions in priority order.
var actionDirs = []struct {
	action core.Action
	dir    board.Dir
}{
	{core.ActionUp, board.North},
	{core.ActionRight, board.East},
	{core.ActionDown, board.South},
	{core.ActionLeft, board.West},
}

func (g *Game) move(d board.Dir) bool {
	before := g.game.Player()
	changed := g.game.TryMove(d)
	after := g.game.Player()

	switch {
	case after.Pos != before.Pos:
		g.status = fmt.Sprintf("moved %s to %s", d.Name(), after.Pos)
	case after.Facing != before.Facing:
		g.status = "facing " + d.Name()
	default:
		g.status = "blocked"
	}
	return changed
}

func (g *Game) use() bool {
	switch g.variant.Action {
	case board.ActionShoot:
		if !g.game.Act() {
			g.status = "nothing to split"
			return false
		}
		g.status = "split to " + g.game.Player().Pos.String()
		return true
	case board.ActionToggleBridge:
		before := g.game.Player().Bridges
		if !g.game.Act() {
			g.status = "cannot bridge here"
			return false
		}
		if g.game.Player().Bridges < before {
			g.status = "bridge built"
		} else {
			g.status = "bridge collapsed"
		}
		return true
	default:
		return false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.game == nil {
		return core.GameState{}
	}
	return core.GameState{
		Moves:  g.game.Moves(),
		Solved: g.game.Solved(),
	}
}

// Export returns the current board as map text.
func (g *Game) Export() string {
	if g.game == nil {
		return ""
	}
	return strings.Join(g.game.Lines(), "\n")
}
