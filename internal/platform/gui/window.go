// Package gui is the desktop window front end. It draws the board with
// filled shapes and feeds edge-triggered key presses to a puzzle game.
package gui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/splitlands/internal/core"
	"github.com/vovakirdan/splitlands/internal/games/puzzle"
)

const (
	hudLines  = 2
	lineH     = 16
	hudMargin = 4
)

// keyBindings maps window keys to game actions.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionUse},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, core.ActionQuit},
}

// Window implements ebiten.Game for one puzzle session.
type Window struct {
	game     *puzzle.Game
	tileSize int
	logger   *log.Logger

	prevKeys map[ebiten.Key]bool
	solved   bool
}

// New returns a window for a game that has already been reset.
func New(game *puzzle.Game, tileSize int, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		game:     game,
		tileSize: tileSize,
		logger:   logger,
		prevKeys: make(map[ebiten.Key]bool),
	}
}

// Run resets the game, opens a window sized to its map and blocks until
// the window is closed or Escape is pressed.
func Run(game *puzzle.Game, tileSize int, logger *log.Logger) error {
	game.Reset(core.RuntimeConfig{TileWidth: 1})
	if game.Board() == nil {
		if err := game.Err(); err != nil {
			return err
		}
		return fmt.Errorf("gui: %s has no board", game.ID())
	}

	w := New(game, tileSize, logger)
	width, height := w.Layout(0, 0)
	ebiten.SetWindowTitle("Splitlands - " + game.Title())
	ebiten.SetWindowSize(width, height)

	w.logger.Info("window opened", "variant", game.ID(), "map", game.MapName())
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update polls the keyboard once per frame.
func (w *Window) Update() error {
	current := make(map[ebiten.Key]bool, len(w.prevKeys))
	var pressed []core.Action
	for _, b := range keyBindings {
		down := false
		for _, k := range b.keys {
			current[k] = ebiten.IsKeyPressed(k)
			if current[k] && !w.prevKeys[k] {
				down = true
			}
		}
		if down {
			pressed = append(pressed, b.action)
		}
	}
	w.prevKeys = current

	for _, a := range pressed {
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		w.apply(a)
	}
	return nil
}

// apply steps the game once per action so simultaneous presses keep the
// one-step-per-press rule.
func (w *Window) apply(a core.Action) {
	res := w.game.Step(core.FrameOf(a))
	w.logger.Debug("step", "action", a, "changed", res.Changed, "moves", res.State.Moves, "status", w.game.Status())
	if res.State.Solved && !w.solved {
		w.logger.Info("solved", "variant", w.game.ID(), "moves", res.State.Moves)
	}
	w.solved = res.State.Solved
}

// Draw renders the board and the text lines below it.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g := w.game.Board()
	if g == nil {
		return
	}
	ts := float32(w.tileSize)
	drawTiles(screen, g.Grid(), ts)
	drawItems(screen, g.Items(), ts)
	drawPlayer(screen, g.Player(), ts)
	drawText(screen, w.textLines(), g.Grid().Height()*w.tileSize)
}

// Layout fixes the logical screen to the map size plus the text area.
func (w *Window) Layout(_, _ int) (int, int) {
	cols, rows := 1, 1
	if g := w.game.Board(); g != nil {
		cols, rows = g.Grid().Width(), g.Grid().Height()
	}
	width := max(cols*w.tileSize, 240)
	return width, rows*w.tileSize + hudLines*lineH + hudMargin*2
}

func (w *Window) textLines() []string {
	status := w.game.Status()
	if w.game.Board().Solved() {
		status = "Solved! R to restart"
	}
	if status == "" {
		status = "arrows move, space acts, R restarts, Esc quits"
	}
	// The debug font only covers ASCII.
	hud := strings.ReplaceAll(w.game.HUD(), "·", "-")
	return []string{hud, " " + status}
}
