package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/splitlands/internal/board"
	"github.com/vovakirdan/splitlands/internal/core"
	"github.com/vovakirdan/splitlands/internal/registry"
)

// statusReporter is implemented by games that describe their last step.
type statusReporter interface {
	Status() string
}

// boardReporter is implemented by games backed by a board.
type boardReporter interface {
	Board() *board.Game
}

// Options configures a play session.
type Options struct {
	Logger   *log.Logger // nil discards logs
	ShowHelp bool        // start with the full key help expanded
	UseHelp  string      // help text of the action key
}

// Model is the Bubble Tea model for playing one puzzle.
// Input is turn-based: every key press produces at most one game step
// followed by one redraw.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	flash    string
	solved   bool
	back     bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	useHelp := opts.UseHelp
	if useHelp == "" {
		useHelp = "act"
	}

	h := help.New()
	h.ShowAll = opts.ShowHelp
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config: cfg,
		keys:   DefaultKeyMap(useHelp),
		help:   h,
		logger: logger,
	}
}

// helpHeight is the number of rows kept below the board for the flash
// line and the key help.
const helpHeight = 5

// Init loads the map.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "title", m.game.Title())
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes one key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyBoard()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "moves", m.game.State().Moves)
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	}

	res := m.game.Step(core.FrameOf(action))

	fields := []any{"action", action, "changed", res.Changed, "moves", res.State.Moves}
	if sr, ok := m.game.(statusReporter); ok {
		fields = append(fields, "status", sr.Status())
	}
	if br, ok := m.game.(boardReporter); ok && br.Board() != nil {
		p := br.Board().Player()
		fields = append(fields, "pos", p.Pos, "facing", p.Facing, "bridges", p.Bridges)
	}
	m.logger.Debug("step", fields...)

	if res.State.Solved && !m.solved {
		m.logger.Info("solved", "game", m.game.ID(), "moves", res.State.Moves)
	}
	m.solved = res.State.Solved

	return m, nil
}

// copyBoard puts the current board text on the system clipboard.
func (m *Model) copyBoard() {
	if err := writeClipboard(m.game.Export()); err != nil {
		m.logger.Warn("clipboard copy failed", "err", err)
		m.flash = "clipboard unavailable"
		return
	}
	m.flash = "board copied to clipboard"
}

var (
	flashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" +
		flashStyle.Render(m.flash) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// WentBack reports whether the player asked to return to the menu.
func (m Model) WentBack() bool {
	return m.back
}

// Run starts the Bubble Tea program for the given game.
// Returns true if the player pressed back rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WentBack(), nil
}
