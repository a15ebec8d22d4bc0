package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// HelpHeight is the number of terminal rows reserved below the board.
const HelpHeight = 1

// Model is the Bubble Tea model for one snake game.
// Bubble Tea drives the ticks; the game renders into an in-memory screen that
// View prints.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	latch    *core.KeyLatch
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model whose board fills b.
func NewModel(cfg config.Config, b core.Bounds, logger *log.Logger) (Model, error) {
	opts, err := cfg.GameOptions(logger)
	if err != nil {
		return Model{}, err
	}

	screen := core.NewScreen(int(b.Width), int(b.Height))
	latch := &core.KeyLatch{}
	h := help.New()

	return Model{
		game:   snake.New(screen, latch, b, opts...),
		screen: screen,
		latch:  latch,
		keys:   DefaultKeyMap(),
		help:   h, // width stays unlimited until the first WindowSizeMsg
	}, nil
}

// Init starts the tick loop. The first tick runs the Begin phase.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board keeps the size it started with.
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches the key for the next tick. Only ctrl+c acts immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if k := m.keys.MapKey(msg); !k.IsNone() {
		m.latch.Push(k)
	}
	return m, nil
}

// handleTick runs one game tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Tick() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.game.Interval())
}

// View renders the board and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the underlying game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Quitting reports whether the program is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run plays one game on the local terminal until the player quits.
// termW and termH are the detected terminal size, or 0 when unknown.
func Run(cfg config.Config, termW, termH int, logger *log.Logger) error {
	b, err := cfg.Bounds(termW, termH-HelpHeight)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	model, err := NewModel(cfg, b, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
