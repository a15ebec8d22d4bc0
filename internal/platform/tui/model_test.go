package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/games/snake"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Food = snake.FoodSwap
	b, err := core.NewBounds(20, 10)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewModel(cfg, b, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTicksGame(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init() returned nil command")
	}

	m, cmd := step(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick returned nil command, expected next tick")
	}
	if _, ok := m.Game().Phase().(snake.InGame); !ok {
		t.Errorf("phase = %v, expected in_game", m.Game().Phase())
	}

	view := m.View()
	if !strings.HasPrefix(view, "┌") {
		t.Errorf("View() does not start with the frame:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("View() missing help line:\n%s", view)
	}

	m, _ = step(t, m, TickMsg{})
	if head := m.Game().Snake().Head(); head != core.Pt(10, 4) {
		t.Errorf("head = %v, expected (10,4)", head)
	}
	if got := m.screen.Cell(core.Pt(10, 4)); got != '@' {
		t.Errorf("screen cell (10,4) = %q, expected '@'", got)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = step(t, m, TickMsg{}) // Begin
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m, _ = step(t, m, TickMsg{}) // InGame, q sampled
	if _, ok := m.Game().Phase().(snake.Quit); !ok {
		t.Fatalf("phase = %v, expected quit", m.Game().Phase())
	}

	m, cmd := step(t, m, TickMsg{})
	if !m.Quitting() {
		t.Error("Quitting() = false after quit tick")
	}
	if cmd == nil {
		t.Fatal("quit tick returned nil command, expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit tick command did not produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Errorf("View() = %q after quit, expected empty", m.View())
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.Quitting() {
		t.Error("Quitting() = false after ctrl+c")
	}
	if cmd == nil {
		t.Fatal("ctrl+c returned nil command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c command did not produce tea.QuitMsg")
	}
}

func TestModelLatchesLastKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = step(t, m, TickMsg{}) // Begin

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = step(t, m, TickMsg{})

	p, ok := m.Game().Phase().(snake.InGame)
	if !ok {
		t.Fatalf("phase = %v, expected in_game", m.Game().Phase())
	}
	if p.Key != (core.Key{Code: core.KeyRight}) {
		t.Errorf("latched key = %v, expected right", p.Key)
	}
}

func TestNewModelRejectsUnknownFood(t *testing.T) {
	cfg := config.Default()
	cfg.Food = "teleport"
	b, _ := core.NewBounds(10, 10)
	if _, err := NewModel(cfg, b, log.New(io.Discard)); err == nil {
		t.Error("NewModel() expected error for unknown food policy")
	}
}

func TestModelHelpShowsQuitOnNarrowTerminal(t *testing.T) {
	m := newTestModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 20, Height: 11})
	m, _ = step(t, m, TickMsg{})

	view := m.View()
	lines := strings.Split(view, "\n")
	helpLine := lines[len(lines)-1]
	if !strings.Contains(helpLine, "quit") {
		t.Errorf("help line = %q, expected the quit hint", helpLine)
	}
}
