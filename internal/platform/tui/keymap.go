package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// KeyMap holds the key bindings shown in the help line and used to translate
// Bubble Tea key messages into engine keys.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Begin     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default bindings. WASD mirrors the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Begin: key.NewBinding(
			key.WithKeys(string(snake.BeginKey)),
			key.WithHelp("b", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys(string(snake.QuitKey)),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit now"),
		),
	}
}

// ShortHelp implements help.KeyMap. Quit and Begin come first so they survive
// truncation on narrow terminals.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Begin, k.Up, k.Down, k.Left, k.Right}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Begin, k.Quit, k.ForceQuit},
	}
}

// MapKey translates a key message to an engine key.
// Unbound printable keys pass through as rune keys so that any key can start a
// round; everything else maps to core.NoKey.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Up):
		return core.Key{Code: core.KeyUp}
	case key.Matches(msg, k.Down):
		return core.Key{Code: core.KeyDown}
	case key.Matches(msg, k.Left):
		return core.Key{Code: core.KeyLeft}
	case key.Matches(msg, k.Right):
		return core.Key{Code: core.KeyRight}
	case key.Matches(msg, k.Begin):
		return core.RuneKey(snake.BeginKey)
	case key.Matches(msg, k.Quit):
		return core.RuneKey(snake.QuitKey)
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			return core.RuneKey(msg.Runes[0])
		}
	case tea.KeySpace:
		return core.RuneKey(' ')
	case tea.KeyEnter:
		return core.RuneKey('\n')
	}
	return core.NoKey
}
