package snake

import (
	"github.com/vovakirdan/termsnake/internal/core"
)

// Control keys reserved by the state machine.
const (
	QuitKey  = 'q'
	BeginKey = 'b'
)

// Phase is the top-level game state. Exactly one variant is active at a time:
// Begin, InGame, GameOver or Quit.
type Phase interface {
	phase()
	String() string
}

// Begin draws a fresh board and starts a new round on the next tick.
type Begin struct{}

// InGame is an active round. Key is the key observed when the phase was entered.
type InGame struct {
	Key core.Key
}

// GameOver shows the end screen until the player restarts or quits.
type GameOver struct{}

// Quit is terminal: the loop stops after clearing the display.
type Quit struct{}

func (Begin) phase()    {}
func (InGame) phase()   {}
func (GameOver) phase() {}
func (Quit) phase()     {}

func (Begin) String() string    { return "begin" }
func (InGame) String() string   { return "in_game" }
func (GameOver) String() string { return "game_over" }
func (Quit) String() string     { return "quit" }

// Next returns the phase for the following tick given the key sampled this tick.
//
//	Begin     any        -> InGame(key)
//	InGame    q          -> Quit
//	InGame    other      -> InGame(key)
//	GameOver  b          -> Begin
//	GameOver  q          -> Quit
//	GameOver  other      -> GameOver
//	Quit      any        -> Quit
func Next(p Phase, key core.Key) Phase {
	switch p.(type) {
	case Begin:
		return InGame{Key: key}
	case InGame:
		if key.Is(QuitKey) {
			return Quit{}
		}
		return InGame{Key: key}
	case GameOver:
		switch {
		case key.Is(BeginKey):
			return Begin{}
		case key.Is(QuitKey):
			return Quit{}
		}
		return GameOver{}
	default:
		return Quit{}
	}
}

// KeyDirection maps arrow keys to headings. Any other key, including none,
// requests no change.
func KeyDirection(key core.Key) core.Direction {
	switch key.Code {
	case core.KeyUp:
		return core.DirUp
	case core.KeyDown:
		return core.DirDown
	case core.KeyLeft:
		return core.DirLeft
	case core.KeyRight:
		return core.DirRight
	default:
		return core.DirNone
	}
}
