package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Snapshot captures the complete game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Phase    string
	Body     []core.Point // tail to head
	Dir      core.Direction
	SnakeLen int
	Head     core.Point
	Food     core.Point
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase.String(),
		Body:     g.snake.Body(),
		Dir:      g.snake.Direction(),
		SnakeLen: g.snake.Len(),
		Head:     g.snake.Head(),
		Food:     g.food,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Phase: %s\n", g.tick, g.phase)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", g.snake.Len(), g.snake.Direction())
	fmt.Fprintf(&b, "Head: %v, Food: %v\n", g.snake.Head(), g.food)
	return b.String()
}
