package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Food policy names accepted by PlacerFor.
const (
	FoodRandom = "random"
	FoodSwap   = "swap"
)

// ErrUnknownFoodPolicy is returned for an unrecognized food policy name.
var ErrUnknownFoodPolicy = errors.New("snake: unknown food policy")

// FoodPlacer decides where food goes after it has been eaten.
// Returns false when no cell is available.
type FoodPlacer interface {
	Place(eaten core.Point, s Snake, b core.Bounds) (core.Point, bool)
}

// SwapPlacer moves food by swapping its x and y coordinates. It does not check
// the result against the snake or the bounds.
type SwapPlacer struct{}

// Place implements FoodPlacer.
func (SwapPlacer) Place(eaten core.Point, _ Snake, _ core.Bounds) (core.Point, bool) {
	return core.Point{X: eaten.Y, Y: eaten.X}, true
}

// RandomPlacer picks a uniformly random interior cell the snake does not occupy.
type RandomPlacer struct {
	rng *rand.Rand
}

// NewRandomPlacer creates a placer with a deterministic seed.
func NewRandomPlacer(seed int64) *RandomPlacer {
	return &RandomPlacer{rng: rand.New(rand.NewSource(seed))}
}

// Place implements FoodPlacer.
func (p *RandomPlacer) Place(_ core.Point, s Snake, b core.Bounds) (core.Point, bool) {
	var free []core.Point
	b.Interior(func(pt core.Point) {
		if !s.Occupies(pt) {
			free = append(free, pt)
		}
	})

	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[p.rng.Intn(len(free))], true
}

// PlacerFor returns the placer registered under name.
func PlacerFor(name string, seed int64) (FoodPlacer, error) {
	switch name {
	case FoodRandom, "":
		return NewRandomPlacer(seed), nil
	case FoodSwap:
		return SwapPlacer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFoodPolicy, name)
	}
}
