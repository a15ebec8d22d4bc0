// Package snake implements the snake game engine: the snake itself, the
// Begin/InGame/GameOver/Quit state machine and the fixed-rate tick loop.
// Display and keyboard access are supplied by the caller through Renderer and
// InputSource, so the engine runs unchanged against a terminal, an SSH session
// or an in-memory fake.
package snake

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/core"
)

// DefaultInterval is the delay between ticks when none is configured.
const DefaultInterval = 100 * time.Millisecond

// Renderer is the display capability consumed by the engine.
type Renderer interface {
	// Draw writes text starting at p. No wrapping or clipping is promised.
	Draw(p core.Point, text string)
	// Clear resets the display and homes the cursor. Implies Update.
	Clear()
	// Update flushes pending output to the device.
	Update()
}

// InputSource is the keyboard capability consumed by the engine.
type InputSource interface {
	// Last returns the most recent key since the previous call, or core.NoKey.
	// It never blocks.
	Last() core.Key
}

// Option configures a Game.
type Option func(*Game)

// WithInterval sets the delay between ticks used by Run.
func WithInterval(d time.Duration) Option {
	return func(g *Game) {
		if d > 0 {
			g.interval = d
		}
	}
}

// WithFoodPlacer sets how food is relocated after it is eaten.
func WithFoodPlacer(p FoodPlacer) Option {
	return func(g *Game) {
		if p != nil {
			g.placer = p
		}
	}
}

// WithLogger sets the logger for phase transitions and collisions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSleep replaces the inter-tick wait used by Run.
func WithSleep(sleep func(context.Context, time.Duration) error) Option {
	return func(g *Game) {
		if sleep != nil {
			g.sleep = sleep
		}
	}
}

// Game owns the board state and drives one tick at a time.
// It is not safe for concurrent use; a single goroutine calls Tick or Run.
type Game struct {
	renderer Renderer
	input    InputSource
	bounds   core.Bounds
	interval time.Duration
	placer   FoodPlacer
	logger   *log.Logger
	sleep    func(context.Context, time.Duration) error

	phase Phase
	snake Snake
	food  core.Point
	tick  uint64
}

// New creates a game in the Begin phase.
func New(r Renderer, in InputSource, b core.Bounds, opts ...Option) *Game {
	g := &Game{
		renderer: r,
		input:    in,
		bounds:   b,
		interval: DefaultInterval,
		placer:   NewRandomPlacer(time.Now().UnixNano()),
		logger:   log.New(io.Discard),
		sleep:    sleepContext,
		phase:    Begin{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()
	return g
}

// reset places a fresh snake at the board center heading up and the food at
// a fixed offset from it.
func (g *Game) reset() {
	g.snake = NewSnake(g.bounds.Center(), core.DirUp)
	g.food = core.Point{X: g.bounds.Width / 4, Y: g.bounds.Height / 3}
}

// Tick samples input once, runs the current phase and moves to the next one.
// Returns true once the Quit phase has run and the caller should stop.
func (g *Game) Tick() bool {
	key := g.input.Last()
	g.tick++

	switch p := g.phase.(type) {
	case Begin:
		g.reset()
		g.renderer.Clear()
		DrawBorder(g.renderer, g.bounds)
		g.renderer.Update()
	case InGame:
		g.play(p.Key)
	case GameOver:
		g.renderer.Clear()
		mid := g.bounds.Height / 2
		drawCentered(g.renderer, g.bounds, mid, GameOverText)
		drawCentered(g.renderer, g.bounds, mid+1, GameOverHint)
		g.renderer.Update()
	case Quit:
		g.renderer.Clear()
		return true
	}

	next := Next(g.phase, key)
	if next.String() != g.phase.String() {
		g.logger.Debug("phase changed", "tick", g.tick, "from", g.phase, "to", next, "key", key)
	}
	g.phase = next
	return false
}

// play runs one InGame tick: compute the candidate snake, validate it against
// the walls and itself, then commit it or end the round.
func (g *Game) play(key core.Key) {
	eraseSnake(g.renderer, g.snake)

	candidate := g.snake.Update(KeyDirection(key))
	switch {
	case !g.bounds.Contains(candidate.Head()):
		g.logger.Debug("hit wall", "tick", g.tick, "head", candidate.Head())
		g.phase = GameOver{}
		return
	case candidate.SelfCross():
		g.logger.Debug("hit self", "tick", g.tick, "head", candidate.Head(), "len", candidate.Len())
		g.phase = GameOver{}
		return
	}
	g.snake = candidate

	if grown, ok := candidate.Eat(g.food); ok {
		g.snake = grown
		food, placed := g.placer.Place(g.food, grown, g.bounds)
		if !placed {
			g.logger.Debug("board full", "tick", g.tick, "len", grown.Len())
			g.phase = GameOver{}
			return
		}
		g.food = food
	}

	drawSnake(g.renderer, g.snake)
	g.renderer.Draw(g.food, FoodGlyph)
	g.renderer.Update()
}

// Run ticks at the configured interval until the Quit phase runs or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.logger.Debug("game loop started", "interval", g.interval, "width", g.bounds.Width, "height", g.bounds.Height)
	for {
		start := time.Now()
		if g.Tick() {
			g.logger.Debug("game loop finished", "ticks", g.tick)
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if elapsed := time.Since(start); elapsed < g.interval {
			if err := g.sleep(ctx, g.interval-elapsed); err != nil {
				return err
			}
		}
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Phase returns the phase the next tick will run.
func (g *Game) Phase() Phase {
	return g.phase
}

// Snake returns the current snake.
func (g *Game) Snake() Snake {
	return g.snake
}

// Food returns the current food position.
func (g *Game) Food() core.Point {
	return g.food
}

// Bounds returns the board bounds.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Interval returns the delay between ticks used by Run.
func (g *Game) Interval() time.Duration {
	return g.interval
}
