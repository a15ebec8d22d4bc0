package rawterm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// Run plays one game on stdout until the player quits or ctx is done.
// ctrl+c ends the game like ctx cancellation and is not reported as an error.
func Run(ctx context.Context, cfg config.Config, termW, termH int, logger *log.Logger) error {
	b, err := cfg.Bounds(termW, termH)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	opts, err := cfg.GameOptions(logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	kb, err := OpenKeyboard(cancel, logger)
	if err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	defer func() {
		if cerr := kb.Close(); cerr != nil {
			logger.Warn("cannot restore terminal", "error", cerr)
		}
	}()

	r := NewRenderer(os.Stdout)
	r.Start()
	defer r.Stop()

	return play(ctx, r, kb, b, opts...)
}

// play runs the game loop and folds renderer failures into the result.
func play(ctx context.Context, r *Renderer, in snake.InputSource, b core.Bounds, opts ...snake.Option) error {
	g := snake.New(r, in, b, opts...)
	err := g.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return err
	}
	if rerr := r.Err(); rerr != nil {
		return fmt.Errorf("output: %w", rerr)
	}
	return nil
}
