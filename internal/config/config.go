// Package config provides YAML-based configuration loading for termsnake.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/games/snake"
)

// Fallback board size used when the terminal size cannot be determined.
const (
	FallbackWidth  = 70
	FallbackHeight = 30
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all settings for the game and its frontends.
type Config struct {
	Board    BoardConfig `yaml:"board"`
	TickRate int         `yaml:"tick_rate"` // Ticks per second
	Food     string      `yaml:"food"`      // "random" or "swap"
	Seed     int64       `yaml:"seed"`      // 0 means use current time
	SSH      SSHConfig   `yaml:"ssh"`
	Log      LogConfig   `yaml:"log"`
}

// BoardConfig sets the frame size in terminal cells.
// Zero means "use the terminal size".
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SSHConfig configures the serve command.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // Empty means ~/.termsnake/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr for serve, discard for full-screen commands
}

// Interval returns the delay between ticks.
func (c Config) Interval() time.Duration {
	if c.TickRate <= 0 {
		return snake.DefaultInterval
	}
	return time.Second / time.Duration(c.TickRate)
}

// IdleTimeout returns the SSH idle timeout.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMinutes) * time.Minute
}

// BoardSize resolves the frame size. Configured dimensions win; otherwise the
// detected terminal size is used, and FallbackWidth x FallbackHeight when
// detection failed (termW or termH <= 0).
func (c Config) BoardSize(termW, termH int) (core.Coordinate, core.Coordinate) {
	w, h := c.Board.Width, c.Board.Height
	if w == 0 {
		w = termW
		if w <= 0 {
			w = FallbackWidth
		}
	}
	if h == 0 {
		h = termH
		if h <= 0 {
			h = FallbackHeight
		}
	}
	return clampCoordinate(w), clampCoordinate(h)
}

// Bounds resolves the board bounds for the given terminal size.
func (c Config) Bounds(termW, termH int) (core.Bounds, error) {
	w, h := c.BoardSize(termW, termH)
	return core.NewBounds(w, h)
}

// GameOptions translates the configuration into engine options.
// A zero seed is replaced with the current time.
func (c Config) GameOptions(logger *log.Logger) ([]snake.Option, error) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	placer, err := snake.PlacerFor(c.Food, seed)
	if err != nil {
		return nil, err
	}
	return []snake.Option{
		snake.WithInterval(c.Interval()),
		snake.WithFoodPlacer(placer),
		snake.WithLogger(logger),
	}, nil
}

func clampCoordinate(v int) core.Coordinate {
	switch {
	case v < 0:
		return 0
	case v > core.MaxCoordinate:
		return core.MaxCoordinate
	}
	return core.Coordinate(v)
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var problems []string

	dims := []struct {
		name string
		v    int
	}{{"board.width", c.Board.Width}, {"board.height", c.Board.Height}}
	for _, d := range dims {
		if d.v != 0 && (d.v < 2 || d.v > core.MaxCoordinate) {
			problems = append(problems, fmt.Sprintf("%s must be 0 or between 2 and %d, got %d", d.name, core.MaxCoordinate, d.v))
		}
	}
	if c.TickRate <= 0 {
		problems = append(problems, fmt.Sprintf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Food != snake.FoodRandom && c.Food != snake.FoodSwap {
		problems = append(problems, fmt.Sprintf("food must be %q or %q, got %q", snake.FoodRandom, snake.FoodSwap, c.Food))
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		problems = append(problems, fmt.Sprintf("ssh.idle_timeout_minutes must not be negative, got %d", c.SSH.IdleTimeoutMinutes))
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}
