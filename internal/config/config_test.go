package config

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/games/snake"
)

func TestInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{10, 100 * time.Millisecond},
		{4, 250 * time.Millisecond},
		{0, snake.DefaultInterval},
		{-3, snake.DefaultInterval},
	}

	for _, tt := range tests {
		cfg := Config{TickRate: tt.rate}
		if got := cfg.Interval(); got != tt.expected {
			t.Errorf("Interval() with tick_rate %d = %v, expected %v", tt.rate, got, tt.expected)
		}
	}
}

func TestBoundsTooSmall(t *testing.T) {
	cfg := Default()
	cfg.Board = BoardConfig{Width: 1, Height: 5}
	if _, err := cfg.Bounds(80, 24); err == nil {
		t.Error("Bounds() expected error for a 1-cell wide board")
	}
}

func TestGameOptions(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	opts, err := cfg.GameOptions(log.New(io.Discard))
	if err != nil {
		t.Fatalf("GameOptions() error: %v", err)
	}
	if len(opts) == 0 {
		t.Error("GameOptions() returned no options")
	}

	cfg.Food = "teleport"
	if _, err := cfg.GameOptions(nil); !errors.Is(err, snake.ErrUnknownFoodPolicy) {
		t.Errorf("GameOptions() error = %v, expected ErrUnknownFoodPolicy", err)
	}
}
