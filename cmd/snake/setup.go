package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/config"
)

// loadConfig loads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return config.Config{}, err
	}
	flags.apply(&cfg, cmd.Flags().Changed)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// apply overrides cfg with every flag for which changed reports true.
func (f globalFlags) apply(cfg *config.Config, changed func(name string) bool) {
	if changed("width") {
		cfg.Board.Width = f.width
	}
	if changed("height") {
		cfg.Board.Height = f.height
	}
	if changed("fps") {
		cfg.TickRate = f.fps
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("food") {
		cfg.Food = f.food
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = f.logFile
	}
}

// newLogger builds the logger described by cfg.Log. Without a log file it
// writes to fallback. The returned function closes the log file.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if cfg.Log.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(cfg.Log.Level))
		if err != nil {
			return nil, nil, err
		}
		level = parsed
	}

	w, closeFn := fallback, func() {}
	if cfg.Log.File != "" {
		path, err := config.ExpandHome(cfg.Log.File)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "termsnake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// terminalSize returns the size of stdout, or 0, 0 when it is not a terminal.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}
