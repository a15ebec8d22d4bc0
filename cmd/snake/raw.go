package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termsnake/internal/platform/rawterm"
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Play with raw terminal output",
	Long: `Start a game drawn with plain cursor movement escape sequences and
read keys in raw mode. Useful on terminals where the default frontend
misbehaves.

Controls:
  Arrows/WASD  - Steer
  B            - Play again (after game over)
  Q            - Quit
  Ctrl+C       - Exit immediately

Examples:
  snake raw
  snake raw --width 40 --height 20`,
	Args: cobra.NoArgs,
	RunE: runRaw,
}

func runRaw(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	w, h := terminalSize()
	logger.Info("starting game", "frontend", "raw", "terminal_width", w, "terminal_height", h)
	return rawterm.Run(cmd.Context(), cfg, w, h, logger)
}
