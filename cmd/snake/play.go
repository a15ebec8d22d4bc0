package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game that fills the terminal.

Controls:
  Arrows/WASD  - Steer
  B            - Play again (after game over)
  Q            - Quit
  Ctrl+C       - Exit immediately

Any key starts the first round. Logs are discarded unless --log-file is set.

Examples:
  snake play
  snake play --fps 20
  snake play --food swap --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
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
	logger.Info("starting game", "frontend", "tui", "terminal_width", w, "terminal_height", h)
	return tui.Run(cfg, w, h, logger)
}
