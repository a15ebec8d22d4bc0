// snake is a terminal snake game.
//
// Usage:
//
//	snake                - Play in the terminal (same as "snake play")
//	snake play           - Play with the Bubble Tea frontend
//	snake raw            - Play with raw terminal output, no UI framework
//	snake serve          - Start SSH server for remote play
//	snake config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Configuration file
//	--width, --height    - Board size in cells (default: terminal size)
//	--fps <rate>         - Ticks per second (default: 10)
//	--seed <value>       - Food RNG seed (0 = random based on time)
//	--food <policy>      - Food placement: random or swap
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags that override the config file.
type globalFlags struct {
	config   string
	width    int
	height   int
	fps      int
	seed     int64
	food     string
	logLevel string
	logFile  string
}

var flags globalFlags

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Steer the snake with the arrow keys, eat the food and do not run into
the walls or yourself.

Available commands:
  play     - Play with the Bubble Tea frontend (default)
  raw      - Play with raw terminal output
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --fps 15 --food swap
  snake raw --width 40 --height 20
  snake serve --ssh :2222`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "Path to config YAML")
	pf.IntVar(&flags.width, "width", 0, "Board width in cells (0 = terminal width)")
	pf.IntVar(&flags.height, "height", 0, "Board height in cells (0 = terminal height)")
	pf.IntVar(&flags.fps, "fps", 10, "Tick rate (ticks per second)")
	pf.Int64Var(&flags.seed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flags.food, "food", "random", "Food placement policy: random or swap")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rawCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
