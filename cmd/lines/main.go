// lines is a terminal edition of SimpleLines, a falling-block puzzle where
// the player aims each piece at a column and the board cranks upward on a timer.
//
// Usage:
//
//	lines play     - Play in this terminal
//	lines serve    - Start SSH server for remote play
//	lines shapes   - Print the piece geometry table
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lines",
	Short: "SimpleLines - a falling-block puzzle for the terminal",
	Long: `SimpleLines drops each piece into the column you aim at. Fill rows to
clear them before the board cranks up and pushes blocks over the top.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  shapes   - Print the piece geometry table

Examples:
  lines play
  lines play --difficulty hard
  lines serve --ssh :2222
  lines shapes`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shapesCmd)
}
