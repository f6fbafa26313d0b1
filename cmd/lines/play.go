package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/simplelines/internal/core"
	"github.com/vovakirdan/simplelines/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play SimpleLines",
	Long: `Start a game in this terminal.

Controls:
  Mouse        - Press to aim, drag to move, release to drop
  Right/Wheel  - Rotate
  Arrows/WASD  - Move the aim cursor
  Enter        - Drop (or start from the intro)
  Space/X      - Rotate
  C            - Crank the board now
  P/Esc        - Pause / resume
  Q            - Quit to the intro from pause, otherwise exit
  R            - Replay after game over
  Ctrl+S       - Save a screenshot

Difficulty options:
  easy   - Slower timer and wider crank holes
  normal - Default progression
  hard   - Start at level 5 with a faster timer floor
  fixed  - No progression, stays at config's initial level

Examples:
  lines play
  lines play --difficulty easy
  lines play --seed 42
  lines play --config ./my-lines.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger("lines", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(gameCfg, rt, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
