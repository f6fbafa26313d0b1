package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/simplelines/internal/core"
	lcore "github.com/vovakirdan/simplelines/internal/games/lines/core"
	"github.com/vovakirdan/simplelines/internal/platform/tui"
)

// shapeColumn is the screen width reserved for one rotation.
const shapeColumn = 12

var flagShape string

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the piece geometry table",
	Long: `Print every piece kind in all four rotations, with the primary
anchor offsets of each rotation. Row 0 is the bottom of the board.

Examples:
  lines shapes
  lines shapes --kind T`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

func init() {
	shapesCmd.Flags().StringVar(&flagShape, "kind", "", "Only print this kind (I, J, L, O, S, T, Z)")
}

func runShapes(_ *cobra.Command, _ []string) {
	kinds := lcore.AllShapes()
	if flagShape != "" {
		kind, err := lcore.ParseShapeKind(flagShape)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		kinds = []lcore.ShapeKind{kind}
	}

	for _, kind := range kinds {
		printShape(os.Stdout, kind)
	}
}

// printShape draws the four rotations of kind side by side.
func printShape(w io.Writer, kind lcore.ShapeKind) {
	fmt.Fprintf(w, "%s (%s)\n", kind, kind.Color())

	screen := core.NewScreen(shapeColumn*lcore.RotationCount, lcore.CellsPerPiece+1)
	for r := range lcore.RotationCount {
		p := lcore.NewPiece(kind, lcore.Rotation(r))
		x := r * shapeColumn
		screen.DrawText(x, 0, p.String())

		lo, hi := p.Bounds()
		for _, c := range p.Cells() {
			screen.DrawTextColored(x+(c.Col-lo.Col)*2, 1+hi.Row-c.Row, "██", p.Color())
		}
	}
	fmt.Fprintln(w, tui.RenderScreen(screen))

	for r := range lcore.RotationCount {
		p := lcore.NewPiece(kind, lcore.Rotation(r))
		fmt.Fprintf(w, "  %-6s %v\n", p.String(), p.Cells())
	}
	fmt.Fprintln(w)
}
