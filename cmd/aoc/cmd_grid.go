package main

import (
	"fmt"
	"strings"

	"aoc2024/internal/coord"
	"aoc2024/internal/grid"
	"aoc2024/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	gridBackground string
	gridHighlight  string
)

// gridCmd renders a text file as a grid
var gridCmd = &cobra.Command{
	Use:   "grid <file>",
	Short: "Parse a file as a grid and print it with its bounds",
	Long: `Parses a text file into a grid and prints its bounds followed by the
rendering. Positions past the end of short rows are drawn as the background.

Example:
  aoc grid day06/input.txt --highlight '^#'`,
	Args: cobra.ExactArgs(1),
	RunE: showGrid,
}

func init() {
	gridCmd.Flags().StringVar(&gridBackground, "background", "", "Rune drawn for absent cells (default from config)")
	gridCmd.Flags().StringVar(&gridHighlight, "highlight", "", "Symbols to highlight")
}

func showGrid(cmd *cobra.Command, args []string) error {
	g, err := grid.Load(args[0])
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryGrid).Debug("grid loaded",
		zap.String("path", args[0]),
		zap.Int("cells", g.Len()))

	background := cfg.BackgroundRune()
	for _, r := range gridBackground {
		background = r
		break
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, describeGrid(g))
	fmt.Fprint(out, renderGrid(g, background, gridHighlight, cfg.Render.Highlight))
	return nil
}

func describeGrid(g *grid.Grid) string {
	lo, hi := g.Bounds()
	return fmt.Sprintf("bounds %v..%v  %dx%d  %d cells", lo, hi, g.Width(), g.Height(), g.Len())
}

func renderGrid(g *grid.Grid, background rune, highlight, color string) string {
	if highlight == "" {
		return g.Render(background)
	}
	style := highlightStyle(color)
	return g.RenderFunc(func(_ coord.Coord, r rune, ok bool) string {
		if !ok {
			return string(background)
		}
		if strings.ContainsRune(highlight, r) {
			return style.Render(string(r))
		}
		return string(r)
	})
}
