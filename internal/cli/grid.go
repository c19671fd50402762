package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/pkg/canvas"
	"github.com/tileforge/mosaic/pkg/grid"
)

// gridCommand creates the grid inspection command.
func (c *CLI) gridCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Inspect a canvas's fill order and resolution levels",
	}

	cmd.AddCommand(c.gridSpiralCommand())
	cmd.AddCommand(c.gridLevelsCommand())

	return cmd
}

// gridSpiralCommand creates the "grid spiral" subcommand.
func (c *CLI) gridSpiralCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "spiral [canvas.json]",
		Short: "Print the clockwise-inward spiral fill order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := canvas.ImportJSON(args[0])
			if err != nil {
				return err
			}

			order := grid.SpiralOrder(cv.Geometry.Columns, cv.Geometry.Rows)
			parts := make([]string, len(order))
			for i, idx := range order {
				parts[i] = fmt.Sprintf("%d", idx)
			}
			fmt.Println(strings.Join(parts, " "))
			return nil
		},
	}
}

// gridLevelsCommand creates the "grid levels" subcommand.
func (c *CLI) gridLevelsCommand() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "levels [canvas.json]",
		Short: "Print the power-of-two resolution bands for a level",
		Long: `Print the power-of-two resolution bands for a level.

Level 1 covers single cells; each higher level doubles the block span.
Blocks grow outward from the grid center, and partial blocks at the edges
are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := canvas.ImportJSON(args[0])
			if err != nil {
				return err
			}
			g := cv.Geometry

			if level == 0 {
				level = grid.MaxLevel(g)
			}
			info, ok := grid.Level(g, level)
			if !ok {
				return fmt.Errorf("level %d has no full blocks on a %dx%d grid", level, g.Columns, g.Rows)
			}

			printKeyValue("Level", fmt.Sprintf("%d of %d", info.Level, grid.MaxLevel(g)))
			printKeyValue("Span", fmt.Sprintf("%d cells", info.Span))
			printKeyValue("Blocks", fmt.Sprintf("%d x %d", len(info.ColBands), len(info.RowBands)))

			vertical, horizontal := grid.LevelLinePositions(g, level)
			printKeyValue("V lines", formatPositions(vertical))
			printKeyValue("H lines", formatPositions(horizontal))
			return nil
		},
	}

	cmd.Flags().IntVar(&level, "level", 0, "resolution level (default: highest available)")

	return cmd
}

func formatPositions(ps []float64) string {
	if len(ps) == 0 {
		return "none"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%.0f", p)
	}
	return strings.Join(parts, " ")
}
