package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/pkg/canvas"
)

// fillCommand creates the fill command.
func (c *CLI) fillCommand() *cobra.Command {
	var (
		seed   int64
		rect   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "fill [canvas.json]",
		Short: "Fill vacant cells with compatible tiles",
		Long: `Fill vacant cells with compatible tiles.

Cells are visited in clockwise-inward spiral order. Each vacant cell gets a
random orientation variant whose connection mask agrees bit-by-bit with all
already-occupied neighbors. Cells with no compatible variant stay vacant.

The same seed over the same canvas produces the same result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := canvas.ImportJSON(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0]
			}

			prog := newProgress(c.Logger)
			tab := cv.Table(nil)

			var placed int
			if rect != "" {
				minRow, minCol, maxRow, maxCol, err := parseRect(rect)
				if err != nil {
					return err
				}
				placed, err = cv.FillRect(tab, minRow, minCol, maxRow, maxCol, seed)
				if err != nil {
					return err
				}
			} else {
				placed = cv.FloodFill(tab, seed)
			}
			prog.done(fmt.Sprintf("Filled %d cells", placed))

			if err := canvas.ExportJSON(cv, output); err != nil {
				return err
			}

			if placed == 0 {
				printWarning("No cells could be filled")
			} else {
				printSuccess("Placed %d tiles (%d/%d occupied)", placed, cv.Occupied(), cv.Geometry.Cells())
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for tile selection")
	cmd.Flags().StringVar(&rect, "rect", "", "restrict fill to minRow,minCol,maxRow,maxCol")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

// parseRect parses "minRow,minCol,maxRow,maxCol" into its four components.
func parseRect(s string) (minRow, minCol, maxRow, maxCol int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("invalid rect %q: want minRow,minCol,maxRow,maxCol", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, 0, fmt.Errorf("invalid rect %q: %w", s, err)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}
