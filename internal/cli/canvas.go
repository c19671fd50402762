package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/pkg/canvas"
	"github.com/tileforge/mosaic/pkg/grid"
)

// canvasCommand creates the canvas management command.
func (c *CLI) canvasCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "Create and inspect canvas files",
	}

	cmd.AddCommand(c.canvasNewCommand())
	cmd.AddCommand(c.canvasInfoCommand())

	return cmd
}

// canvasNewCommand creates the "canvas new" subcommand.
func (c *CLI) canvasNewCommand() *cobra.Command {
	var (
		rows       int
		columns    int
		tileSize   float64
		gap        float64
		palettePth string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create an empty canvas file",
		Long: `Create an empty canvas file.

The palette is loaded from a directory of tile images or from a list file
with one identity per line. Tile connection masks are derived from the
8-bit suffix in each filename (e.g. straight_00100010.png).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := loadPalette(palettePth)
			if err != nil {
				return fmt.Errorf("load palette %s: %w", palettePth, err)
			}

			cv, err := canvas.New(args[0], grid.Geometry{
				Rows:     rows,
				Columns:  columns,
				TileSize: tileSize,
				Gap:      gap,
			}, pal.Identities)
			if err != nil {
				return err
			}
			if err := canvas.ExportJSON(cv, output); err != nil {
				return err
			}

			printSuccess("Created canvas %q (%dx%d, %d tiles)", cv.Name, columns, rows, pal.Len())
			printFile(output)
			printNextStep("Fill it", fmt.Sprintf("mosaic fill %s", output))
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 8, "number of grid rows")
	cmd.Flags().IntVar(&columns, "cols", 8, "number of grid columns")
	cmd.Flags().Float64Var(&tileSize, "tile-size", 64, "tile edge length in pixels")
	cmd.Flags().Float64Var(&gap, "gap", 0, "gap between tiles in pixels")
	cmd.Flags().StringVarP(&palettePth, "palette", "p", "", "palette directory or list file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "canvas.json", "output file")
	_ = cmd.MarkFlagRequired("palette")

	return cmd
}

// canvasInfoCommand creates the "canvas info" subcommand.
func (c *CLI) canvasInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [canvas.json]",
		Short: "Print canvas geometry and occupancy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := canvas.ImportJSON(args[0])
			if err != nil {
				return err
			}

			g := cv.Geometry
			printKeyValue("Name", cv.Name)
			printKeyValue("Grid", fmt.Sprintf("%d x %d", g.Columns, g.Rows))
			printKeyValue("Pixels", fmt.Sprintf("%.0f x %.0f", g.Width(), g.Height()))
			printKeyValue("Palette", fmt.Sprintf("%d tiles", len(cv.Palette)))
			printKeyValue("Occupied", fmt.Sprintf("%d / %d", cv.Occupied(), g.Cells()))
			printKeyValue("Max level", fmt.Sprintf("%d", grid.MaxLevel(g)))
			return nil
		},
	}
}
