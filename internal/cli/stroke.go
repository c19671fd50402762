package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/pkg/canvas"
)

// strokeCommand creates the stroke command.
func (c *CLI) strokeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "stroke [canvas.json] [stroke.json]",
		Short: "Paint a validated stroke onto a canvas",
		Long: `Paint a validated stroke onto a canvas.

The stroke file holds an ordered JSON array of cells:

  [
    {"index": 0, "placement": {"tile": 0}},
    {"index": 1, "placement": {"tile": 1, "rotation": 1}}
  ]

The painted chain must open with a single-connector tile, run through
two-connector tiles whose connectors face exactly the previous and next
cell, and close with a two-connector tile facing back along the chain.
Invalid strokes leave the canvas untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := canvas.ImportJSON(args[0])
			if err != nil {
				return err
			}
			cells, err := readStrokeFile(args[1])
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0]
			}

			if err := cv.PaintStroke(cv.Table(nil), cells); err != nil {
				return err
			}
			if err := canvas.ExportJSON(cv, output); err != nil {
				return err
			}

			printSuccess("Painted %d cells", len(cells))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite canvas)")

	return cmd
}

func readStrokeFile(path string) ([]canvas.StrokeCell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var cells []canvas.StrokeCell
	if err := json.Unmarshal(data, &cells); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cells, nil
}
