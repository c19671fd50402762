package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/pkg/canvas"
	"github.com/tileforge/mosaic/pkg/pattern"
)

// patternCommand creates the pattern command with its subcommands.
func (c *CLI) patternCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Capture, transform and stamp canvas patterns",
	}

	cmd.AddCommand(c.patternCaptureCommand())
	cmd.AddCommand(c.patternStampCommand())
	cmd.AddCommand(c.patternRotateCommand())
	cmd.AddCommand(c.patternMirrorCommand())

	return cmd
}

// patternCaptureCommand creates the "pattern capture" subcommand.
func (c *CLI) patternCaptureCommand() *cobra.Command {
	var (
		name   string
		rect   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "capture [canvas.json]",
		Short: "Capture a rectangular region as a reusable pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := canvas.ImportJSON(args[0])
			if err != nil {
				return err
			}
			minRow, minCol, maxRow, maxCol, err := parseRect(rect)
			if err != nil {
				return err
			}

			p, err := cv.CapturePattern(name, minRow, minCol, maxRow, maxCol)
			if err != nil {
				return err
			}
			if err := writePatternFile(p, output); err != nil {
				return err
			}

			printSuccess("Captured %q (%dx%d)", p.Name, p.Width, p.Height)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "pattern name (required)")
	cmd.Flags().StringVar(&rect, "rect", "", "region as minRow,minCol,maxRow,maxCol (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "pattern.json", "output file")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("rect")

	return cmd
}

// patternStampCommand creates the "pattern stamp" subcommand.
func (c *CLI) patternStampCommand() *cobra.Command {
	var (
		row    int
		col    int
		output string
	)

	cmd := &cobra.Command{
		Use:   "stamp [canvas.json] [pattern.json]",
		Short: "Stamp a pattern onto a canvas",
		Long: `Stamp a pattern onto a canvas.

The pattern is applied with its stored rotation and mirror, anchored at the
given cell. Cells that fall outside the grid are dropped; vacant pattern
cells leave the canvas untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := canvas.ImportJSON(args[0])
			if err != nil {
				return err
			}
			p, err := readPatternFile(args[1])
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0]
			}

			written, err := cv.StampPattern(p, row, col)
			if err != nil {
				return err
			}
			if err := canvas.ExportJSON(cv, output); err != nil {
				return err
			}

			printSuccess("Stamped %q at (%d,%d), wrote %d cells", p.Name, row, col, written)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVar(&row, "row", 0, "anchor row for the pattern's top-left cell")
	cmd.Flags().IntVar(&col, "col", 0, "anchor column for the pattern's top-left cell")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite canvas)")

	return cmd
}

// patternRotateCommand creates the "pattern rotate" subcommand.
func (c *CLI) patternRotateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate [pattern.json]",
		Short: "Rotate a pattern's display transform a quarter turn clockwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPatternFile(args[0])
			if err != nil {
				return err
			}
			p.RotateCW()
			if err := writePatternFile(p, args[0]); err != nil {
				return err
			}

			w, h := p.DisplaySize()
			printSuccess("Rotation is now %d degrees (%dx%d on screen)", p.Rotation, w, h)
			return nil
		},
	}
}

// patternMirrorCommand creates the "pattern mirror" subcommand.
func (c *CLI) patternMirrorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mirror [pattern.json]",
		Short: "Toggle a pattern's horizontal mirror",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPatternFile(args[0])
			if err != nil {
				return err
			}
			p.ToggleMirror()
			if err := writePatternFile(p, args[0]); err != nil {
				return err
			}

			printSuccess("Mirror is now %v", p.MirrorX)
			return nil
		},
	}
}

// =============================================================================
// Pattern File IO
// =============================================================================

func readPatternFile(path string) (*pattern.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var p pattern.Pattern
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &p, nil
}

func writePatternFile(p *pattern.Pattern, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
