package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/pkg/cache"
	"github.com/tileforge/mosaic/pkg/canvas"
	"github.com/tileforge/mosaic/pkg/tile/compat"
)

// adjacencyCommand creates the adjacency graph command.
func (c *CLI) adjacencyCommand() *cobra.Command {
	var (
		format   string
		detailed bool
		output   string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "adjacency [canvas.json|palette-dir|palette-file]",
		Short: "Render the palette's tile interchange graph",
		Long: `Render the palette's tile interchange graph.

Two tiles are connected when some orientation of one produces exactly the
same connection mask as some orientation of the other, meaning they are
interchangeable at that mask. SVG and PNG rendering goes through Graphviz
and is cached locally; DOT output is always computed fresh.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identities, err := loadIdentities(args[0])
			if err != nil {
				return err
			}
			return c.runAdjacency(cmd.Context(), identities, format, detailed, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label edges with the shared mask keys")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, adjacency.<ext> otherwise)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable render caching")

	return cmd
}

// runAdjacency builds the DOT graph and renders it in the requested format.
func (c *CLI) runAdjacency(ctx context.Context, identities []string, format string, detailed bool, output string, noCache bool) error {
	tab := compat.Build(identities)
	dot := tab.ToDOT(compat.DotOptions{Detailed: detailed})

	if format == "dot" {
		if output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Wrote adjacency graph")
		printFile(output)
		return nil
	}

	var render func(string) ([]byte, error)
	switch format {
	case "svg":
		render = compat.RenderSVG
	case "png":
		render = compat.RenderPNG
	default:
		return fmt.Errorf("unsupported format %q: want dot, svg or png", format)
	}
	if output == "" {
		output = "adjacency." + format
	}

	artifacts, err := newArtifactCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer artifacts.Close()

	key := cache.NewDefaultKeyer().RenderKey(
		cache.Hash([]byte(compat.Signature(identities))),
		cache.RenderKeyOpts{Format: format, Detailed: detailed},
	)

	data, hit, err := artifacts.Get(ctx, key)
	if err != nil || !hit {
		spinner := newSpinnerWithContext(ctx, "Rendering adjacency graph...")
		spinner.Start()
		data, err = render(dot)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return err
		}
		spinner.Stop()

		if err := artifacts.Set(ctx, key, data, 0); err != nil {
			c.Logger.Warn("failed to cache rendered graph", "err", err)
		}
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Wrote adjacency graph")
	printStats(tab.Size(), 0, hit)
	printFile(output)
	return nil
}

// loadIdentities resolves a command argument to palette identities. A JSON
// file is read as a canvas; anything else is treated as a palette source.
func loadIdentities(arg string) ([]string, error) {
	if strings.HasSuffix(arg, ".json") {
		cv, err := canvas.ImportJSON(arg)
		if err != nil {
			return nil, err
		}
		return cv.Palette, nil
	}
	pal, err := loadPalette(arg)
	if err != nil {
		return nil, fmt.Errorf("load palette %s: %w", arg, err)
	}
	return pal.Identities, nil
}
