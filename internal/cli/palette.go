package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/pkg/tile"
)

// paletteCommand creates the palette inspection command.
func (c *CLI) paletteCommand() *cobra.Command {
	var (
		sortConn bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "palette [dir|file]",
		Short: "List a palette's tiles and their connection masks",
		Long: `List a palette's tiles and their connection masks.

Directories are walked recursively for image files; list files hold one
identity per line with # comments. Tiles whose filenames carry no valid
8-bit signature are decorative and shown without a mask.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := loadPalette(args[0])
			if err != nil {
				return fmt.Errorf("load palette %s: %w", args[0], err)
			}
			if sortConn {
				pal = pal.SortByConnections()
			}

			tab := pal.Table()
			variants := 0
			for i := 0; i < tab.Size(); i++ {
				identity := tab.Identity(i)
				base, ok := tab.BaseMask(i)
				if !ok {
					fmt.Printf("%-40s %s\n", identity, StyleDim.Render("decorative"))
					continue
				}
				variants += len(tab.Variants(i))

				count, _ := tile.ConnectionCount(identity)
				fmt.Printf("%-40s %s %s\n", identity, base.Key(),
					StyleDim.Render(fmt.Sprintf("%d connectors", count)))

				if detailed {
					for _, v := range tab.Variants(i) {
						printDetail("rot=%d mx=%v my=%v  %s", v.Rotation, v.MirrorX, v.MirrorY, v.Mask.Key())
					}
				}
			}

			printStats(pal.Len(), variants, false)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sortConn, "sort", false, "sort tiles by connector count")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show all 16 orientation variants per tile")

	return cmd
}
