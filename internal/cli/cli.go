// Package cli implements the mosaic command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/pkg/buildinfo"
	"github.com/tileforge/mosaic/pkg/cache"
	"github.com/tileforge/mosaic/pkg/palette"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "mosaic"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "mosaic",
		Short:        "Mosaic authors tile mosaics from connection-signed palettes",
		Long:         `Mosaic is a tool for authoring tile mosaics: it derives connection masks from tile filenames, validates painted strokes, fills regions with compatible tiles, and serves the whole engine over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.canvasCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.strokeCommand())
	root.AddCommand(c.fillCommand())
	root.AddCommand(c.patternCommand())
	root.AddCommand(c.adjacencyCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newArtifactCache returns the cache used for rendered adjacency graphs.
// Falls back to a null cache when caching is disabled or no directory is
// available.
func newArtifactCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/mosaic/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Palette Loading
// =============================================================================

// loadPalette loads a palette from a directory of tile images or a list file.
func loadPalette(arg string) (*palette.Palette, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return palette.LoadDir(arg)
	}
	return palette.LoadFile(arg)
}
