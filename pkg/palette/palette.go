// Package palette manages ordered tile palettes: the list of tile
// identities a canvas draws from. Palette order is significant, so two
// palettes with the same tiles in different order are different palettes.
package palette

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tileforge/mosaic/pkg/errors"
	"github.com/tileforge/mosaic/pkg/tile"
	"github.com/tileforge/mosaic/pkg/tile/compat"
)

// imageExtensions lists the asset types accepted when scanning a
// directory for tiles.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Palette is an ordered list of tile identities.
type Palette struct {
	Identities []string `json:"identities" bson:"identities"`
}

// New validates the identities and returns a palette preserving their
// order.
func New(identities []string) (*Palette, error) {
	if err := errors.ValidatePalette(identities); err != nil {
		return nil, err
	}
	out := make([]string, len(identities))
	copy(out, identities)
	return &Palette{Identities: out}, nil
}

// Signature returns the order-sensitive cache signature of the palette.
func (p *Palette) Signature() string {
	return compat.Signature(p.Identities)
}

// Len returns the number of tiles in the palette.
func (p *Palette) Len() int {
	return len(p.Identities)
}

// Table builds the compatibility table for the palette.
func (p *Palette) Table() *compat.Table {
	return compat.Build(p.Identities)
}

// SortByConnections reorders the palette so tiles with fewer connectors
// come first and decorative tiles without a signature come last. Ties
// keep their relative order. Sorting produces a new palette; the receiver
// is unchanged.
func (p *Palette) SortByConnections() *Palette {
	type entry struct {
		identity string
		count    int
	}
	entries := make([]entry, len(p.Identities))
	for i, identity := range p.Identities {
		count, ok := tile.ConnectionCount(identity)
		if !ok {
			count = tile.NumDirections + 1
		}
		entries[i] = entry{identity: identity, count: count}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count < entries[j].count
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.identity
	}
	return &Palette{Identities: out}
}

// LoadFile reads a palette from a text file with one identity per line.
// Blank lines and lines starting with # are skipped.
func LoadFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "failed to open palette file %s", path)
	}
	defer f.Close()

	var identities []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		identities = append(identities, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "failed to read palette file %s", path)
	}

	return New(identities)
}

// LoadDir scans a directory tree for image assets and returns them as a
// palette. Identities are slash-separated paths relative to the root,
// sorted lexically for a stable order.
func LoadDir(root string) (*Palette, error) {
	var identities []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		identities = append(identities, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "failed to scan palette directory %s", root)
	}

	sort.Strings(identities)
	return New(identities)
}
