package canvas

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tileforge/mosaic/pkg/errors"
	"github.com/tileforge/mosaic/pkg/tile"
)

// ReadJSON decodes a canvas document from r and validates it.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - The geometry or palette is invalid
//   - A cell index is outside the grid or references a tile outside the
//     palette
//
// The returned canvas is independent of r and can be modified safely
// after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Canvas, error) {
	var c Canvas
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := errors.ValidateCanvasName(c.Name); err != nil {
		return nil, err
	}
	if err := errors.ValidateGeometry(c.Geometry.Rows, c.Geometry.Columns, c.Geometry.TileSize, c.Geometry.Gap); err != nil {
		return nil, err
	}
	if err := errors.ValidatePalette(c.Palette); err != nil {
		return nil, err
	}
	for index, p := range c.Cells {
		if index < 0 || index >= c.Geometry.Cells() {
			return nil, errors.New(errors.ErrCodeOutOfBounds, "cell %d outside %dx%d grid",
				index, c.Geometry.Columns, c.Geometry.Rows)
		}
		if p.IsEmpty() {
			delete(c.Cells, index)
			continue
		}
		if p.Tile < 0 || p.Tile >= len(c.Palette) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "cell %d references tile %d outside palette of %d",
				index, p.Tile, len(c.Palette))
		}
	}
	if c.Cells == nil {
		c.Cells = make(map[int]tile.Placement)
	}

	return &c, nil
}

// ImportJSON reads a canvas document from the file at path.
func ImportJSON(path string) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes the canvas as indented JSON to w.
func WriteJSON(c *Canvas, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the canvas to the file at path.
func ExportJSON(c *Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(c, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
