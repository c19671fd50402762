// Package canvas ties the mosaic engine together: a canvas document holds
// the grid geometry, the ordered palette and the placed tiles, and the
// authoring operations (stroke painting, flood fill, pattern capture and
// stamping) mutate it through the compatibility table.
package canvas

import (
	"github.com/google/uuid"

	"github.com/tileforge/mosaic/pkg/errors"
	"github.com/tileforge/mosaic/pkg/grid"
	"github.com/tileforge/mosaic/pkg/tile"
	"github.com/tileforge/mosaic/pkg/tile/compat"
)

// Canvas is a mosaic document. Cells is sparse: only occupied cells have
// an entry, keyed by row-major cell index.
type Canvas struct {
	ID       string                 `json:"id" bson:"_id"`
	Name     string                 `json:"name" bson:"name"`
	Geometry grid.Geometry          `json:"geometry" bson:"geometry"`
	Palette  []string               `json:"palette" bson:"palette"`
	Cells    map[int]tile.Placement `json:"cells" bson:"cells"`
}

// New creates an empty canvas after validating its name, geometry and
// palette.
func New(name string, geometry grid.Geometry, palette []string) (*Canvas, error) {
	if err := errors.ValidateCanvasName(name); err != nil {
		return nil, err
	}
	if err := errors.ValidateGeometry(geometry.Rows, geometry.Columns, geometry.TileSize, geometry.Gap); err != nil {
		return nil, err
	}
	if err := errors.ValidatePalette(palette); err != nil {
		return nil, err
	}

	return &Canvas{
		ID:       uuid.NewString(),
		Name:     name,
		Geometry: geometry,
		Palette:  palette,
		Cells:    make(map[int]tile.Placement),
	}, nil
}

// Table builds the canvas's compatibility table through the given cache.
// A nil cache builds an uncached table.
func (c *Canvas) Table(tables *compat.Cache) *compat.Table {
	if tables == nil {
		return compat.Build(c.Palette)
	}
	return tables.Table(c.Palette)
}

// At returns the placement at a cell, or [tile.Empty] when the cell is
// vacant or out of bounds.
func (c *Canvas) At(index int) tile.Placement {
	p, ok := c.Cells[index]
	if !ok {
		return tile.Empty
	}
	return p
}

// Set places a tile at a cell. Setting [tile.Empty] clears the cell.
func (c *Canvas) Set(index int, p tile.Placement) error {
	if index < 0 || index >= c.Geometry.Cells() {
		return errors.New(errors.ErrCodeOutOfBounds, "cell %d outside %dx%d grid",
			index, c.Geometry.Columns, c.Geometry.Rows)
	}
	if c.Cells == nil {
		c.Cells = make(map[int]tile.Placement)
	}
	if p.IsEmpty() {
		delete(c.Cells, index)
		return nil
	}
	if p.Tile < 0 || p.Tile >= len(c.Palette) {
		return errors.New(errors.ErrCodeInvalidInput, "tile %d outside palette of %d", p.Tile, len(c.Palette))
	}
	c.Cells[index] = p
	return nil
}

// Clear removes every placement.
func (c *Canvas) Clear() {
	c.Cells = make(map[int]tile.Placement)
}

// Occupied returns the number of placed cells.
func (c *Canvas) Occupied() int {
	return len(c.Cells)
}
