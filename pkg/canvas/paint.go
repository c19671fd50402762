package canvas

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/tileforge/mosaic/pkg/errors"
	"github.com/tileforge/mosaic/pkg/grid"
	"github.com/tileforge/mosaic/pkg/pattern"
	"github.com/tileforge/mosaic/pkg/stroke"
	"github.com/tileforge/mosaic/pkg/tile"
	"github.com/tileforge/mosaic/pkg/tile/compat"
)

// StrokeCell is one step of a painted stroke: the cell it covers and the
// placement to put there.
type StrokeCell struct {
	Index     int            `json:"index"`
	Placement tile.Placement `json:"placement"`
}

// PaintStroke applies a stroke atomically: all placements are written,
// the resulting chain is validated, and on failure every touched cell is
// restored to its previous content.
func (c *Canvas) PaintStroke(tab *compat.Table, cells []StrokeCell) error {
	if len(cells) == 0 {
		return errors.New(errors.ErrCodeInvalidStroke, "stroke has no cells")
	}

	// Snapshot for rollback before mutating anything.
	previous := make(map[int]tile.Placement, len(cells))
	order := make([]int, len(cells))
	for i, sc := range cells {
		if _, seen := previous[sc.Index]; seen {
			return errors.New(errors.ErrCodeInvalidStroke, "stroke visits cell %d twice", sc.Index)
		}
		previous[sc.Index] = c.At(sc.Index)
		order[i] = sc.Index
	}

	rollback := func() {
		for index, p := range previous {
			_ = c.Set(index, p)
		}
	}

	for _, sc := range cells {
		if err := c.Set(sc.Index, sc.Placement); err != nil {
			rollback()
			return err
		}
	}

	if !stroke.Valid(order, c.Cells, c.Geometry.Columns, tab) {
		rollback()
		return errors.New(errors.ErrCodeInvalidStroke, "stroke does not form a single connected chain")
	}

	return nil
}

// FloodFill visits every vacant cell in spiral order and places a random
// palette variant whose connectors agree with all already-placed
// neighbors. Cells with no compatible variant stay vacant. The fill is
// deterministic for a given canvas state and seed. Returns the number of
// cells placed.
func (c *Canvas) FloodFill(tab *compat.Table, seed int64) int {
	rng := rand.New(rand.NewSource(seed))
	placed := 0

	for _, index := range grid.SpiralOrder(c.Geometry.Columns, c.Geometry.Rows) {
		if !c.At(index).IsEmpty() {
			continue
		}
		candidates := c.CompatibleVariants(tab, index)
		if len(candidates) == 0 {
			continue
		}
		v := candidates[rng.Intn(len(candidates))]
		if err := c.Set(index, v.Placement()); err == nil {
			placed++
		}
	}

	return placed
}

// FillRect is FloodFill restricted to a sub-rectangle of the canvas.
func (c *Canvas) FillRect(tab *compat.Table, minRow, minCol, maxRow, maxCol int, seed int64) (int, error) {
	if err := c.checkRect(minRow, minCol, maxRow, maxCol); err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(seed))
	placed := 0
	for _, index := range grid.SpiralOrderInRect(minRow, minCol, maxRow, maxCol, c.Geometry.Columns) {
		if !c.At(index).IsEmpty() {
			continue
		}
		candidates := c.CompatibleVariants(tab, index)
		if len(candidates) == 0 {
			continue
		}
		v := candidates[rng.Intn(len(candidates))]
		if err := c.Set(index, v.Placement()); err == nil {
			placed++
		}
	}

	return placed, nil
}

// CompatibleVariants returns every palette variant whose mask agrees with
// all occupied neighbors of the cell: wherever a neighbor has a connector
// toward the cell, the candidate must connect back, and wherever it has
// none, the candidate must not point at it. Vacant and off-canvas
// neighbors leave the corresponding slot unconstrained. Tiles without a
// connection signature never participate in fills.
func (c *Canvas) CompatibleVariants(tab *compat.Table, index int) []compat.Variant {
	row, col := c.Geometry.CellAt(index)
	if row < 0 {
		return nil
	}

	// required[d]: what the candidate's slot d must be; free[d] marks
	// unconstrained slots.
	var required tile.Mask
	var free [tile.NumDirections]bool
	for d := tile.North; d < tile.NumDirections; d++ {
		dRow, dCol := d.Delta()
		neighbor := c.Geometry.CellIndex(row+dRow, col+dCol)
		if neighbor < 0 {
			free[d] = true
			continue
		}
		p := c.At(neighbor)
		if p.IsEmpty() {
			free[d] = true
			continue
		}
		m, ok := tab.ConnectionsFor(p)
		if !ok {
			// Decorative neighbor: nothing to connect to.
			required[d] = false
			continue
		}
		required[d] = m[d.Opposite()]
	}

	var candidates []compat.Variant
	for t := 0; t < tab.Size(); t++ {
		for _, v := range tab.Variants(t) {
			match := true
			for d := tile.North; d < tile.NumDirections; d++ {
				if !free[d] && v.Mask[d] != required[d] {
					match = false
					break
				}
			}
			if match {
				candidates = append(candidates, v)
			}
		}
	}
	return candidates
}

// CapturePattern copies a rectangular selection into a new pattern with
// identity display transform. Vacant cells become empty pattern cells.
func (c *Canvas) CapturePattern(name string, minRow, minCol, maxRow, maxCol int) (*pattern.Pattern, error) {
	if err := errors.ValidateCanvasName(name); err != nil {
		return nil, err
	}
	if err := c.checkRect(minRow, minCol, maxRow, maxCol); err != nil {
		return nil, err
	}

	width := maxCol - minCol + 1
	height := maxRow - minRow + 1
	tiles := make([]tile.Placement, 0, width*height)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			tiles = append(tiles, c.At(c.Geometry.CellIndex(row, col)))
		}
	}

	return &pattern.Pattern{
		ID:     uuid.NewString(),
		Name:   name,
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}, nil
}

// StampPattern writes a pattern onto the canvas with its top-left display
// corner at (originRow, originCol), under the pattern's current rotation
// and mirror. Empty pattern cells leave the canvas untouched; cells that
// fall outside the canvas are dropped. Returns the number of cells
// written.
func (c *Canvas) StampPattern(p *pattern.Pattern, originRow, originCol int) (int, error) {
	width, height := p.DisplaySize()
	if _, _, ok := pattern.RotatedDimensions(p.Rotation, p.Width, p.Height); !ok {
		return 0, errors.New(errors.ErrCodeInvalidPattern, "invalid pattern rotation %d", p.Rotation)
	}

	written := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			placement := p.AtDisplay(row, col)
			if placement.IsEmpty() {
				continue
			}
			index := c.Geometry.CellIndex(originRow+row, originCol+col)
			if index < 0 {
				continue
			}
			if err := c.Set(index, placement); err != nil {
				return written, err
			}
			written++
		}
	}

	return written, nil
}

func (c *Canvas) checkRect(minRow, minCol, maxRow, maxCol int) error {
	if minRow > maxRow || minCol > maxCol {
		return errors.New(errors.ErrCodeInvalidInput, "inverted rectangle (%d,%d)-(%d,%d)",
			minRow, minCol, maxRow, maxCol)
	}
	if minRow < 0 || minCol < 0 || maxRow >= c.Geometry.Rows || maxCol >= c.Geometry.Columns {
		return errors.New(errors.ErrCodeOutOfBounds, "rectangle (%d,%d)-(%d,%d) outside %dx%d grid",
			minRow, minCol, maxRow, maxCol, c.Geometry.Columns, c.Geometry.Rows)
	}
	return nil
}
