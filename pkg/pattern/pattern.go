// Package pattern stores rectangular tile captures and maps their cells
// through display transforms.
//
// A pattern's tiles live in a fixed row-major footprint; rotation and
// mirroring are view state applied on top. The display mapping mirrors
// first and rotates second, which is the opposite of how connection masks
// compose their transforms: a pattern transform moves whole cells, not
// connector slots, and stamping needs the mirror to happen in the source
// frame so the rotation always acts on the same axes.
package pattern

import (
	"github.com/tileforge/mosaic/pkg/tile"
)

// Cell addresses one position inside a pattern footprint.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// canonicalRotation maps a clockwise rotation in degrees to quarter turns.
// Only the four axis-aligned rotations are meaningful for a tile grid.
func canonicalRotation(deg int) (int, bool) {
	switch deg {
	case 0, 90, 180, 270:
		return deg / 90, true
	}
	return 0, false
}

// RotatedDimensions returns the displayed width and height of a
// width x height footprint under the given clockwise rotation.
// ok is false for rotations other than 0, 90, 180 or 270 degrees.
func RotatedDimensions(rotationCW, width, height int) (int, int, bool) {
	q, ok := canonicalRotation(rotationCW)
	if !ok {
		return 0, 0, false
	}
	if q%2 == 1 {
		return height, width, true
	}
	return width, height, true
}

// CellToDisplay maps a source cell to its displayed position under the
// given transform. Mirroring is applied before rotation. ok is false for
// an invalid rotation or a cell outside the footprint.
func CellToDisplay(row, col, width, height, rotationCW int, mirrorX bool) (Cell, bool) {
	q, ok := canonicalRotation(rotationCW)
	if !ok {
		return Cell{}, false
	}
	if row < 0 || row >= height || col < 0 || col >= width {
		return Cell{}, false
	}

	if mirrorX {
		col = width - 1 - col
	}
	switch q {
	case 0:
		return Cell{Row: row, Col: col}, true
	case 1:
		return Cell{Row: col, Col: height - 1 - row}, true
	case 2:
		return Cell{Row: height - 1 - row, Col: width - 1 - col}, true
	default:
		return Cell{Row: width - 1 - col, Col: row}, true
	}
}

// DisplayToCell inverts [CellToDisplay]: it maps a displayed position back
// to the source cell that produced it. ok is false for an invalid rotation
// or a display position outside the rotated footprint.
func DisplayToCell(dispRow, dispCol, width, height, rotationCW int, mirrorX bool) (Cell, bool) {
	q, ok := canonicalRotation(rotationCW)
	if !ok {
		return Cell{}, false
	}
	dw, dh, _ := RotatedDimensions(rotationCW, width, height)
	if dispRow < 0 || dispRow >= dh || dispCol < 0 || dispCol >= dw {
		return Cell{}, false
	}

	var row, col int
	switch q {
	case 0:
		row, col = dispRow, dispCol
	case 1:
		row, col = height-1-dispCol, dispRow
	case 2:
		row, col = height-1-dispRow, width-1-dispCol
	default:
		row, col = dispCol, width-1-dispRow
	}
	if mirrorX {
		col = width - 1 - col
	}
	return Cell{Row: row, Col: col}, true
}

// Pattern is a captured rectangle of placements plus its display transform.
// Tiles are stored row-major over the original footprint; empty cells hold
// [tile.Empty].
type Pattern struct {
	ID       string           `json:"id" bson:"_id"`
	Name     string           `json:"name" bson:"name"`
	Width    int              `json:"width" bson:"width"`
	Height   int              `json:"height" bson:"height"`
	Tiles    []tile.Placement `json:"tiles" bson:"tiles"`
	Rotation int              `json:"rotation" bson:"rotation"`
	MirrorX  bool             `json:"mirror_x" bson:"mirror_x"`
}

// At returns the stored placement at a source cell, or [tile.Empty] when
// the cell is outside the footprint.
func (p *Pattern) At(row, col int) tile.Placement {
	if row < 0 || row >= p.Height || col < 0 || col >= p.Width {
		return tile.Empty
	}
	i := row*p.Width + col
	if i >= len(p.Tiles) {
		return tile.Empty
	}
	return p.Tiles[i]
}

// DisplaySize returns the footprint dimensions under the current transform.
func (p *Pattern) DisplaySize() (int, int) {
	w, h, ok := RotatedDimensions(p.Rotation, p.Width, p.Height)
	if !ok {
		return p.Width, p.Height
	}
	return w, h
}

// AtDisplay returns the placement shown at a displayed position under the
// current transform, or [tile.Empty] outside the displayed footprint.
func (p *Pattern) AtDisplay(row, col int) tile.Placement {
	c, ok := DisplayToCell(row, col, p.Width, p.Height, p.Rotation, p.MirrorX)
	if !ok {
		return tile.Empty
	}
	return p.At(c.Row, c.Col)
}

// RotateCW advances the display rotation by a quarter turn.
func (p *Pattern) RotateCW() {
	p.Rotation = (p.Rotation + 90) % 360
}

// ToggleMirror flips the horizontal mirror of the display transform.
func (p *Pattern) ToggleMirror() {
	p.MirrorX = !p.MirrorX
}
