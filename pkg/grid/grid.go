// Package grid models the mosaic canvas geometry: the cell lattice, pixel
// metrics, the spiral paint order, and the center-out resolution levels.
package grid

// Geometry describes the canvas lattice and its pixel metrics. TileSize
// and Gap are in pixels; a cell's pitch is TileSize+Gap, measured from
// one tile's top-left corner to the next.
type Geometry struct {
	Rows     int     `json:"rows" bson:"rows"`
	Columns  int     `json:"columns" bson:"columns"`
	TileSize float64 `json:"tile_size" bson:"tile_size"`
	Gap      float64 `json:"gap" bson:"gap"`
}

// Cells returns the total number of cells in the lattice.
func (g Geometry) Cells() int {
	if g.Rows <= 0 || g.Columns <= 0 {
		return 0
	}
	return g.Rows * g.Columns
}

// CellIndex converts a row and column to a row-major cell index,
// or -1 when the position is outside the lattice.
func (g Geometry) CellIndex(row, col int) int {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Columns {
		return -1
	}
	return row*g.Columns + col
}

// CellAt converts a row-major cell index back to its row and column,
// or (-1, -1) when the index is outside the lattice.
func (g Geometry) CellAt(index int) (int, int) {
	if index < 0 || index >= g.Cells() {
		return -1, -1
	}
	return index / g.Columns, index % g.Columns
}

func (g Geometry) pitch() float64 {
	return g.TileSize + g.Gap
}

// Width returns the canvas width in pixels.
func (g Geometry) Width() float64 {
	if g.Columns <= 0 {
		return 0
	}
	return float64(g.Columns) * g.pitch()
}

// Height returns the canvas height in pixels.
func (g Geometry) Height() float64 {
	if g.Rows <= 0 {
		return 0
	}
	return float64(g.Rows) * g.pitch()
}
