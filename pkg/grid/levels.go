package grid

// Resolution levels coarsen the lattice from the center outward. Level L
// groups cells into span x span blocks with span = 2^(L-1): level 1 is the
// full-resolution lattice, level 2 pairs cells into 2x2 blocks, and so on.
// Block boundaries are anchored at the lattice center so the coarse grid
// stays symmetric; edge cells that do not fill a whole block are dropped
// from the level rather than grouped into a partial block.

// Band is an inclusive run of cell indices along one axis.
type Band struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// CellBounds is the cell-space rectangle covered by one level block.
type CellBounds struct {
	MinRow int `json:"min_row"`
	MinCol int `json:"min_col"`
	MaxRow int `json:"max_row"`
	MaxCol int `json:"max_col"`
}

// LevelInfo describes one resolution level: its block span and the bands
// of full blocks on each axis.
type LevelInfo struct {
	Level    int    `json:"level"`
	Span     int    `json:"span"`
	RowBands []Band `json:"row_bands"`
	ColBands []Band `json:"col_bands"`
}

// Cells returns the blocks of the level in row-major order.
func (l LevelInfo) Cells() []CellBounds {
	cells := make([]CellBounds, 0, len(l.RowBands)*len(l.ColBands))
	for _, r := range l.RowBands {
		for _, c := range l.ColBands {
			cells = append(cells, CellBounds{
				MinRow: r.Start,
				MinCol: c.Start,
				MaxRow: r.End,
				MaxCol: c.End,
			})
		}
	}
	return cells
}

func levelSpan(level int) int {
	if level < 1 || level > 30 {
		return 0
	}
	return 1 << (level - 1)
}

// axisLines returns the interior block boundaries along an axis of n
// cells, anchored at the center and stepped by span in both directions.
func axisLines(n, span int) []int {
	if n <= 0 || span <= 0 {
		return nil
	}
	first := n / 2
	for first-span > 0 {
		first -= span
	}
	var lines []int
	for t := first; t < n; t += span {
		if t > 0 {
			lines = append(lines, t)
		}
	}
	return lines
}

// axisBands keeps only the segments between boundaries that span a whole
// block; shorter edge segments are dropped.
func axisBands(n, span int) []Band {
	lines := axisLines(n, span)
	if n <= 0 || span <= 0 {
		return nil
	}
	bounds := make([]int, 0, len(lines)+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, lines...)
	bounds = append(bounds, n)

	var bands []Band
	for i := 1; i < len(bounds); i++ {
		if bounds[i]-bounds[i-1] == span {
			bands = append(bands, Band{Start: bounds[i-1], End: bounds[i] - 1})
		}
	}
	return bands
}

// MaxLevel returns the coarsest level that still has at least one full
// block on both axes, or 0 for an empty lattice.
func MaxLevel(g Geometry) int {
	if g.Rows <= 0 || g.Columns <= 0 {
		return 0
	}
	max := 0
	for level := 1; ; level++ {
		span := levelSpan(level)
		if span == 0 {
			return max
		}
		if len(axisBands(g.Rows, span)) == 0 || len(axisBands(g.Columns, span)) == 0 {
			return max
		}
		max = level
	}
}

// Level returns the band layout of a resolution level. ok is false when
// the level has no full block on one of the axes.
func Level(g Geometry, level int) (LevelInfo, bool) {
	span := levelSpan(level)
	if span == 0 {
		return LevelInfo{}, false
	}
	rows := axisBands(g.Rows, span)
	cols := axisBands(g.Columns, span)
	if len(rows) == 0 || len(cols) == 0 {
		return LevelInfo{}, false
	}
	return LevelInfo{Level: level, Span: span, RowBands: rows, ColBands: cols}, true
}

// LevelLinePositions returns the pixel positions of the block boundary
// lines of a level, vertical then horizontal. Positions are measured from
// the canvas origin in cell pitches.
func LevelLinePositions(g Geometry, level int) ([]float64, []float64) {
	span := levelSpan(level)
	if span == 0 {
		return nil, nil
	}
	pitch := g.pitch()
	toPx := func(lines []int) []float64 {
		px := make([]float64, len(lines))
		for i, t := range lines {
			px[i] = float64(t) * pitch
		}
		return px
	}
	return toPx(axisLines(g.Columns, span)), toPx(axisLines(g.Rows, span))
}

// CellIndexForPoint maps a pixel position to the row-major block index of
// the level containing it. A point exactly on a horizontal block boundary
// belongs to the block above the line; a point on a vertical boundary
// belongs to the block to its right, except at the outer right edge.
// ok is false when the point falls outside every full block.
func CellIndexForPoint(g Geometry, level int, x, y float64) (int, bool) {
	info, ok := Level(g, level)
	if !ok {
		return 0, false
	}
	pitch := g.pitch()

	row := -1
	for i, b := range info.RowBands {
		top := float64(b.Start) * pitch
		bottom := float64(b.End+1) * pitch
		if (y > top || (i == 0 && y == top)) && y <= bottom {
			row = i
			break
		}
	}
	if row < 0 {
		return 0, false
	}

	col := -1
	for i, b := range info.ColBands {
		left := float64(b.Start) * pitch
		right := float64(b.End+1) * pitch
		if x >= left && (x < right || (i == len(info.ColBands)-1 && x == right)) {
			col = i
			break
		}
	}
	if col < 0 {
		return 0, false
	}

	return row*len(info.ColBands) + col, true
}
