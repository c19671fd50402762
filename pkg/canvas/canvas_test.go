package canvas

import (
	"testing"

	"github.com/tileforge/mosaic/pkg/errors"
	"github.com/tileforge/mosaic/pkg/grid"
	"github.com/tileforge/mosaic/pkg/tile"
)

var testGeometry = grid.Geometry{Rows: 3, Columns: 3, TileSize: 50}

var testPalette = []string{
	"roads/cap_00100000.png",
	"roads/straight_00100010.png",
	"roads/corner_10000010.png",
	"decor/pebbles.png",
}

func testCanvas(t *testing.T) *Canvas {
	t.Helper()
	c, err := New("test canvas", testGeometry, testPalette)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return c
}

func TestNew(t *testing.T) {
	c := testCanvas(t)
	if c.ID == "" {
		t.Error("New canvas has empty ID")
	}
	if c.Occupied() != 0 {
		t.Errorf("Occupied() = %d, want 0", c.Occupied())
	}

	if _, err := New("", testGeometry, testPalette); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("New with empty name error = %v, want INVALID_INPUT", err)
	}
	if _, err := New("x", grid.Geometry{Rows: 0, Columns: 3, TileSize: 50}, testPalette); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("New with zero rows error = %v, want INVALID_GEOMETRY", err)
	}
	if _, err := New("x", testGeometry, nil); !errors.Is(err, errors.ErrCodeInvalidPalette) {
		t.Errorf("New with empty palette error = %v, want INVALID_PALETTE", err)
	}
}

func TestSetAt(t *testing.T) {
	c := testCanvas(t)

	if err := c.Set(4, tile.Placement{Tile: 1, Rotation: 1}); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if got := c.At(4); got.Tile != 1 || got.Rotation != 1 {
		t.Errorf("At(4) = %+v, want tile 1 rotation 1", got)
	}
	if got := c.At(0); !got.IsEmpty() {
		t.Errorf("At(0) = %+v, want empty", got)
	}

	// Setting Empty clears the cell.
	if err := c.Set(4, tile.Empty); err != nil {
		t.Fatalf("Set(Empty) error: %v", err)
	}
	if c.Occupied() != 0 {
		t.Errorf("Occupied() = %d after clear, want 0", c.Occupied())
	}

	if err := c.Set(9, tile.Placement{Tile: 0}); !errors.Is(err, errors.ErrCodeOutOfBounds) {
		t.Errorf("Set(9) error = %v, want OUT_OF_BOUNDS", err)
	}
	if err := c.Set(0, tile.Placement{Tile: 7}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Set with unknown tile error = %v, want INVALID_INPUT", err)
	}
}

func TestPaintStroke(t *testing.T) {
	c := testCanvas(t)
	tab := c.Table(nil)

	// cap -> straight -> corner across the top row.
	err := c.PaintStroke(tab, []StrokeCell{
		{Index: 0, Placement: tile.Placement{Tile: 0}},
		{Index: 1, Placement: tile.Placement{Tile: 1}},
		{Index: 2, Placement: tile.Placement{Tile: 2}},
	})
	if err != nil {
		t.Fatalf("PaintStroke error: %v", err)
	}
	if c.Occupied() != 3 {
		t.Errorf("Occupied() = %d, want 3", c.Occupied())
	}
}

func TestPaintStroke_RollsBackOnInvalid(t *testing.T) {
	c := testCanvas(t)
	tab := c.Table(nil)

	if err := c.Set(1, tile.Placement{Tile: 2}); err != nil {
		t.Fatal(err)
	}

	// The straight tile at the start has two connectors, so the chain is
	// illegal and cell 1 must revert to the corner.
	err := c.PaintStroke(tab, []StrokeCell{
		{Index: 0, Placement: tile.Placement{Tile: 1}},
		{Index: 1, Placement: tile.Placement{Tile: 0}},
	})
	if !errors.Is(err, errors.ErrCodeInvalidStroke) {
		t.Fatalf("PaintStroke error = %v, want INVALID_STROKE", err)
	}
	if got := c.At(1); got.Tile != 2 {
		t.Errorf("At(1) after rollback = %+v, want tile 2", got)
	}
	if got := c.At(0); !got.IsEmpty() {
		t.Errorf("At(0) after rollback = %+v, want empty", got)
	}
}

func TestPaintStroke_RejectsDuplicateCells(t *testing.T) {
	c := testCanvas(t)
	tab := c.Table(nil)

	err := c.PaintStroke(tab, []StrokeCell{
		{Index: 0, Placement: tile.Placement{Tile: 0}},
		{Index: 0, Placement: tile.Placement{Tile: 1}},
	})
	if !errors.Is(err, errors.ErrCodeInvalidStroke) {
		t.Errorf("PaintStroke error = %v, want INVALID_STROKE", err)
	}
	if c.Occupied() != 0 {
		t.Errorf("Occupied() = %d after rejected stroke, want 0", c.Occupied())
	}
}

func TestFloodFill_BlankPalette(t *testing.T) {
	c, err := New("blank", testGeometry, []string{"blank_00000000.png"})
	if err != nil {
		t.Fatal(err)
	}
	tab := c.Table(nil)

	placed := c.FloodFill(tab, 1)
	if placed != testGeometry.Cells() {
		t.Errorf("FloodFill placed %d cells, want %d", placed, testGeometry.Cells())
	}
}

func TestFloodFill_RespectsNeighborConnectors(t *testing.T) {
	g := grid.Geometry{Rows: 1, Columns: 2, TileSize: 50}
	c, err := New("pair", g, []string{
		"straight_00100010.png",
		"blank_00000000.png",
	})
	if err != nil {
		t.Fatal(err)
	}
	tab := c.Table(nil)

	// The straight tile points east at its vacant neighbor, so the fill
	// must answer with a west connector there.
	if err := c.Set(0, tile.Placement{Tile: 0}); err != nil {
		t.Fatal(err)
	}
	c.FloodFill(tab, 42)

	m, ok := tab.ConnectionsFor(c.At(1))
	if !ok {
		t.Fatal("cell 1 left vacant or holds an unparseable tile")
	}
	if !m[tile.West] {
		t.Errorf("cell 1 mask %s has no west connector toward its neighbor", m.Key())
	}
}

func TestFloodFill_Deterministic(t *testing.T) {
	a := testCanvas(t)
	b := testCanvas(t)
	tab := a.Table(nil)

	a.FloodFill(tab, 7)
	b.FloodFill(tab, 7)

	if len(a.Cells) != len(b.Cells) {
		t.Fatalf("fills placed %d vs %d cells", len(a.Cells), len(b.Cells))
	}
	for index, p := range a.Cells {
		if b.Cells[index] != p {
			t.Errorf("cell %d differs: %+v vs %+v", index, p, b.Cells[index])
		}
	}
}

func TestFillRect(t *testing.T) {
	c := testCanvas(t)
	tab := c.Table(nil)

	placed, err := c.FillRect(tab, 0, 0, 1, 1, 3)
	if err != nil {
		t.Fatalf("FillRect error: %v", err)
	}
	if placed == 0 {
		t.Error("FillRect placed no cells")
	}
	// Cells outside the rectangle stay vacant.
	for _, index := range []int{2, 5, 6, 7, 8} {
		if !c.At(index).IsEmpty() {
			t.Errorf("cell %d outside rect was filled", index)
		}
	}

	if _, err := c.FillRect(tab, 2, 2, 1, 1, 0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("inverted rect error = %v, want INVALID_INPUT", err)
	}
	if _, err := c.FillRect(tab, 0, 0, 5, 5, 0); !errors.Is(err, errors.ErrCodeOutOfBounds) {
		t.Errorf("oversized rect error = %v, want OUT_OF_BOUNDS", err)
	}
}
