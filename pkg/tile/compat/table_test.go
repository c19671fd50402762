package compat

import (
	"testing"

	"github.com/tileforge/mosaic/pkg/tile"
)

var testPalette = []string{
	"roads/cap_00100000.png",
	"roads/straight_00100010.png",
	"roads/corner_10000010.png",
	"decor/pebbles.png", // no signature
}

func TestBuild_BaseMasks(t *testing.T) {
	tab := Build(testPalette)

	if tab.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", tab.Size())
	}

	m, ok := tab.BaseMask(0)
	if !ok || m.Key() != "00100000" {
		t.Errorf("BaseMask(0) = %s, %v, want 00100000, true", m.Key(), ok)
	}

	if _, ok := tab.BaseMask(3); ok {
		t.Error("BaseMask(3) ok = true for unparseable identity, want false")
	}
	if _, ok := tab.BaseMask(-1); ok {
		t.Error("BaseMask(-1) ok = true, want false")
	}
	if _, ok := tab.BaseMask(4); ok {
		t.Error("BaseMask(4) ok = true, want false")
	}
}

func TestBuild_AllSixteenVariants(t *testing.T) {
	tab := Build(testPalette)

	vs := tab.Variants(2)
	if len(vs) != NumVariants {
		t.Fatalf("Variants(2) returned %d variants, want %d", len(vs), NumVariants)
	}

	base, _ := tab.BaseMask(2)
	for _, v := range vs {
		if v.Mask.Count() != base.Count() {
			t.Errorf("variant rot=%d mx=%v my=%v count = %d, want %d",
				v.Rotation, v.MirrorX, v.MirrorY, v.Mask.Count(), base.Count())
		}
	}

	if vs := tab.Variants(3); vs != nil {
		t.Errorf("Variants(3) = %v for unparseable identity, want nil", vs)
	}
}

func TestConnections(t *testing.T) {
	tab := Build(testPalette)

	// straight_00100010 (E+W) rotated once becomes N+S.
	m, ok := tab.Connections(1, 1, false, false)
	if !ok {
		t.Fatal("Connections(1, 1, false, false) ok = false")
	}
	if m.Key() != "10001000" {
		t.Errorf("Connections(1, 1) = %s, want 10001000", m.Key())
	}

	// Rotation is normalized mod 4.
	m5, _ := tab.Connections(1, 5, false, false)
	if m5 != m {
		t.Errorf("Connections rotation 5 = %s, want %s", m5.Key(), m.Key())
	}

	// Out-of-range tile indices mean "no tile there".
	if _, ok := tab.Connections(-1, 0, false, false); ok {
		t.Error("Connections(-1) ok = true, want false")
	}
	if _, ok := tab.Connections(99, 0, false, false); ok {
		t.Error("Connections(99) ok = true, want false")
	}
	if _, ok := tab.Connections(3, 0, false, false); ok {
		t.Error("Connections(3) ok = true for unparseable identity, want false")
	}
}

func TestConnectionsFor(t *testing.T) {
	tab := Build(testPalette)

	if _, ok := tab.ConnectionsFor(tile.Empty); ok {
		t.Error("ConnectionsFor(Empty) ok = true, want false")
	}

	p := tile.Placement{Tile: 2, Rotation: 2}
	m, ok := tab.ConnectionsFor(p)
	if !ok {
		t.Fatal("ConnectionsFor ok = false")
	}
	base, _ := tab.BaseMask(2)
	if want := base.Rotate(2); m != want {
		t.Errorf("ConnectionsFor = %s, want %s", m.Key(), want.Key())
	}
}

func TestMatches(t *testing.T) {
	tab := Build(testPalette)

	// Every variant listed under a key must actually carry that mask.
	base, _ := tab.BaseMask(1)
	for rot := 0; rot < 4; rot++ {
		m := base.Rotate(rot)
		for _, v := range tab.Matches(m) {
			if v.Mask != m {
				t.Errorf("Matches(%s) contains variant with mask %s", m.Key(), v.Mask.Key())
			}
			got, ok := tab.Connections(v.Tile, v.Rotation, v.MirrorX, v.MirrorY)
			if !ok || got != m {
				t.Errorf("variant %+v does not round-trip through Connections", v)
			}
		}
	}

	// A mask present in no variant matches nothing.
	odd, _ := tile.MaskFromKey("11111111")
	if got := tab.Matches(odd); len(got) != 0 {
		t.Errorf("Matches(11111111) = %d variants, want 0", len(got))
	}
}

func TestMatches_CoversWholePalette(t *testing.T) {
	// Two tiles that are rotations of each other share mask keys, so the
	// reverse index must list variants of both under the shared key.
	tab := Build([]string{
		"a_10000000.png",
		"b_00100000.png",
	})

	m, _ := tile.MaskFromKey("10000000")
	tiles := make(map[int]bool)
	for _, v := range tab.Matches(m) {
		tiles[v.Tile] = true
	}
	if !tiles[0] || !tiles[1] {
		t.Errorf("Matches(10000000) covers tiles %v, want both 0 and 1", tiles)
	}
}
