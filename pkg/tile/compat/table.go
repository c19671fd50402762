// Package compat implements the tile compatibility table: the index of every
// rotated and mirrored variant of every palette tile, keyed for fast
// "what fits this open edge" lookups.
//
// A [Table] is a pure function of an ordered palette and is immutable once
// built. Build cost is O(tiles*16); the per-palette [Cache] memoizes tables
// so interactive callers never rebuild on every paint action.
package compat

import (
	"github.com/tileforge/mosaic/pkg/tile"
)

// NumVariants is the number of orientation variants per tile:
// 4 rotations x mirrorX x mirrorY. The flips are independent and not
// reducible to extra rotations, so all 16 are enumerated.
const NumVariants = 16

// Variant is one (tile, rotation, mirror) orientation together with its
// transformed connection mask.
type Variant struct {
	Tile     int       // palette index
	Rotation int       // clockwise quarter turns (0-3)
	MirrorX  bool      // flip across the vertical axis
	MirrorY  bool      // flip across the horizontal axis
	Mask     tile.Mask // mask after Transform(Rotation, MirrorX, MirrorY)
}

// Placement returns the variant's orientation as a placement record.
func (v Variant) Placement() tile.Placement {
	return tile.Placement{Tile: v.Tile, Rotation: v.Rotation, MirrorX: v.MirrorX, MirrorY: v.MirrorY}
}

// Table indexes the connection masks of every orientation variant of an
// ordered palette. Tables are immutable after Build and safe for concurrent
// readers.
type Table struct {
	identities []string
	base       []*tile.Mask  // per-tile base mask, nil when unparseable
	variants   [][]tile.Mask // per-tile masks indexed by variantIndex, nil when unparseable
	byKey      map[string][]Variant
}

// variantIndex folds an orientation into a slot in [0, NumVariants).
// Rotation is normalized mod 4.
func variantIndex(rotation int, mirrorX, mirrorY bool) int {
	i := (((rotation % 4) + 4) % 4) * 4
	if mirrorX {
		i += 2
	}
	if mirrorY {
		i++
	}
	return i
}

// Build constructs the compatibility table for an ordered palette of tile
// identities. Tiles whose identity carries no parseable connection signature
// get no variants and report no derivable mask; everything else gets all 16
// orientation variants recorded under their canonical mask key.
//
// Build has no hidden state; identical palettes always produce equivalent
// tables. Use a [Cache] to avoid repeated builds.
func Build(palette []string) *Table {
	t := &Table{
		identities: append([]string(nil), palette...),
		base:       make([]*tile.Mask, len(palette)),
		variants:   make([][]tile.Mask, len(palette)),
		byKey:      make(map[string][]Variant),
	}

	for i, identity := range palette {
		base, ok := tile.ParseMask(identity)
		if !ok {
			continue
		}
		b := base
		t.base[i] = &b

		masks := make([]tile.Mask, NumVariants)
		for rot := 0; rot < 4; rot++ {
			for _, mx := range []bool{false, true} {
				for _, my := range []bool{false, true} {
					m := base.Transform(rot, mx, my)
					masks[variantIndex(rot, mx, my)] = m
					key := m.Key()
					t.byKey[key] = append(t.byKey[key], Variant{
						Tile:     i,
						Rotation: rot,
						MirrorX:  mx,
						MirrorY:  my,
						Mask:     m,
					})
				}
			}
		}
		t.variants[i] = masks
	}
	return t
}

// Size returns the number of palette tiles the table was built from.
func (t *Table) Size() int { return len(t.identities) }

// Identity returns the identity string of the palette tile at index i,
// or "" when i is out of range.
func (t *Table) Identity(i int) string {
	if i < 0 || i >= len(t.identities) {
		return ""
	}
	return t.identities[i]
}

// BaseMask returns the untransformed mask of tile i. ok is false when the
// index is out of range or the identity was unparseable.
func (t *Table) BaseMask(i int) (tile.Mask, bool) {
	if i < 0 || i >= len(t.base) || t.base[i] == nil {
		return tile.Mask{}, false
	}
	return *t.base[i], true
}

// Connections returns the transformed mask for the given orientation of
// tile tileIndex in O(1). ok is false when the index is out of range or the
// tile has no derivable mask, meaning "no tile there" rather than an error.
//
// If the variant set is missing the untransformed base mask is returned, so
// a lookup never invents connections that the tile does not have.
func (t *Table) Connections(tileIndex, rotation int, mirrorX, mirrorY bool) (tile.Mask, bool) {
	if tileIndex < 0 || tileIndex >= len(t.base) || t.base[tileIndex] == nil {
		return tile.Mask{}, false
	}
	if masks := t.variants[tileIndex]; masks != nil {
		return masks[variantIndex(rotation, mirrorX, mirrorY)], true
	}
	return *t.base[tileIndex], true
}

// ConnectionsFor is [Table.Connections] for a placement record.
func (t *Table) ConnectionsFor(p tile.Placement) (tile.Mask, bool) {
	if p.IsEmpty() {
		return tile.Mask{}, false
	}
	return t.Connections(p.Tile, p.Rotation, p.MirrorX, p.MirrorY)
}

// Variants returns all recorded orientation variants of tile i in a fixed
// order, or nil when the tile has no derivable mask. The returned slice is
// freshly allocated and safe to modify.
func (t *Table) Variants(i int) []Variant {
	if i < 0 || i >= len(t.variants) || t.variants[i] == nil {
		return nil
	}
	out := make([]Variant, 0, NumVariants)
	for rot := 0; rot < 4; rot++ {
		for _, mx := range []bool{false, true} {
			for _, my := range []bool{false, true} {
				out = append(out, Variant{
					Tile:     i,
					Rotation: rot,
					MirrorX:  mx,
					MirrorY:  my,
					Mask:     t.variants[i][variantIndex(rot, mx, my)],
				})
			}
		}
	}
	return out
}

// Matches returns every variant across the palette whose transformed mask
// equals m exactly. This is the primary "what fits this open edge" query.
// The returned slice is shared - callers must not modify it.
func (t *Table) Matches(m tile.Mask) []Variant {
	return t.byKey[m.Key()]
}

// MatchesKey is [Table.Matches] for a canonical bit-string key.
func (t *Table) MatchesKey(key string) []Variant {
	return t.byKey[key]
}

// Keys returns the number of distinct transformed masks in the table.
func (t *Table) Keys() int { return len(t.byKey) }
