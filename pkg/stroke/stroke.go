// Package stroke validates drag-painted tile paths.
//
// A stroke is an ordered sequence of distinct grid cells painted in one
// gesture. It is legal when the placed tiles form a single connected chain:
// the first tile has exactly one connector (pointing anywhere), every
// interior tile connects exactly to its stroke predecessor and successor
// and nowhere else, and the last tile connects back to its predecessor with
// one free end left open.
//
// Validation is read-only over a snapshot of placements; rejecting or
// rolling back an invalid stroke is the caller's job.
package stroke

import (
	"github.com/tileforge/mosaic/pkg/tile"
)

// Lookup resolves a placement to its transformed connection mask.
// ok must be false when the placement has no derivable mask ("no tile").
// *compat.Table satisfies this via its ConnectionsFor method.
type Lookup interface {
	ConnectionsFor(p tile.Placement) (tile.Mask, bool)
}

// Valid reports whether the stroke over the given cells is a legal
// single-connection chain.
//
// order lists the painted cell indices in stroke order; placements is a
// snapshot of the grid contents at those cells; columns is the grid width
// used to derive directions between consecutive cells.
//
// Any single violation fails the whole stroke:
//   - a cell without a placed tile or without a derivable mask;
//   - consecutive stroke cells that are not 8-adjacent;
//   - a first cell whose mask has other than exactly one connector;
//   - an interior cell whose connectors are not exactly the directions
//     toward its predecessor and successor (checked bit by bit over all
//     eight directions, not by count);
//   - a last cell without exactly two connectors, one toward its
//     predecessor.
//
// An empty order is not a stroke and returns false.
func Valid(order []int, placements map[int]tile.Placement, columns int, lookup Lookup) bool {
	if len(order) == 0 || columns <= 0 || lookup == nil {
		return false
	}

	masks := make([]tile.Mask, len(order))
	for i, cell := range order {
		p, ok := placements[cell]
		if !ok || p.IsEmpty() {
			return false
		}
		m, ok := lookup.ConnectionsFor(p)
		if !ok {
			return false
		}
		masks[i] = m
	}

	if len(order) == 1 {
		return masks[0].Count() == 1
	}

	// First cell: exactly one connector, direction unconstrained.
	if masks[0].Count() != 1 {
		return false
	}

	for i := 1; i < len(order)-1; i++ {
		toPrev := tile.Between(order[i], order[i-1], columns)
		toNext := tile.Between(order[i], order[i+1], columns)
		if toPrev == tile.NoDirection || toNext == tile.NoDirection {
			return false
		}
		// The mask must be exactly {toPrev, toNext}: every other
		// direction clear, both chain directions set.
		for d := tile.North; d < tile.NumDirections; d++ {
			want := d == toPrev || d == toNext
			if masks[i][d] != want {
				return false
			}
		}
	}

	last := len(order) - 1
	toPrev := tile.Between(order[last], order[last-1], columns)
	if toPrev == tile.NoDirection {
		return false
	}
	if masks[last].Count() != 2 || !masks[last][toPrev] {
		return false
	}

	return true
}
