// Package tile defines the directional connection model for edge-matching
// tiles: the eight compass directions, the 8-slot connection mask, and the
// parser that derives a tile's base mask from its identity string.
//
// Every other package derives its direction math from the definitions here.
// The direction encoding (N=0 clockwise through NW=7) and the mask transform
// formulas (rotation as a cyclic shift by two slots, mirrors as explicit
// index swaps) are load-bearing across the transform engine, the stroke
// validator, and the pattern geometry - they must never be re-derived locally.
package tile

// Direction identifies one of the eight compass directions, clockwise from
// north. The numeric values double as mask slot indices.
type Direction int

// The eight compass directions in mask slot order.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	// NumDirections is the number of compass directions (and mask slots).
	NumDirections = 8

	// NoDirection is returned by [Between] when two cells are not 8-adjacent.
	NoDirection Direction = -1
)

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the compass abbreviation ("N", "NE", ...) or "none".
func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "none"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool { return d >= 0 && d < NumDirections }

// Opposite returns the direction rotated by 180 degrees.
// Opposite of NoDirection is NoDirection.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return NoDirection
	}
	return (d + 4) % NumDirections
}

// Delta returns the (row, column) offset of the neighboring cell in
// direction d. The zero offset is returned for invalid directions.
func (d Direction) Delta() (dRow, dCol int) {
	if !d.Valid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

// directionDeltas maps slot index -> {row delta, col delta}, rows increasing
// downward.
var directionDeltas = [NumDirections][2]int{
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
}

// Between returns the direction from cell index `from` toward cell index
// `to` on a grid with the given column count. Cell indices are row-major.
// Returns [NoDirection] when the cells are not 8-adjacent (including equal
// cells) or when columns is not positive.
func Between(from, to, columns int) Direction {
	if columns <= 0 {
		return NoDirection
	}
	dRow := to/columns - from/columns
	dCol := to%columns - from%columns
	for d, delta := range directionDeltas {
		if delta[0] == dRow && delta[1] == dCol {
			return Direction(d)
		}
	}
	return NoDirection
}
