package tile

import "strings"

// Mask records which of a tile's eight edges carry a connector, indexed by
// [Direction]. Mask is a value type: the transform methods return new masks
// and never alias or mutate their receiver, so masks can be shared freely.
//
// The zero Mask has no connections and is what unparseable tile identities
// degrade to.
type Mask [NumDirections]bool

// Rotate returns the mask rotated clockwise by steps*90 degrees.
// A 90 degree rotation shifts every connection by two slots (N moves to E).
// steps is taken mod 4, so negative and large values are accepted.
func (m Mask) Rotate(steps int) Mask {
	steps = ((steps % 4) + 4) % 4
	if steps == 0 {
		return m
	}
	shift := steps * 2
	var out Mask
	for i := 0; i < NumDirections; i++ {
		out[(i+shift)%NumDirections] = m[i]
	}
	return out
}

// MirrorX returns the mask reflected across the vertical axis. North and
// south are fixed points; east/west and the diagonal pairs swap via
// i -> (8-i) mod 8.
func (m Mask) MirrorX() Mask {
	var out Mask
	for i := 0; i < NumDirections; i++ {
		out[(NumDirections-i)%NumDirections] = m[i]
	}
	return out
}

// MirrorY returns the mask reflected across the horizontal axis. East and
// west are fixed points; north/south and the diagonal pairs swap via
// i -> (4-i) mod 8.
func (m Mask) MirrorY() Mask {
	var out Mask
	for i := 0; i < NumDirections; i++ {
		out[((4-i)%NumDirections+NumDirections)%NumDirections] = m[i]
	}
	return out
}

// Transform applies rotation, then mirrorX, then mirrorY. The order is part
// of the placement contract shared with every consumer of placement
// transforms and must not change. rotation is in 90 degree steps (0-3).
func (m Mask) Transform(rotation int, mirrorX, mirrorY bool) Mask {
	out := m.Rotate(rotation)
	if mirrorX {
		out = out.MirrorX()
	}
	if mirrorY {
		out = out.MirrorY()
	}
	return out
}

// Count returns the number of edges with a connector (0-8).
func (m Mask) Count() int {
	n := 0
	for _, set := range m {
		if set {
			n++
		}
	}
	return n
}

// Key returns the canonical 8-character bit-string form ("00110010"),
// slot 0 (north) first. Keys are used to index the compatibility table's
// reverse map.
func (m Mask) Key() string {
	var b strings.Builder
	b.Grow(NumDirections)
	for _, set := range m {
		if set {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// String returns the bit-string form, same as [Mask.Key].
func (m Mask) String() string { return m.Key() }

// MaskFromKey parses an 8-character bit string back into a Mask.
// Returns ok=false for any other input.
func MaskFromKey(key string) (Mask, bool) {
	var m Mask
	if len(key) != NumDirections {
		return Mask{}, false
	}
	for i := 0; i < NumDirections; i++ {
		switch key[i] {
		case '1':
			m[i] = true
		case '0':
		default:
			return Mask{}, false
		}
	}
	return m, true
}
