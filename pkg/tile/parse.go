package tile

import "strings"

// ParseMask extracts the base connection mask encoded in a tile identity.
//
// Identities end in an 8-character binary signature immediately before the
// file extension, one bit per compass direction clockwise from north:
//
//	"roads/corner_10000010.png" -> mask 10000010 (N and W connectors)
//
// Returns ok=false when the identity carries no parseable signature.
// Callers treat an unparseable identity as a tile with no connections, so
// a failed parse degrades behavior rather than erroring.
func ParseMask(identity string) (Mask, bool) {
	sig, ok := signature(identity)
	if !ok {
		return Mask{}, false
	}
	return MaskFromKey(sig)
}

// ConnectionCount returns the number of connectors encoded in the identity
// without building a mask. Used by palette ordering heuristics where only
// the popcount matters. ok=false marks identities with no signature.
func ConnectionCount(identity string) (int, bool) {
	sig, ok := signature(identity)
	if !ok {
		return 0, false
	}
	n := 0
	for i := 0; i < len(sig); i++ {
		if sig[i] == '1' {
			n++
		}
	}
	return n, true
}

// signature returns the 8-character binary run preceding the extension.
func signature(identity string) (string, bool) {
	base := identity
	if dot := strings.LastIndexByte(base, '.'); dot >= 0 {
		base = base[:dot]
	}
	if len(base) < NumDirections {
		return "", false
	}
	sig := base[len(base)-NumDirections:]
	for i := 0; i < len(sig); i++ {
		if sig[i] != '0' && sig[i] != '1' {
			return "", false
		}
	}
	return sig, true
}
