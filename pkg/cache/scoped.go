package cache

// ScopedKeyer wraps a Keyer with a prefix so separate canvases or users
// get isolated cache namespaces.
//
// Example usage:
//
//	// Canvas-specific keys
//	canvasKeyer := NewScopedKeyer(NewDefaultKeyer(), "canvas:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TableKey generates a prefixed key for a compatibility table.
func (k *ScopedKeyer) TableKey(paletteSignature string) string {
	return k.prefix + k.inner.TableKey(paletteSignature)
}

// FillKey generates a prefixed key for a fill result.
func (k *ScopedKeyer) FillKey(tableHash string, opts FillKeyOpts) string {
	return k.prefix + k.inner.FillKey(tableHash, opts)
}

// RenderKey generates a prefixed key for a rendered adjacency graph.
func (k *ScopedKeyer) RenderKey(tableHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(tableHash, opts)
}
