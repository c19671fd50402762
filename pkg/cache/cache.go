// Package cache provides pluggable byte caches and key derivation for the
// expensive mosaic artifacts: compatibility tables, fill results and
// rendered adjacency graphs.
//
// Backends share one [Cache] interface so the CLI can run against the
// filesystem, tests against memory, and the server against Redis without
// the callers caring which is wired in.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with optional per-entry TTL.
// A zero ttl means the entry never expires.
type Cache interface {
	// Get retrieves a value. hit is false on a miss; err is reserved for
	// backend failures, not misses.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// FillKeyOpts parameterizes a cached fill result.
type FillKeyOpts struct {
	Rows    int   `json:"rows"`
	Columns int   `json:"columns"`
	Seed    int64 `json:"seed"`
}

// RenderKeyOpts parameterizes a cached adjacency graph rendering.
type RenderKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
}

// Keyer derives cache keys for the artifact types the application caches.
type Keyer interface {
	// TableKey derives the key for a serialized compatibility table built
	// from the palette with the given signature.
	TableKey(paletteSignature string) string

	// FillKey derives the key for a fill result over a table.
	FillKey(tableHash string, opts FillKeyOpts) string

	// RenderKey derives the key for a rendered adjacency graph.
	RenderKey(tableHash string, opts RenderKeyOpts) string
}

// DefaultKeyer derives keys by hashing the inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TableKey generates a key for a compatibility table.
func (k *DefaultKeyer) TableKey(paletteSignature string) string {
	return hashKey("table", paletteSignature)
}

// FillKey generates a key for a fill result.
func (k *DefaultKeyer) FillKey(tableHash string, opts FillKeyOpts) string {
	return hashKey("fill", tableHash, opts)
}

// RenderKey generates a key for a rendered adjacency graph.
func (k *DefaultKeyer) RenderKey(tableHash string, opts RenderKeyOpts) string {
	return hashKey("render", tableHash, opts)
}
