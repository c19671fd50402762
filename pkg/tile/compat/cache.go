package compat

import (
	"strings"
	"sync"
)

// Cache memoizes compatibility tables by ordered-palette signature.
//
// It is an explicit handle rather than a package-level singleton so that
// independent sessions and tests do not interfere. Tables are pure
// functions of their palette, so concurrent builds for the same key are
// merely wasteful, never unsafe; the cache still serializes them so each
// distinct palette is built once.
type Cache struct {
	mu     sync.Mutex
	tables map[string]*Table
}

// NewCache creates an empty table cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[string]*Table)}
}

// Signature derives the cache key for an ordered palette. Any change to
// the identities or their order yields a different key.
func Signature(palette []string) string {
	return strings.Join(palette, "\x00")
}

// Table returns the memoized compatibility table for the palette, building
// it on first use. Repeated calls with the same ordered palette return the
// identical *Table.
func (c *Cache) Table(palette []string) *Table {
	key := Signature(palette)

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tables[key]; ok {
		return t
	}
	t := Build(palette)
	c.tables[key] = t
	return t
}

// Invalidate drops the cached table for the palette, if any.
func (c *Cache) Invalidate(palette []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tables, Signature(palette))
}

// Reset drops every cached table.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables = make(map[string]*Table)
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}
