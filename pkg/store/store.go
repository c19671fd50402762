// Package store persists canvas and pattern documents. The server runs
// against MongoDB; the CLI and tests run against the in-memory store.
package store

import (
	"context"

	"github.com/tileforge/mosaic/pkg/canvas"
	"github.com/tileforge/mosaic/pkg/pattern"
)

// CanvasSummary is the listing projection of a canvas document.
type CanvasSummary struct {
	ID      string `json:"id" bson:"_id"`
	Name    string `json:"name" bson:"name"`
	Rows    int    `json:"rows" bson:"rows"`
	Columns int    `json:"columns" bson:"columns"`
}

// Store persists canvases and patterns. Implementations must be safe for
// concurrent use.
type Store interface {
	// SaveCanvas inserts or replaces a canvas by ID.
	SaveCanvas(ctx context.Context, c *canvas.Canvas) error

	// GetCanvas loads a canvas by ID. Missing canvases return an error
	// with code CANVAS_NOT_FOUND.
	GetCanvas(ctx context.Context, id string) (*canvas.Canvas, error)

	// ListCanvases returns summaries of all stored canvases.
	ListCanvases(ctx context.Context) ([]CanvasSummary, error)

	// DeleteCanvas removes a canvas by ID. Missing canvases return an
	// error with code CANVAS_NOT_FOUND.
	DeleteCanvas(ctx context.Context, id string) error

	// SavePattern inserts or replaces a pattern by ID.
	SavePattern(ctx context.Context, p *pattern.Pattern) error

	// GetPattern loads a pattern by ID. Missing patterns return an error
	// with code PATTERN_NOT_FOUND.
	GetPattern(ctx context.Context, id string) (*pattern.Pattern, error)

	// ListPatterns returns all stored patterns.
	ListPatterns(ctx context.Context) ([]*pattern.Pattern, error)

	// DeletePattern removes a pattern by ID. Missing patterns return an
	// error with code PATTERN_NOT_FOUND.
	DeletePattern(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
