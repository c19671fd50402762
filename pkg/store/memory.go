package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/tileforge/mosaic/pkg/canvas"
	"github.com/tileforge/mosaic/pkg/errors"
	"github.com/tileforge/mosaic/pkg/pattern"
)

// MemoryStore keeps documents in process memory. Documents are stored as
// deep copies so callers cannot mutate stored state through retained
// pointers.
type MemoryStore struct {
	mu       sync.RWMutex
	canvases map[string]*canvas.Canvas
	patterns map[string]*pattern.Pattern
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		canvases: make(map[string]*canvas.Canvas),
		patterns: make(map[string]*pattern.Pattern),
	}
}

func copyCanvas(c *canvas.Canvas) (*canvas.Canvas, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to copy canvas")
	}
	var out canvas.Canvas
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to copy canvas")
	}
	return &out, nil
}

func copyPattern(p *pattern.Pattern) (*pattern.Pattern, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to copy pattern")
	}
	var out pattern.Pattern
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to copy pattern")
	}
	return &out, nil
}

// SaveCanvas inserts or replaces a canvas by ID.
func (s *MemoryStore) SaveCanvas(ctx context.Context, c *canvas.Canvas) error {
	if c.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "canvas has no ID")
	}
	copied, err := copyCanvas(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.canvases[c.ID] = copied
	s.mu.Unlock()
	return nil
}

// GetCanvas loads a canvas by ID.
func (s *MemoryStore) GetCanvas(ctx context.Context, id string) (*canvas.Canvas, error) {
	s.mu.RLock()
	c, ok := s.canvases[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeCanvasNotFound, "canvas %s not found", id)
	}
	return copyCanvas(c)
}

// ListCanvases returns summaries of all stored canvases sorted by name.
func (s *MemoryStore) ListCanvases(ctx context.Context) ([]CanvasSummary, error) {
	s.mu.RLock()
	summaries := make([]CanvasSummary, 0, len(s.canvases))
	for _, c := range s.canvases {
		summaries = append(summaries, CanvasSummary{
			ID:      c.ID,
			Name:    c.Name,
			Rows:    c.Geometry.Rows,
			Columns: c.Geometry.Columns,
		})
	}
	s.mu.RUnlock()

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Name != summaries[j].Name {
			return summaries[i].Name < summaries[j].Name
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// DeleteCanvas removes a canvas by ID.
func (s *MemoryStore) DeleteCanvas(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.canvases[id]; !ok {
		return errors.New(errors.ErrCodeCanvasNotFound, "canvas %s not found", id)
	}
	delete(s.canvases, id)
	return nil
}

// SavePattern inserts or replaces a pattern by ID.
func (s *MemoryStore) SavePattern(ctx context.Context, p *pattern.Pattern) error {
	if p.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "pattern has no ID")
	}
	copied, err := copyPattern(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.patterns[p.ID] = copied
	s.mu.Unlock()
	return nil
}

// GetPattern loads a pattern by ID.
func (s *MemoryStore) GetPattern(ctx context.Context, id string) (*pattern.Pattern, error) {
	s.mu.RLock()
	p, ok := s.patterns[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodePatternNotFound, "pattern %s not found", id)
	}
	return copyPattern(p)
}

// ListPatterns returns all stored patterns sorted by name.
func (s *MemoryStore) ListPatterns(ctx context.Context) ([]*pattern.Pattern, error) {
	s.mu.RLock()
	patterns := make([]*pattern.Pattern, 0, len(s.patterns))
	for _, p := range s.patterns {
		copied, err := copyPattern(p)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		patterns = append(patterns, copied)
	}
	s.mu.RUnlock()

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Name != patterns[j].Name {
			return patterns[i].Name < patterns[j].Name
		}
		return patterns[i].ID < patterns[j].ID
	})
	return patterns, nil
}

// DeletePattern removes a pattern by ID.
func (s *MemoryStore) DeletePattern(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patterns[id]; !ok {
		return errors.New(errors.ErrCodePatternNotFound, "pattern %s not found", id)
	}
	delete(s.patterns, id)
	return nil
}

// Close drops all documents.
func (s *MemoryStore) Close(ctx context.Context) error {
	s.mu.Lock()
	s.canvases = make(map[string]*canvas.Canvas)
	s.patterns = make(map[string]*pattern.Pattern)
	s.mu.Unlock()
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
