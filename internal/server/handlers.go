package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tileforge/mosaic/pkg/buildinfo"
	"github.com/tileforge/mosaic/pkg/cache"
	"github.com/tileforge/mosaic/pkg/canvas"
	"github.com/tileforge/mosaic/pkg/errors"
	"github.com/tileforge/mosaic/pkg/grid"
	"github.com/tileforge/mosaic/pkg/tile"
	"github.com/tileforge/mosaic/pkg/tile/compat"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

// =============================================================================
// Canvases
// =============================================================================

type createCanvasRequest struct {
	Name     string        `json:"name"`
	Geometry grid.Geometry `json:"geometry"`
	Palette  []string      `json:"palette"`
}

func (s *Server) handleCreateCanvas(w http.ResponseWriter, r *http.Request) {
	var req createCanvasRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := canvas.New(req.Name, req.Geometry, req.Palette)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.SaveCanvas(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListCanvases(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.ListCanvases(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetCanvas(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetCanvas(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCanvas(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCanvas(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Authoring operations
// =============================================================================

type strokeRequest struct {
	Cells []canvas.StrokeCell `json:"cells"`
}

func (s *Server) handleStroke(w http.ResponseWriter, r *http.Request) {
	var req strokeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := s.store.GetCanvas(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.PaintStroke(c.Table(s.tables), req.Cells); err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.SaveCanvas(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type fillRequest struct {
	Seed int64     `json:"seed"`
	Rect *fillRect `json:"rect,omitempty"`
}

type fillRect struct {
	MinRow int `json:"min_row"`
	MinCol int `json:"min_col"`
	MaxRow int `json:"max_row"`
	MaxCol int `json:"max_col"`
}

type fillResponse struct {
	Placed int            `json:"placed"`
	Canvas *canvas.Canvas `json:"canvas"`
}

func (s *Server) handleFill(w http.ResponseWriter, r *http.Request) {
	var req fillRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := s.store.GetCanvas(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	tab := c.Table(s.tables)
	var placed int
	if req.Rect != nil {
		placed, err = c.FillRect(tab, req.Rect.MinRow, req.Rect.MinCol, req.Rect.MaxRow, req.Rect.MaxCol, req.Seed)
		if err != nil {
			writeError(w, err)
			return
		}
	} else {
		placed = c.FloodFill(tab, req.Seed)
	}

	if err := s.store.SaveCanvas(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fillResponse{Placed: placed, Canvas: c})
}

type captureRequest struct {
	Name   string `json:"name"`
	MinRow int    `json:"min_row"`
	MinCol int    `json:"min_col"`
	MaxRow int    `json:"max_row"`
	MaxCol int    `json:"max_col"`
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	var req captureRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := s.store.GetCanvas(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := c.CapturePattern(req.Name, req.MinRow, req.MinCol, req.MaxRow, req.MaxCol)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.SavePattern(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

type stampRequest struct {
	PatternID string `json:"pattern_id"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Rotation  *int   `json:"rotation,omitempty"`
	MirrorX   *bool  `json:"mirror_x,omitempty"`
}

type stampResponse struct {
	Written int            `json:"written"`
	Canvas  *canvas.Canvas `json:"canvas"`
}

func (s *Server) handleStamp(w http.ResponseWriter, r *http.Request) {
	var req stampRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := s.store.GetCanvas(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := s.store.GetPattern(r.Context(), req.PatternID)
	if err != nil {
		writeError(w, err)
		return
	}

	// The request can override the pattern's stored display transform.
	if req.Rotation != nil {
		p.Rotation = *req.Rotation
	}
	if req.MirrorX != nil {
		p.MirrorX = *req.MirrorX
	}

	written, err := c.StampPattern(p, req.Row, req.Col)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.SaveCanvas(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stampResponse{Written: written, Canvas: c})
}

// =============================================================================
// Lookups and overlays
// =============================================================================

type matchesResponse struct {
	Mask     string           `json:"mask"`
	Variants []compat.Variant `json:"variants"`
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetCanvas(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	key := r.URL.Query().Get("mask")
	m, ok := tile.MaskFromKey(key)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid mask %q", key))
		return
	}

	tab := c.Table(s.tables)
	variants := tab.Matches(m)
	if variants == nil {
		variants = []compat.Variant{}
	}
	writeJSON(w, http.StatusOK, matchesResponse{Mask: m.Key(), Variants: variants})
}

func (s *Server) handleAdjacency(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetCanvas(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "dot"
	}
	detailed := r.URL.Query().Get("detailed") == "true"

	tab := c.Table(s.tables)
	dot := tab.ToDOT(compat.DotOptions{Detailed: detailed})

	if format == "dot" {
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		_, _ = w.Write([]byte(dot))
		return
	}

	var contentType string
	var render func(string) ([]byte, error)
	switch format {
	case "svg":
		contentType = "image/svg+xml"
		render = compat.RenderSVG
	case "png":
		contentType = "image/png"
		render = compat.RenderPNG
	default:
		writeError(w, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format))
		return
	}

	// Rendering goes through Graphviz, so cache by palette and options.
	key := s.keyer.RenderKey(cache.Hash([]byte(compat.Signature(c.Palette))), cache.RenderKeyOpts{
		Format:   format,
		Detailed: detailed,
	})
	if data, hit, err := s.artifacts.Get(r.Context(), key); err == nil && hit {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
		return
	}

	data, err := render(dot)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "failed to render adjacency graph"))
		return
	}
	if err := s.artifacts.Set(r.Context(), key, data, s.ttl); err != nil {
		s.logger.Warn("failed to cache rendered graph", "err", err)
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}

type spiralResponse struct {
	Order []int `json:"order"`
}

func (s *Server) handleSpiral(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetCanvas(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spiralResponse{
		Order: grid.SpiralOrder(c.Geometry.Columns, c.Geometry.Rows),
	})
}

type levelResponse struct {
	grid.LevelInfo
	MaxLevel   int       `json:"max_level"`
	Vertical   []float64 `json:"vertical_lines"`
	Horizontal []float64 `json:"horizontal_lines"`
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetCanvas(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	level, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid level %q", chi.URLParam(r, "level")))
		return
	}

	info, ok := grid.Level(c.Geometry, level)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeNotFound, "level %d has no full blocks on a %dx%d grid",
			level, c.Geometry.Columns, c.Geometry.Rows))
		return
	}
	vertical, horizontal := grid.LevelLinePositions(c.Geometry, level)
	writeJSON(w, http.StatusOK, levelResponse{
		LevelInfo:  info,
		MaxLevel:   grid.MaxLevel(c.Geometry),
		Vertical:   vertical,
		Horizontal: horizontal,
	})
}

// =============================================================================
// Patterns
// =============================================================================

func (s *Server) handleListPatterns(w http.ResponseWriter, r *http.Request) {
	patterns, err := s.store.ListPatterns(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, patterns)
}

func (s *Server) handleGetPattern(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetPattern(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePattern(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePattern(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRotatePattern(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetPattern(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	p.RotateCW()
	if err := s.store.SavePattern(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleMirrorPattern(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetPattern(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	p.ToggleMirror()
	if err := s.store.SavePattern(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
