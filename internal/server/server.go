// Package server implements the mosaic HTTP API: canvas and pattern CRUD,
// the authoring operations (stroke, fill, capture, stamp), adjacency graph
// rendering and grid overlay queries.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tileforge/mosaic/pkg/cache"
	"github.com/tileforge/mosaic/pkg/store"
	"github.com/tileforge/mosaic/pkg/tile/compat"
)

// Server wires the stores and caches behind the HTTP handlers.
type Server struct {
	store     store.Store
	artifacts cache.Cache
	keyer     cache.Keyer
	tables    *compat.Cache
	logger    *log.Logger
	ttl       time.Duration
}

// Options configures a server.
type Options struct {
	// Store persists canvases and patterns. Required.
	Store store.Store

	// Artifacts caches rendered adjacency graphs. Defaults to a null cache.
	Artifacts cache.Cache

	// Logger receives request logs. Defaults to log.Default().
	Logger *log.Logger

	// TTL bounds the lifetime of cached artifacts. Zero means no expiry.
	TTL time.Duration
}

// New creates a server with its routes registered.
func New(opts Options) *Server {
	artifacts := opts.Artifacts
	if artifacts == nil {
		artifacts = cache.NewNullCache()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:     opts.Store,
		artifacts: artifacts,
		keyer:     cache.NewDefaultKeyer(),
		tables:    compat.NewCache(),
		logger:    logger,
		ttl:       opts.TTL,
	}
}

// Router returns the HTTP handler for the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/api", func(r chi.Router) {
		r.Route("/canvases", func(r chi.Router) {
			r.Post("/", s.handleCreateCanvas)
			r.Get("/", s.handleListCanvases)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetCanvas)
				r.Delete("/", s.handleDeleteCanvas)
				r.Post("/stroke", s.handleStroke)
				r.Post("/fill", s.handleFill)
				r.Post("/capture", s.handleCapture)
				r.Post("/stamp", s.handleStamp)
				r.Get("/matches", s.handleMatches)
				r.Get("/adjacency", s.handleAdjacency)
				r.Get("/spiral", s.handleSpiral)
				r.Get("/levels/{level}", s.handleLevel)
			})
		})
		r.Route("/patterns", func(r chi.Router) {
			r.Get("/", s.handleListPatterns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetPattern)
				r.Delete("/", s.handleDeletePattern)
				r.Post("/rotate", s.handleRotatePattern)
				r.Post("/mirror", s.handleMirrorPattern)
			})
		})
	})

	return r
}

// logRequests logs method, path, status and duration for every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
