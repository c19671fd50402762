package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tileforge/mosaic/internal/server"
	"github.com/tileforge/mosaic/pkg/cache"
	"github.com/tileforge/mosaic/pkg/config"
	"github.com/tileforge/mosaic/pkg/store"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the mosaic HTTP API",
		Long: `Run the mosaic HTTP API.

Configuration is read from a TOML file. Without --config the conventional
location under the user config directory is used when present, otherwise
built-in defaults apply (in-memory store and cache on :8080).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				if p := config.DefaultPath(); p != "" {
					if _, err := os.Stat(p); err == nil {
						configPath = p
					}
				}
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config.toml")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServe wires the configured backends and serves until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, cfg *config.Config) error {
	st, err := newStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			c.Logger.Warn("failed to close store", "err", err)
		}
	}()

	artifacts, err := newServerCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer func() {
		if err := artifacts.Close(); err != nil {
			c.Logger.Warn("failed to close cache", "err", err)
		}
	}()

	srv := server.New(server.Options{
		Store:     st,
		Artifacts: artifacts,
		Logger:    c.Logger,
		TTL:       cfg.Cache.TTL.Duration,
	})

	httpSrv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", cfg.Server.Addr,
			"store", backendName(cfg.Store.Backend), "cache", backendName(cfg.Cache.Backend))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}

// newStore builds the document store selected by the configuration.
func newStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case "mongo":
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.Database)
	default:
		return store.NewMemoryStore(), nil
	}
}

// newServerCache builds the artifact cache selected by the configuration.
func newServerCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "file":
		dir := cfg.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return cache.NewMemoryCache(), nil
	}
}

func backendName(s string) string {
	if s == "" {
		return "memory"
	}
	return s
}
