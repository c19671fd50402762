// Package config loads application configuration from a TOML file with
// sensible defaults for local use.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tileforge/mosaic/pkg/errors"
)

// Config is the application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Cache   CacheConfig   `toml:"cache"`
	Store   StoreConfig   `toml:"store"`
	Palette PaletteConfig `toml:"palette"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  duration `toml:"read_timeout"`
	WriteTimeout duration `toml:"write_timeout"`
}

// CacheConfig selects and configures the cache backend.
// Backend is one of "memory", "file", "redis" or "none".
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       duration `toml:"ttl"`
}

// StoreConfig selects and configures the document store.
// Backend is one of "memory" or "mongo".
type StoreConfig struct {
	Backend  string `toml:"backend"`
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// PaletteConfig points at the default palette source.
type PaletteConfig struct {
	Dir  string `toml:"dir"`
	File string `toml:"file"`
}

// duration wraps time.Duration for TOML decoding of strings like "30s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  duration{15 * time.Second},
			WriteTimeout: duration{30 * time.Second},
		},
		Cache: CacheConfig{
			Backend: "memory",
			TTL:     duration{24 * time.Hour},
		},
		Store: StoreConfig{
			Backend:  "memory",
			Database: "mosaic",
		},
	}
}

// Load reads a TOML configuration file, applying defaults for any
// omitted fields. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the conventional config location under the user's
// config directory, or "" when it cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mosaic", "config.toml")
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case "", "memory", "file", "redis", "none":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case "", "memory", "mongo":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", c.Store.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache backend redis requires redis_addr")
	}
	if c.Store.Backend == "mongo" && c.Store.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidInput, "store backend mongo requires mongo_uri")
	}
	return nil
}
