package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/maramilod/alx-backend/internal/cache"
	"github.com/maramilod/alx-backend/internal/i18n"
)

// CacheConfig names one cache served by the API and its eviction policy.
type CacheConfig struct {
	Name   string       `json:"name"`
	Policy cache.Policy `json:"policy"`
}

// ServerConfig is the full server configuration.
type ServerConfig struct {
	Addr     string        `json:"addr"`      // listen address, e.g. ":5000"
	DBPath   string        `json:"db_path"`   // SQLite file holding the user directory
	MaxItems int           `json:"max_items"` // capacity shared by every cache
	Caches   []CacheConfig `json:"caches"`
	I18n     i18n.Config   `json:"i18n"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Addr:     ":5000",
		DBPath:   "alx-backend.db",
		MaxItems: cache.DefaultMaxItems,
		Caches: []CacheConfig{
			{Name: "basic", Policy: cache.Unbounded},
			{Name: "fifo", Policy: cache.FIFO},
			{Name: "lifo", Policy: cache.LIFO},
		},
		I18n: i18n.DefaultConfig(),
	}
}

// Load reads the JSON file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*ServerConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		// Decoding into the default slice would reuse its elements.
		defaults := cfg.Caches
		cfg.Caches = nil
		if err := json.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
		if cfg.Caches == nil {
			cfg.Caches = defaults
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ServerConfig) applyEnv() error {
	c.Addr = getEnv("ADDR", c.Addr)
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	if v := os.Getenv("MAX_ITEMS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MAX_ITEMS: %w", err)
		}
		c.MaxItems = n
	}
	return nil
}

// Validate fails fast on settings the caches cannot be built from.
func (c *ServerConfig) Validate() error {
	if c.MaxItems <= 0 {
		return fmt.Errorf("max_items: %w: got %d", cache.ErrInvalidCapacity, c.MaxItems)
	}
	if len(c.Caches) == 0 {
		return errors.New("caches: at least one cache must be configured")
	}
	seen := make(map[string]struct{}, len(c.Caches))
	for _, cc := range c.Caches {
		if cc.Name == "" {
			return errors.New("caches: name is required")
		}
		if _, dup := seen[cc.Name]; dup {
			return fmt.Errorf("caches: duplicate name %q", cc.Name)
		}
		seen[cc.Name] = struct{}{}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
