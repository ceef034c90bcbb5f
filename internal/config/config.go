// Package config loads crossnames settings from a TOML file and the
// environment.
//
// Precedence, lowest first: built-in defaults, the config file, environment
// variables, then command-line flags (applied by the caller).
//
//	grid_size = 20
//	max_words = 8   # 0 uses the default, -1 removes the cap
//	workers = 4
//	timeout = "30s"
//
//	[server]
//	addr = ":3000"
//	static_dir = "public"
//	rate_limit = 30
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/crossnames/pkg/cache"
	cerrors "github.com/matzehuels/crossnames/pkg/errors"
	"github.com/matzehuels/crossnames/pkg/layout"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "crossnames.toml"

// Defaults.
const (
	DefaultAddr       = ":3000"
	DefaultStaticDir  = "public"
	DefaultCORSOrigin = "*"
	DefaultTimeout    = 30 * time.Second
	DefaultRateLimit  = 30 // requests per minute per client
)

// Config is the full runtime configuration.
type Config struct {
	GridSize        int           `toml:"grid_size"`
	MaxWords        int           `toml:"max_words"`
	MaxPermutations int           `toml:"max_permutations"`
	Workers         int           `toml:"workers"`
	Timeout         time.Duration `toml:"timeout"`

	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr       string `toml:"addr"`
	StaticDir  string `toml:"static_dir"`
	CORSOrigin string `toml:"cors_origin"`
	RateLimit  int    `toml:"rate_limit"` // requests per minute, 0 disables
}

// CacheConfig configures the layout cache.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	TTL       time.Duration `toml:"ttl"`
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr"`
	RedisDB   int           `toml:"redis_db"`
	Prefix    string        `toml:"prefix"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		GridSize: layout.DefaultGridSize,
		MaxWords: cerrors.DefaultMaxWords,
		Timeout:  DefaultTimeout,
		Server: ServerConfig{
			Addr:       DefaultAddr,
			StaticDir:  DefaultStaticDir,
			CORSOrigin: DefaultCORSOrigin,
			RateLimit:  DefaultRateLimit,
		},
		Cache: CacheConfig{
			Backend: cache.BackendFile,
			TTL:     cache.TTLLayout,
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path tries DefaultFile and silently falls back to defaults when
// it does not exist; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	md, err := toml.DecodeFile(path, cfg)
	switch {
	case err == nil:
		cfg.Path = path
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, cerrors.New(cerrors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no config file; defaults apply
	default:
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides reads PORT, CROSSNAMES_ADDR, CROSSNAMES_REDIS_ADDR and
// CROSSNAMES_CACHE. CROSSNAMES_ADDR wins over PORT.
func (c *Config) applyEnvOverrides() error {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return cerrors.New(cerrors.ErrCodeInvalidConfig, "PORT: %q is not a number", port)
		}
		c.Server.Addr = ":" + port
	}
	if addr := strings.TrimSpace(os.Getenv("CROSSNAMES_ADDR")); addr != "" {
		c.Server.Addr = addr
	}
	if addr := strings.TrimSpace(os.Getenv("CROSSNAMES_REDIS_ADDR")); addr != "" {
		c.Cache.RedisAddr = addr
		c.Cache.Backend = cache.BackendRedis
	}
	if backend := strings.TrimSpace(os.Getenv("CROSSNAMES_CACHE")); backend != "" {
		c.Cache.Backend = backend
	}
	return nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, format, args...)
	}

	if c.GridSize < 1 {
		return invalid("grid_size must be positive, got %d", c.GridSize)
	}
	if c.MaxWords < -1 {
		return invalid("max_words must be -1 (no cap), 0 (default) or at least %d, got %d", cerrors.MinWords, c.MaxWords)
	}
	if c.MaxWords > 0 && c.MaxWords < cerrors.MinWords {
		return invalid("max_words must be at least %d, got %d", cerrors.MinWords, c.MaxWords)
	}
	if c.MaxPermutations < 0 {
		return invalid("max_permutations cannot be negative, got %d", c.MaxPermutations)
	}
	if c.Workers < 0 {
		return invalid("workers cannot be negative, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return invalid("timeout cannot be negative, got %s", c.Timeout)
	}
	if c.Server.RateLimit < 0 {
		return invalid("server.rate_limit cannot be negative, got %d", c.Server.RateLimit)
	}

	switch c.Cache.Backend {
	case "", cache.BackendFile, cache.BackendNone:
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			return invalid("cache.redis_addr is required for the redis backend")
		}
	default:
		return invalid("cache.backend must be one of file, redis, none; got %q", c.Cache.Backend)
	}
	return nil
}

// String summarizes the configuration for debug logs.
func (c *Config) String() string {
	src := c.Path
	if src == "" {
		src = "defaults"
	}
	return fmt.Sprintf("%s (grid %d, max words %d, cache %s)", src, c.GridSize, c.MaxWords, c.Cache.Backend)
}
