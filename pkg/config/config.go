// Package config loads gavel's TOML configuration file.
//
// All settings have working defaults, so a config file is optional; flags
// on the CLI override whatever the file provides.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gavel-build/gavel/pkg/errors"
)

// Backend names accepted in the [cache] section.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the root of the gavel.toml file.
type Config struct {
	// Target is the directory artifacts are extracted into.
	Target string `toml:"target"`

	// Repositories are queried in declaration order; the first that has
	// an artifact wins.
	Repositories []Repository `toml:"repositories"`

	Cache CacheConfig `toml:"cache"`
}

// Repository is one remote Maven repository.
type Repository struct {
	URL string `toml:"url"`
}

// CacheConfig selects and configures the descriptor cache backend.
type CacheConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`  // file backend
	TTL     string `toml:"ttl"`  // e.g. "24h"; empty means no expiry
	Addr    string `toml:"addr"` // redis backend
	Pass    string `toml:"password"`
	DB      int    `toml:"db"`
}

// Default returns the configuration used when no file is present:
// Maven Central plus Google's Android repository, file-backed cache
// under the user cache dir, extraction into ./target.
func Default() *Config {
	return &Config{
		Target: "target",
		Repositories: []Repository{
			{URL: "https://repo.maven.apache.org/maven2"},
			{URL: "https://dl.google.com/dl/android/maven2"},
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			Dir:     DefaultCacheDir(),
			TTL:     "24h",
		},
	}
}

// DefaultCacheDir returns the platform cache directory for gavel,
// falling back to a hidden directory in the working tree when the user
// cache dir cannot be determined.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".gavel-cache"
	}
	return filepath.Join(base, "gavel")
}

// Load reads a TOML config file and merges it over [Default]. A missing
// file is not an error; an unreadable or invalid one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	// Fields absent from the file keep their defaults, except the
	// repository list, which is replaced wholesale when declared.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that TOML decoding cannot.
func (c *Config) Validate() error {
	if c.Target == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "target directory must not be empty")
	}
	if len(c.Repositories) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one repository is required")
	}
	for _, repo := range c.Repositories {
		if repo.URL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "repository url must not be empty")
		}
	}

	switch c.Cache.Backend {
	case BackendNone, BackendFile, BackendRedis:
	case "":
		c.Cache.Backend = BackendNone
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (want none, file, or redis)", c.Cache.Backend)
	}

	if c.Cache.Backend == BackendRedis && c.Cache.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "redis cache requires addr")
	}

	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	return nil
}

// CacheTTL parses the cache TTL. An empty TTL means entries never expire.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse cache ttl %q", c.Cache.TTL)
	}
	return ttl, nil
}
