package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/gavel-build/gavel/pkg/buildinfo"
	"github.com/gavel-build/gavel/pkg/cache"
	"github.com/gavel-build/gavel/pkg/config"
	"github.com/gavel-build/gavel/pkg/errors"
	"github.com/gavel-build/gavel/pkg/fetch"
	"github.com/gavel-build/gavel/pkg/maven"
	"github.com/gavel-build/gavel/pkg/pomxml"
)

// newCache builds the cache backend selected in the config.
func newCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.BackendFile:
		return cache.NewFileCache(cfg.Cache.Dir)
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Pass,
			DB:       cfg.Cache.DB,
		})
	case config.BackendNone:
		return cache.NewNullCache(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", cfg.Cache.Backend)
	}
}

// newResolver assembles the resolver stack from a config: cache backend,
// HTTP client, repositories. The returned cache must be closed by the
// caller when done.
func newResolver(ctx context.Context, cfg *config.Config, logger *log.Logger) (*maven.Resolver, cache.Cache, error) {
	c, err := newCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	ttl, err := cfg.CacheTTL()
	if err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	client := fetch.NewClient(
		fetch.WithCache(c, ttl),
		fetch.WithHeaders(map[string]string{"User-Agent": "gavel/" + buildinfo.Version}),
	)

	repos := make([]maven.Repository, 0, len(cfg.Repositories))
	for _, r := range cfg.Repositories {
		repos = append(repos, maven.Repository{BaseURL: r.URL})
	}

	resolver := maven.New(repos, client, pomxml.New(), maven.Options{
		Logger: logger.Debugf,
	})
	return resolver, c, nil
}

// parseCoordinates converts positional args into coordinates, failing on
// the first malformed one.
func parseCoordinates(args []string) ([]maven.Coordinate, error) {
	coords := make([]maven.Coordinate, 0, len(args))
	for _, arg := range args {
		coord, err := maven.ParseCoordinate(arg)
		if err != nil {
			return nil, err
		}
		coords = append(coords, coord)
	}
	return coords, nil
}
