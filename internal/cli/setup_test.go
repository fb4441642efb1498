package cli

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/gavel-build/gavel/pkg/config"
	"github.com/gavel-build/gavel/pkg/errors"
)

func TestParseCoordinates(t *testing.T) {
	coords, err := parseCoordinates([]string{"junit:junit:4.13.2", "com.squareup.okio:okio:3.9.0"})
	if err != nil {
		t.Fatalf("parseCoordinates() error: %v", err)
	}
	if len(coords) != 2 {
		t.Fatalf("len(coords) = %d, want 2", len(coords))
	}
	if coords[0].ArtifactID != "junit" || coords[1].GroupID != "com.squareup.okio" {
		t.Errorf("unexpected coordinates: %v", coords)
	}
}

func TestParseCoordinatesInvalid(t *testing.T) {
	_, err := parseCoordinates([]string{"junit:junit:4.13.2", "not-a-coordinate"})
	if err == nil {
		t.Fatal("parseCoordinates() should fail on a malformed coordinate")
	}
	if !errors.Is(err, errors.ErrCodeInvalidCoordinate) {
		t.Errorf("code = %q, want INVALID_COORDINATE", errors.GetCode(err))
	}
}

func TestNewCacheBackends(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	cfg.Cache.Backend = config.BackendNone
	c, err := newCache(ctx, cfg)
	if err != nil {
		t.Fatalf("newCache(none) error: %v", err)
	}
	defer c.Close()
	if _, ok, _ := c.Get(ctx, "anything"); ok {
		t.Error("null cache should always miss")
	}

	cfg.Cache.Backend = config.BackendFile
	cfg.Cache.Dir = t.TempDir()
	fc, err := newCache(ctx, cfg)
	if err != nil {
		t.Fatalf("newCache(file) error: %v", err)
	}
	defer fc.Close()
	if err := fc.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("file cache Set() error: %v", err)
	}
	if data, ok, _ := fc.Get(ctx, "k"); !ok || string(data) != "v" {
		t.Errorf("file cache Get() = %q, %v; want %q, true", data, ok, "v")
	}
}

func TestNewResolverFromDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = config.BackendNone

	var buf discardWriter
	resolver, c, err := newResolver(context.Background(), cfg, newLogger(buf, log.InfoLevel))
	if err != nil {
		t.Fatalf("newResolver() error: %v", err)
	}
	defer c.Close()
	if resolver == nil {
		t.Fatal("newResolver() returned nil resolver")
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
