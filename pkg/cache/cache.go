// Package cache provides byte-oriented response caching for repository
// metadata.
//
// The resolver fetches the same POM descriptors over and over across runs;
// caching them avoids hammering Maven repositories. Three backends are
// provided:
//   - file: entries stored as files in a directory (CLI default)
//   - redis: shared cache for CI fleets
//   - null: caching disabled
//
// Cached values are opaque byte slices; callers namespace their keys
// (e.g., "pom:https://repo1.../junit-4.13.2.pom") to avoid collisions.
// Binary artifacts are intentionally not cached: they are written straight
// to the extraction tree, whose exists() check already makes downloads
// idempotent.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores byte payloads under string keys with per-entry TTL.
// A TTL of 0 means the entry never expires.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss;
	// expired entries are treated as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes an entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
