package cache

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/circlegrid/pkg/errors"
)

// Cache is a byte-oriented key/value store with optional expiry.
// Implementations must be safe for sequential use from one goroutine;
// the CLI never shares a cache between goroutines.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Entry lifetimes.
const (
	// TTLLayout is how long computed layouts are kept.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact is how long rendered artifacts are kept.
	TTLArtifact = 7 * 24 * time.Hour
)

// Backend names accepted by [Open].
const (
	BackendFile = "file"
	BackendNone = "none"
)

// Open returns the cache described by spec: "file" (or empty) for a
// [FileCache] in dir, "none" for a [NullCache], or a redis:// or
// rediss:// URL for a [RedisCache].
func Open(ctx context.Context, spec, dir string) (Cache, error) {
	switch {
	case spec == "" || spec == BackendFile:
		c, err := NewFileCache(dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open cache dir %s", dir)
		}
		return c, nil
	case spec == BackendNone:
		return NewNullCache(), nil
	case strings.HasPrefix(spec, "redis://"), strings.HasPrefix(spec, "rediss://"):
		c, err := NewRedisCache(ctx, spec)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, errors.Configuration("unknown cache backend %q (use file, none or a redis:// URL)", spec)
	}
}

// Clearer is implemented by caches that can drop all of their entries.
type Clearer interface {
	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)

	// Location describes where entries live: a directory or server URL.
	Location() string
}
