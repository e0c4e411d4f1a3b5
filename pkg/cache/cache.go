// Package cache stores rendered chart artifacts keyed by a hash of the
// document and output options.
//
// Three backends are provided:
//   - [FileCache] for the CLI, one JSON entry file per key under a directory
//   - [RedisCache] for the render server, shared between replicas
//   - [NullCache] when caching is disabled
//
// Keys are produced by a [Keyer] so callers never build key strings by hand.
package cache

import (
	"context"
	"strconv"
	"time"
)

// DefaultTTL is the expiry used for rendered artifacts.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with optional expiry.
// A miss is reported as (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts are the output options that change rendered bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey keys a rendered artifact by document hash and output options.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts.Format, strconv.Itoa(opts.Width), strconv.Itoa(opts.Height))
}
