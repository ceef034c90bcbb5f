// Package cache stores computed layout sets so repeated requests for the same
// names skip the factorial search.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: never stores anything, for --no-cache and tests
//
// # Keys
//
// A [Keyer] derives keys from the inputs that determine a result. Keys for
// layout sets hash the word list together with the grid size and the
// permutation cap, so changing any of them misses the cache:
//
//	key := cache.NewDefaultKeyer().LayoutKey(words, cache.LayoutKeyOpts{GridSize: 20})
//
// [ScopedKeyer] prefixes every key, which keeps test runs or tenants apart in
// a shared Redis.
package cache

import (
	"context"
	"time"
)

// TTLLayout is how long a computed layout set stays cached.
const TTLLayout = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// A missing or expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. ttl <= 0 stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// LayoutKeyOpts holds the search options that change a layout result.
type LayoutKeyOpts struct {
	GridSize        int `json:"grid_size"`
	MaxPermutations int `json:"max_permutations,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey returns the key for the layout set of words.
	LayoutKey(words []string, opts LayoutKeyOpts) string
}

// DefaultKeyer produces unprefixed keys of the form "layout:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey hashes the ordered word list with the options. Word order is
// part of the key because it determines the order of the result.
func (DefaultKeyer) LayoutKey(words []string, opts LayoutKeyOpts) string {
	return hashKey("layout", words, opts)
}
