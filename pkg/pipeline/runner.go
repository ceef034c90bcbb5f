package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/crossnames/pkg/cache"
	cerrors "github.com/matzehuels/crossnames/pkg/errors"
	"github.com/matzehuels/crossnames/pkg/grid"
	"github.com/matzehuels/crossnames/pkg/layout"
	"github.com/matzehuels/crossnames/pkg/observability"
)

const keyTypeLayout = "layout"

// Runner encapsulates layout generation with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLLayout,
	}
}

// Generate normalizes and validates raw names, then returns every layout
// for them, from the cache when possible.
func (r *Runner) Generate(ctx context.Context, names []string, opts Options) (result *Result, err error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	words := cerrors.NormalizeWords(names)
	if err := cerrors.ValidateWords(words, opts.GridSize, opts.MaxWords); err != nil {
		return nil, err
	}

	start := time.Now()
	hooks := observability.Generate()
	hooks.OnGenerateStart(ctx, words)
	defer func() {
		layouts, tried := 0, 0
		if result != nil {
			layouts = len(result.Layouts)
			if !result.CacheHit {
				tried = result.Stats.Tried
			}
		}
		hooks.OnGenerateComplete(ctx, words, layouts, tried, time.Since(start), err)
	}()

	key := r.Keyer.LayoutKey(words, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if cached, ok := r.lookup(ctx, key); ok {
			cached.Words = words
			r.Logger.Debug("layouts from cache", "words", len(words), "layouts", len(cached.Layouts))
			return cached, nil
		}
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	found, err := layout.Generate(ctx, words, opts.LayoutOptions())
	if err != nil {
		return nil, err
	}

	result = &Result{
		Words:   words,
		Layouts: found.Layouts,
		Stats: Stats{
			Tried:      found.Tried,
			SearchTime: found.Duration,
		},
	}

	r.Logger.Debug("generated layouts",
		"words", len(words),
		"tried", found.Tried,
		"layouts", len(found.Layouts),
		"duration", found.Duration)

	r.store(ctx, key, result)
	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup reads a result from the cache. Backend errors and undecodable
// entries are treated as misses.
func (r *Runner) lookup(ctx context.Context, key string) (*Result, bool) {
	hooks := observability.Cache()

	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, keyTypeLayout)
		return nil, false
	}

	result, err := decodeResult(data)
	if err != nil {
		r.Logger.Warn("discarding cache entry", "error", err)
		_ = r.Cache.Delete(ctx, key)
		hooks.OnCacheMiss(ctx, keyTypeLayout)
		return nil, false
	}

	hooks.OnCacheHit(ctx, keyTypeLayout)
	result.CacheHit = true
	return result, true
}

func (r *Runner) store(ctx context.Context, key string, result *Result) {
	data, err := encodeResult(result)
	if err != nil {
		r.Logger.Warn("encoding cache entry failed", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeLayout, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// =============================================================================
// Cache encoding
// =============================================================================

// cachedLayout keeps the ordering and placements that the wire form of
// layout.Layout drops.
type cachedLayout struct {
	Ordering   []string         `json:"ordering"`
	Placements []grid.Placement `json:"placements"`
	Rows       [][]string       `json:"rows"`
}

type cachedResult struct {
	Layouts    []cachedLayout `json:"layouts"`
	Tried      int            `json:"tried"`
	SearchTime time.Duration  `json:"search_time"`
}

func encodeResult(r *Result) ([]byte, error) {
	c := cachedResult{
		Layouts:    make([]cachedLayout, len(r.Layouts)),
		Tried:      r.Stats.Tried,
		SearchTime: r.Stats.SearchTime,
	}
	for i, l := range r.Layouts {
		c.Layouts[i] = cachedLayout{
			Ordering:   l.Ordering,
			Placements: l.Placements,
			Rows:       l.Rows(),
		}
	}
	return json.Marshal(c)
}

func decodeResult(data []byte) (*Result, error) {
	var c cachedResult
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	result := &Result{
		Layouts: make([]layout.Layout, len(c.Layouts)),
		Stats: Stats{
			Tried:      c.Tried,
			SearchTime: c.SearchTime,
		},
	}
	for i, cl := range c.Layouts {
		g, err := grid.FromRows(cl.Rows)
		if err != nil {
			return nil, err
		}
		result.Layouts[i] = layout.Layout{
			Ordering:   cl.Ordering,
			Placements: cl.Placements,
			Grid:       g,
		}
	}
	return result, nil
}
