// Package pipeline runs a layout request end to end: normalize the names,
// validate them, consult the cache, search, and store the result.
//
// The CLI and the HTTP server both go through a [Runner] so they share
// validation rules, cache keys, and logging.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Generate(ctx, []string{"anna", "bob"}, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, l := range result.Layouts {
//	    fmt.Println(l.Grid)
//	}
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/crossnames/pkg/cache"
	cerrors "github.com/matzehuels/crossnames/pkg/errors"
	"github.com/matzehuels/crossnames/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultGridSize is the grid side length.
	DefaultGridSize = layout.DefaultGridSize

	// DefaultMaxWords bounds the factorial search.
	DefaultMaxWords = cerrors.DefaultMaxWords
)

// =============================================================================
// Options
// =============================================================================

// Options configures a single [Runner.Generate] call.
type Options struct {
	GridSize        int           `json:"grid_size,omitempty"`
	MaxWords        int           `json:"max_words,omitempty"` // 0 means DefaultMaxWords, negative means no cap
	MaxPermutations int           `json:"max_permutations,omitempty"`
	Workers         int           `json:"workers,omitempty"`
	Timeout         time.Duration `json:"timeout,omitempty"` // zero means no deadline
	Refresh         bool          `json:"refresh,omitempty"` // skip the cache lookup

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// SetDefaults fills zero-valued fields.
func (o *Options) SetDefaults() {
	if o.GridSize <= 0 {
		o.GridSize = DefaultGridSize
	}
	if o.MaxWords == 0 { // negative values disable the cap and are kept
		o.MaxWords = DefaultMaxWords
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutOptions returns the options for the layout search.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{
		GridSize:        o.GridSize,
		MaxPermutations: o.MaxPermutations,
		Workers:         o.Workers,
		Logger:          o.Logger,
	}
}

// LayoutKeyOpts returns the cache key options. Workers and Timeout do not
// change a completed result and are left out.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		GridSize:        o.GridSize,
		MaxPermutations: o.MaxPermutations,
	}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a run.
type Result struct {
	// Words is the normalized word list the layouts were built from.
	Words []string

	// Layouts holds one entry per successful ordering, in emission order.
	Layouts []layout.Layout

	// Stats contains search statistics. They describe the original search
	// when the result came from the cache.
	Stats Stats

	// CacheHit is true when the layouts were read from the cache.
	CacheHit bool
}

// Stats contains search statistics.
type Stats struct {
	Tried      int           // orderings evaluated
	SearchTime time.Duration // wall time of the search
}
