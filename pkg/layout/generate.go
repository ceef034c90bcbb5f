package layout

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	cerrors "github.com/matzehuels/crossnames/pkg/errors"
	"github.com/matzehuels/crossnames/pkg/perm"
)

// batchPerWorker is how many orderings each worker receives per batch in
// parallel mode. Results are merged batch by batch in emission order.
const batchPerWorker = 64

// Options configures [Generate]. The zero value runs the full sequential
// search on a [DefaultGridSize] grid.
type Options struct {
	// GridSize is the side length of the grid. Zero means DefaultGridSize.
	GridSize int

	// MaxPermutations stops the search after this many orderings.
	// Zero or negative tries every ordering.
	MaxPermutations int

	// Workers evaluates orderings concurrently when greater than one.
	Workers int

	// Logger receives debug output. Nil disables logging.
	Logger *log.Logger
}

func (o Options) gridSize() int {
	if o.GridSize <= 0 {
		return DefaultGridSize
	}
	return o.GridSize
}

// Result is the ordered collection of layouts found by [Generate].
type Result struct {
	Layouts  []Layout
	Tried    int           // orderings evaluated
	Duration time.Duration // wall time of the search
}

// Generate runs the layout search over every ordering of words and returns
// the layouts of the orderings that placed every word, in emission order.
// No successful ordering yields an empty result, not an error.
//
// Words are expected to be normalized already. A word longer than the grid
// fails with WORD_TOO_LONG and an empty word with INVALID_INPUT before any
// ordering is tried. Cancelling ctx stops the search with a TIMEOUT error.
func Generate(ctx context.Context, words []string, opts Options) (*Result, error) {
	start := time.Now()
	size := opts.gridSize()

	for _, w := range words {
		if w == "" {
			return nil, cerrors.New(cerrors.ErrCodeInvalidInput, "name cannot be empty")
		}
		if n := len([]rune(w)); n > size {
			return nil, cerrors.New(cerrors.ErrCodeWordTooLong, "name %q has %d letters, the grid holds %d", w, n, size)
		}
	}

	result := &Result{Layouts: []Layout{}}
	if len(words) == 0 {
		return result, nil
	}

	if opts.Logger != nil {
		opts.Logger.Debug("layout search started",
			"words", len(words),
			"orderings", orderingCount(len(words), opts.MaxPermutations),
			"workers", max(opts.Workers, 1))
	}

	a := NewAssembler(size)
	var err error
	if opts.Workers > 1 {
		err = searchParallel(ctx, a, words, opts, result)
	} else {
		err = searchSequential(ctx, a, words, opts, result)
	}
	result.Duration = time.Since(start)
	if err != nil {
		return nil, err
	}

	if opts.Logger != nil {
		opts.Logger.Debug("layout search finished",
			"words", len(words),
			"tried", result.Tried,
			"layouts", len(result.Layouts),
			"duration", result.Duration)
	}
	return result, nil
}

// orderingCount is the number of orderings a search will try: n! capped by
// limit. Factorials past 20! overflow, so larger n reports the cap or -1.
func orderingCount(n, limit int) int {
	if n > 20 {
		if limit > 0 {
			return limit
		}
		return -1
	}
	total := perm.Factorial(n)
	if limit > 0 && limit < total {
		return limit
	}
	return total
}

// orderings yields word orderings in emission order, honouring the
// permutation cap.
func orderings(words []string, limit int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		n := 0
		for idx := range perm.Lexicographic(len(words)) {
			if limit > 0 && n >= limit {
				return
			}
			n++
			if !yield(perm.Apply(words, idx)) {
				return
			}
		}
	}
}

func searchSequential(ctx context.Context, a *Assembler, words []string, opts Options, result *Result) error {
	for ordering := range orderings(words, opts.MaxPermutations) {
		if err := ctx.Err(); err != nil {
			return interrupted(err, result.Tried)
		}
		result.Tried++

		l, err := a.Try(ordering)
		if errors.Is(err, ErrUnplaceable) {
			continue
		}
		if err != nil {
			return err
		}
		result.Layouts = append(result.Layouts, l)
	}
	return nil
}

func searchParallel(ctx context.Context, a *Assembler, words []string, opts Options, result *Result) error {
	batchSize := opts.Workers * batchPerWorker
	batch := make([][]string, 0, batchSize)

	flush := func() error {
		if err := ctx.Err(); err != nil {
			return interrupted(err, result.Tried)
		}
		slots := make([]*Layout, len(batch))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for k, ordering := range batch {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				l, err := a.Try(ordering)
				if errors.Is(err, ErrUnplaceable) {
					return nil
				}
				if err != nil {
					return err
				}
				slots[k] = &l
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return interrupted(ctxErr, result.Tried)
			}
			return err
		}
		result.Tried += len(batch)
		for _, l := range slots {
			if l != nil {
				result.Layouts = append(result.Layouts, *l)
			}
		}
		batch = batch[:0]
		return nil
	}

	for ordering := range orderings(words, opts.MaxPermutations) {
		batch = append(batch, ordering)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if len(batch) > 0 {
		return flush()
	}
	return nil
}

func interrupted(err error, tried int) error {
	return cerrors.Wrap(cerrors.ErrCodeTimeout, err, "layout search stopped after %d orderings", tried)
}
