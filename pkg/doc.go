// Package pkg provides the libraries behind crossnames, a generator of
// crossword-style layouts for small sets of names.
//
// # Overview
//
// Every name must be placed on a square grid so that each one after the
// first crosses an earlier name at a shared letter. The packages are:
//
//   - [grid]: the character matrix and single-word placement
//   - [perm]: lexicographic orderings of the input words
//   - [layout]: the first-fit assembler and the permutation search
//   - [pipeline]: validation, caching and timeouts around a search
//   - [cache]: file, Redis and no-op layout caches
//   - [io]: text, JSON and YAML export
//   - [errors]: coded errors shared by the CLI and the HTTP server
//   - [observability]: hooks for generation, cache and HTTP events
//   - [buildinfo]: version information injected at link time
//
// # Data Flow
//
//	names
//	  ↓
//	[errors] (normalize + validate)
//	  ↓
//	[perm] (one ordering at a time)
//	  ↓
//	[layout] (assemble on a [grid])
//	  ↓
//	[io] (text, JSON or YAML)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Generate(ctx, []string{"ann", "nora", "otto"}, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	io.Write(os.Stdout, res.Layouts, io.FormatText)
package pkg
