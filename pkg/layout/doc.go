// Package layout assembles crossword layouts from a list of words.
//
// # Overview
//
// [Generate] tries every ordering of the input words. For each ordering an
// [Assembler] seeds a fresh grid with the first word, centred horizontally,
// and then places every following word so that it crosses a word already on
// the grid at a shared letter. An ordering whose next word cannot be placed
// is abandoned; there is no backtracking inside an ordering. Every ordering
// that places all of its words contributes one [Layout].
//
// # Placement Search
//
// For the next word w the assembler scans, in this nested order:
//
//  1. every placed word p, in placement order
//  2. every index i in w, from 0 upward
//  3. every index j in p, from 0 upward
//
// The first (p, i, j) with w[i] == p[j] whose perpendicular candidate passes
// [grid.Grid.CanPlace] wins:
//
//	p horizontal at (px, py): w goes vertical at (px+j, py-i)
//	p vertical   at (px, py): w goes horizontal at (px-i, py+j)
//
// # Determinism
//
// Orderings are enumerated with [perm.Lexicographic]. Results keep that
// emission order whether the search runs sequentially or with several
// workers, so repeated runs return identical layouts in identical order.
//
// # Cost
//
// The search is O(n! × n² × L) for n words of length L. Callers bound n (see
// [errors.DefaultMaxWords]) and may cap the number of orderings with
// [Options.MaxPermutations] or cancel through the context.
//
// [errors.DefaultMaxWords]: github.com/matzehuels/crossnames/pkg/errors
package layout
