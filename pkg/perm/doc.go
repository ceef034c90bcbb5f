// Package perm enumerates orderings of small sequences.
//
// # Emission Order
//
// [Lexicographic] emits permutations of [0, n) in
// lexicographic order. This is the same order a recursive decomposition
// produces when it picks each element as the head in original relative order
// and appends it to every permutation of the remaining elements:
//
//	[0 1 2] [0 2 1] [1 0 2] [1 2 0] [2 0 1] [2 1 0]
//
// Enumeration is iterative (next-permutation), so there is no recursion depth
// and no intermediate slices per level.
//
// # Working With Items
//
// Permutations are index slices. [Apply] maps an index permutation onto a
// slice of items, which keeps equal items distinguishable by position:
//
//	words := []string{"SAME", "SAME"}
//	for idx := range perm.Lexicographic(len(words)) {
//	    ordering := perm.Apply(words, idx)
//	    ...
//	}
//
// # Size
//
// The permutation space grows as n!. [Factorial] reports its size; stop
// ranging over [Lexicographic] early when n is more than a handful.
package perm
