package perm

import (
	"iter"
	"slices"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n < 0 {
		n = 0
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Factorials grow extremely fast: 21! already overflows a 64-bit int.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Lexicographic yields every permutation of [0, 1, ..., n-1] in
// lexicographic order. n <= 1 yields exactly one permutation.
//
// Each yielded slice is a separate allocation, safe to keep or modify.
func Lexicographic(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := Seq(n)
		for {
			if !yield(slices.Clone(p)) {
				return
			}
			if !Next(p) {
				return
			}
		}
	}
}

// Next rearranges p into the lexicographically next permutation and reports
// whether one existed. When p is the last permutation it is left unchanged.
func Next(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}

// Apply returns items rearranged by the index permutation idx, so that
// result[k] == items[idx[k]].
func Apply[T any](items []T, idx []int) []T {
	out := make([]T, len(idx))
	for k, i := range idx {
		out[k] = items[i]
	}
	return out
}
