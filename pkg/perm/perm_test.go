package perm

import (
	"fmt"
	"slices"
	"testing"
)

func TestSeq(t *testing.T) {
	if got := Seq(4); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("Seq(4) = %v", got)
	}
	if got := Seq(0); len(got) != 0 {
		t.Errorf("Seq(0) = %v, want empty", got)
	}
	if got := Seq(-2); len(got) != 0 {
		t.Errorf("Seq(-2) = %v, want empty", got)
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct{ n, want int }{
		{-1, 1}, {0, 1}, {1, 1}, {2, 2}, {5, 120}, {8, 40320},
	}
	for _, tt := range tests {
		if got := Factorial(tt.n); got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestLexicographicCountAndDistinct(t *testing.T) {
	for n := 0; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			seen := make(map[string]bool)
			count := 0
			for p := range Lexicographic(n) {
				if len(p) != n {
					t.Fatalf("permutation %v has length %d", p, len(p))
				}
				sorted := slices.Sorted(slices.Values(p))
				if !slices.Equal(sorted, Seq(n)) {
					t.Fatalf("%v is not a permutation of [0,%d)", p, n)
				}
				key := fmt.Sprint(p)
				if seen[key] {
					t.Fatalf("duplicate permutation %v", p)
				}
				seen[key] = true
				count++
			}
			if count != Factorial(n) {
				t.Errorf("got %d permutations, want %d", count, Factorial(n))
			}
		})
	}
}

// recursive mirrors the head-then-rest decomposition the emission order is
// defined by.
func recursive(items []int) [][]int {
	if len(items) <= 1 {
		return [][]int{slices.Clone(items)}
	}
	var out [][]int
	for i, head := range items {
		rest := append(slices.Clone(items[:i]), items[i+1:]...)
		for _, p := range recursive(rest) {
			out = append(out, append([]int{head}, p...))
		}
	}
	return out
}

func TestLexicographicMatchesRecursiveOrder(t *testing.T) {
	for n := 0; n <= 6; n++ {
		want := recursive(Seq(n))
		var got [][]int
		for p := range Lexicographic(n) {
			got = append(got, p)
		}
		if len(got) != len(want) {
			t.Fatalf("n=%d: got %d permutations, want %d", n, len(got), len(want))
		}
		for i := range want {
			if !slices.Equal(got[i], want[i]) {
				t.Fatalf("n=%d: permutation %d = %v, want %v", n, i, got[i], want[i])
			}
		}
	}
}

func TestLexicographicSingle(t *testing.T) {
	var got [][]int
	for p := range Lexicographic(1) {
		got = append(got, p)
	}
	if len(got) != 1 || !slices.Equal(got[0], []int{0}) {
		t.Errorf("Lexicographic(1) = %v, want [[0]]", got)
	}
}

func TestLexicographicEarlyStop(t *testing.T) {
	count := 0
	for range Lexicographic(10) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestLexicographicYieldsIndependentSlices(t *testing.T) {
	var got [][]int
	for p := range Lexicographic(3) {
		got = append(got, p)
	}
	got[0][0] = 99
	if got[1][0] == 99 {
		t.Error("yielded slices should not share storage")
	}
}

func TestNextLast(t *testing.T) {
	p := []int{2, 1, 0}
	if Next(p) {
		t.Error("Next on last permutation should report false")
	}
	if !slices.Equal(p, []int{2, 1, 0}) {
		t.Errorf("last permutation modified: %v", p)
	}
}

func TestApply(t *testing.T) {
	words := []string{"ANNA", "BOB", "CLEO"}
	if got := Apply(words, []int{2, 0, 1}); !slices.Equal(got, []string{"CLEO", "ANNA", "BOB"}) {
		t.Errorf("Apply = %v", got)
	}
}

func TestApplyDuplicatesStayPositional(t *testing.T) {
	words := []string{"SAME", "SAME"}
	var orderings [][]string
	for idx := range Lexicographic(len(words)) {
		orderings = append(orderings, Apply(words, idx))
	}
	if len(orderings) != 2 {
		t.Fatalf("got %d orderings, want 2", len(orderings))
	}
}
