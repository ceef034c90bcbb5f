// Package grid provides the fixed-size letter surface that crossword layouts
// are assembled on, together with the placement rules that keep words
// visually separated.
//
// # Overview
//
// A [Grid] is a square matrix of cells. Every cell is either [Blank] or holds
// a single letter. The size is chosen once at construction and never changes;
// layouts never grow the grid to fit long words.
//
// Words are written along a [Direction]:
//
//   - [Horizontal]: x increases, y stays fixed
//   - [Vertical]: y increases, x stays fixed
//
// # Placement Rules
//
// [Grid.CanPlace] decides whether a word may be written at an origin. A
// placement is legal when:
//
//   - every letter lands inside the grid
//   - every occupied cell it crosses already holds the same letter
//   - no blank cell it fills has an occupied neighbour on either side
//     perpendicular to the word (no parallel touching)
//   - the cells just before the first letter and just after the last letter
//     are blank or off the grid (no end-to-end touching)
//
// Crossing at a shared letter is therefore the only way two words can touch.
//
// [Grid.Place] writes a word without checking anything; callers validate first.
//
//	g := grid.New(20)
//	word := []rune("CAT")
//	if g.CanPlace(word, 8, 10, grid.Horizontal) {
//	    g.Place(word, 8, 10, grid.Horizontal)
//	}
//
// # Concurrency
//
// A Grid is not safe for concurrent mutation. Layout search gives every
// ordering attempt its own grid, so no locking is needed.
package grid
