package layout

import (
	"encoding/json"
	"errors"
	"fmt"

	cerrors "github.com/matzehuels/crossnames/pkg/errors"
	"github.com/matzehuels/crossnames/pkg/grid"
)

// DefaultGridSize is the side length of the square grid layouts are built on.
const DefaultGridSize = 20

// ErrUnplaceable is returned by [Assembler.Try] when an ordering reaches a
// word that cannot cross any placed word. It is a normal outcome of the
// search, never surfaced by [Generate].
var ErrUnplaceable = errors.New("word cannot be placed")

// =============================================================================
// Layout
// =============================================================================

// Layout is the final grid of one ordering that placed every word.
// It must not be modified once produced.
type Layout struct {
	Ordering   []string
	Placements []grid.Placement
	Grid       *grid.Grid
}

// Rows returns the grid as a matrix of one-character strings, blanks as " ".
func (l Layout) Rows() [][]string {
	return l.Grid.Rows()
}

// MarshalJSON encodes the layout as its bare cell matrix, the shape HTTP
// clients receive.
func (l Layout) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Rows())
}

// UnmarshalJSON decodes a cell matrix. Ordering and placements are not part
// of the wire form and stay empty.
func (l *Layout) UnmarshalJSON(data []byte) error {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	g, err := grid.FromRows(rows)
	if err != nil {
		return err
	}
	*l = Layout{Grid: g}
	return nil
}

// =============================================================================
// Assembler
// =============================================================================

// Assembler builds the layout for a single ordering. It holds no state
// between calls and is safe for concurrent use.
type Assembler struct {
	size int
}

// NewAssembler returns an assembler for size×size grids.
func NewAssembler(size int) *Assembler {
	return &Assembler{size: size}
}

// Size returns the grid size the assembler builds on.
func (a *Assembler) Size() int { return a.size }

// placed pairs a placement with the runes of its word.
type placed struct {
	grid.Placement
	runes []rune
}

// Try places the words of ordering in sequence and returns the finished
// layout, or an error wrapping [ErrUnplaceable] naming the first word that
// found no legal crossing. A word longer than the grid yields a
// WORD_TOO_LONG coded error.
func (a *Assembler) Try(ordering []string) (Layout, error) {
	if len(ordering) == 0 {
		return Layout{}, cerrors.New(cerrors.ErrCodeInvalidInput, "ordering is empty")
	}

	words := make([][]rune, len(ordering))
	for i, w := range ordering {
		words[i] = []rune(w)
		if len(words[i]) > a.size {
			return Layout{}, cerrors.New(cerrors.ErrCodeWordTooLong,
				"name %q has %d letters, the grid holds %d", w, len(words[i]), a.size)
		}
	}

	g := grid.New(a.size)
	first := placed{
		Placement: grid.Placement{
			Word:      ordering[0],
			X:         (a.size - len(words[0])) / 2,
			Y:         a.size / 2,
			Direction: grid.Horizontal,
		},
		runes: words[0],
	}
	g.Place(first.runes, first.X, first.Y, first.Direction)
	done := []placed{first}

	for wi := 1; wi < len(words); wi++ {
		p, ok := fit(g, done, words[wi])
		if !ok {
			return Layout{}, fmt.Errorf("%w: %s", ErrUnplaceable, ordering[wi])
		}
		p.Word = ordering[wi]
		g.Place(p.runes, p.X, p.Y, p.Direction)
		done = append(done, p)
	}

	placements := make([]grid.Placement, len(done))
	for i, p := range done {
		placements[i] = p.Placement
	}
	return Layout{
		Ordering:   append([]string(nil), ordering...),
		Placements: placements,
		Grid:       g,
	}, nil
}

// fit returns the first legal crossing of w against the placed words.
func fit(g *grid.Grid, done []placed, w []rune) (placed, bool) {
	for _, p := range done {
		for i, r := range w {
			for j, pr := range p.runes {
				if r != pr {
					continue
				}
				x, y := p.X+j, p.Y-i
				if p.Direction == grid.Vertical {
					x, y = p.X-i, p.Y+j
				}
				dir := p.Direction.Perpendicular()
				if g.CanPlace(w, x, y, dir) {
					return placed{
						Placement: grid.Placement{X: x, Y: y, Direction: dir},
						runes:     w,
					}, true
				}
			}
		}
	}
	return placed{}, false
}
