package grid

import (
	"fmt"
	"strings"
)

// Blank marks a cell that holds no letter.
const Blank = ' '

// =============================================================================
// Direction
// =============================================================================

// Direction is the axis a word is written along.
type Direction uint8

const (
	// Horizontal advances along increasing x at fixed y.
	Horizontal Direction = iota
	// Vertical advances along increasing y at fixed x.
	Vertical
)

// Delta returns the step taken between consecutive letters.
func (d Direction) Delta() (dx, dy int) {
	if d == Vertical {
		return 0, 1
	}
	return 1, 0
}

// Perpendicular returns the other direction.
func (d Direction) Perpendicular() Direction {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// String returns "H" or "V".
func (d Direction) String() string {
	if d == Vertical {
		return "V"
	}
	return "H"
}

// MarshalText encodes the direction as "H" or "V".
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts "H"/"V" as well as the long names.
func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "H", "HORIZONTAL":
		*d = Horizontal
	case "V", "VERTICAL":
		*d = Vertical
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// =============================================================================
// Placement
// =============================================================================

// Placement records where and how a word was written into a grid.
type Placement struct {
	Word      string    `json:"word" yaml:"word"`
	X         int       `json:"x" yaml:"x"`
	Y         int       `json:"y" yaml:"y"`
	Direction Direction `json:"dir" yaml:"dir"`
}

// Cell returns the coordinate of the i-th letter of the placement.
func (p Placement) Cell(i int) (x, y int) {
	dx, dy := p.Direction.Delta()
	return p.X + i*dx, p.Y + i*dy
}

// =============================================================================
// Grid
// =============================================================================

// Grid is a square letter surface. Cells are stored row-major.
type Grid struct {
	size  int
	cells []rune
}

// New returns a size×size grid with every cell blank.
// A non-positive size yields an empty grid that rejects every placement.
func New(size int) *Grid {
	if size < 0 {
		size = 0
	}
	cells := make([]rune, size*size)
	for i := range cells {
		cells[i] = Blank
	}
	return &Grid{size: size, cells: cells}
}

// Size returns the grid dimension.
func (g *Grid) Size() int { return g.size }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// At returns the content of cell (x, y). The coordinate must be in range.
func (g *Grid) At(x, y int) rune {
	return g.cells[y*g.size+x]
}

// occupied reports whether (x, y) is inside the grid and holds a letter.
func (g *Grid) occupied(x, y int) bool {
	return g.In(x, y) && g.At(x, y) != Blank
}

// Rows returns the grid as a matrix of one-character strings indexed
// [y][x]. Blank cells are " ".
func (g *Grid) Rows() [][]string {
	rows := make([][]string, g.size)
	for y := range rows {
		row := make([]string, g.size)
		for x := range row {
			row[x] = string(g.At(x, y))
		}
		rows[y] = row
	}
	return rows
}

// FromRows rebuilds a grid from the matrix produced by [Grid.Rows].
// Empty strings are read as blank; only the first rune of a cell is kept.
func FromRows(rows [][]string) (*Grid, error) {
	g := New(len(rows))
	for y, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), len(rows))
		}
		for x, cell := range row {
			r := []rune(cell)
			if len(r) > 0 {
				g.cells[y*g.size+x] = r[0]
			}
		}
	}
	return g, nil
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for y := 0; y < g.size; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(g.cells[y*g.size : (y+1)*g.size]))
	}
	return b.String()
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Bounds returns the smallest rectangle holding every filled cell as
// inclusive corners. ok is false for an empty grid.
func (g *Grid) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	minX, minY = g.size, g.size
	maxX, maxY = -1, -1
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if !g.occupied(x, y) {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX, maxY, true
}
