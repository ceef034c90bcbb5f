package grid

// CanPlace reports whether word may be written starting at (x, y) along dir.
//
// Letters may only land on blank cells or on cells already holding the same
// letter. A blank cell being filled must have blank neighbours on both sides
// perpendicular to dir, and the cells immediately before the first and after
// the last letter must be blank or outside the grid.
func (g *Grid) CanPlace(word []rune, x, y int, dir Direction) bool {
	dx, dy := dir.Delta()
	// Perpendicular offset is (dy, dx): above/below for H, left/right for V.
	for i, r := range word {
		nx, ny := x+i*dx, y+i*dy
		if !g.In(nx, ny) {
			return false
		}
		cell := g.At(nx, ny)
		if cell != Blank && cell != r {
			return false
		}
		if cell == Blank && (g.occupied(nx-dy, ny-dx) || g.occupied(nx+dy, ny+dx)) {
			return false
		}
	}

	n := len(word)
	if g.occupied(x-dx, y-dy) || g.occupied(x+n*dx, y+n*dy) {
		return false
	}
	return true
}

// Place writes word starting at (x, y) along dir. It does not validate;
// every letter must fall inside the grid.
func (g *Grid) Place(word []rune, x, y int, dir Direction) {
	dx, dy := dir.Delta()
	for i, r := range word {
		g.cells[(y+i*dy)*g.size+x+i*dx] = r
	}
}

// Read returns the n letters starting at (x, y) along dir, stopping early at
// the grid edge. It is the inverse of [Grid.Place] for a recorded [Placement].
func (g *Grid) Read(x, y, n int, dir Direction) string {
	dx, dy := dir.Delta()
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		nx, ny := x+i*dx, y+i*dy
		if !g.In(nx, ny) {
			break
		}
		out = append(out, g.At(nx, ny))
	}
	return string(out)
}
