package grid

import (
	"encoding/json"
	"testing"
)

func TestNewIsBlank(t *testing.T) {
	g := New(20)
	if g.Size() != 20 {
		t.Fatalf("Size() = %d, want 20", g.Size())
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if g.At(x, y) != Blank {
				t.Fatalf("cell (%d,%d) = %q, want blank", x, y, g.At(x, y))
			}
		}
	}
	if n := filled(g); n != 0 {
		t.Errorf("filled = %d, want 0", n)
	}
}

func TestNewNegativeSize(t *testing.T) {
	g := New(-3)
	if g.Size() != 0 {
		t.Errorf("Size() = %d, want 0", g.Size())
	}
	if g.CanPlace([]rune("A"), 0, 0, Horizontal) {
		t.Error("empty grid should reject every placement")
	}
}

// catGrid returns a 20x20 grid holding CAT horizontally at (8,10).
func catGrid() *Grid {
	g := New(20)
	g.Place([]rune("CAT"), 8, 10, Horizontal)
	return g
}

func TestCanPlace(t *testing.T) {
	tests := []struct {
		name string
		word string
		x, y int
		dir  Direction
		want bool
	}{
		{"cross at first letter", "CAR", 8, 10, Vertical, true},
		{"cross at middle letter", "ACE", 8, 9, Vertical, true},
		{"cross at last letter of placed word", "TO", 10, 10, Vertical, true},
		{"letter conflict", "DOG", 8, 10, Vertical, false},
		{"runs off right edge", "CAT", 18, 0, Horizontal, false},
		{"runs off bottom edge", "CAT", 0, 18, Vertical, false},
		{"negative origin", "CAT", -1, 0, Horizontal, false},
		{"parallel below", "DOG", 8, 11, Horizontal, false},
		{"parallel above shifted", "DOG", 10, 9, Horizontal, false},
		{"vertical beside first letter", "DOG", 7, 9, Vertical, false},
		{"touches end of placed word", "DOG", 11, 10, Horizontal, false},
		{"touches start of placed word", "DOG", 5, 10, Horizontal, false},
		{"collinear with gap", "DOG", 4, 10, Horizontal, true},
		{"vertical end touches placed word", "DO", 9, 8, Vertical, false},
		{"extends placed word along its line", "CATS", 8, 10, Horizontal, true},
		{"free space far away", "DOG", 0, 0, Horizontal, true},
		{"flush with corner", "AB", 0, 18, Vertical, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := catGrid()
			if got := g.CanPlace([]rune(tt.word), tt.x, tt.y, tt.dir); got != tt.want {
				t.Errorf("CanPlace(%q, %d, %d, %s) = %v, want %v", tt.word, tt.x, tt.y, tt.dir, got, tt.want)
			}
		})
	}
}

func TestCanPlaceDoesNotMutate(t *testing.T) {
	g := catGrid()
	before := g.String()
	g.CanPlace([]rune("CAR"), 8, 10, Vertical)
	if g.String() != before {
		t.Error("CanPlace modified the grid")
	}
}

func TestCanPlaceIntersectionSkipsNeighbourCheck(t *testing.T) {
	// CAT at (8,10) H, CAR down from C, then RAT across the R of CAR.
	// The crossing cell's vertical neighbour is occupied by CAR itself,
	// which must not block the crossing.
	g := catGrid()
	g.Place([]rune("CAR"), 8, 10, Vertical)
	if !g.CanPlace([]rune("RAT"), 8, 12, Horizontal) {
		t.Fatal("expected RAT to cross CAR at R")
	}
}

func TestPlaceAndRead(t *testing.T) {
	g := New(10)
	g.Place([]rune("HELLO"), 2, 3, Vertical)

	if got := g.Read(2, 3, 5, Vertical); got != "HELLO" {
		t.Errorf("Read = %q, want HELLO", got)
	}
	if got := filled(g); got != 5 {
		t.Errorf("filled = %d, want 5", got)
	}
	if got := g.Read(2, 8, 5, Vertical); got != "  " {
		t.Errorf("Read past edge = %q, want two blanks", got)
	}
}

func TestPlaceRunes(t *testing.T) {
	g := New(5)
	g.Place([]rune("ÉLÉA"), 0, 0, Horizontal)
	if got := g.Read(0, 0, 4, Horizontal); got != "ÉLÉA" {
		t.Errorf("Read = %q, want ÉLÉA", got)
	}
	if g.At(3, 0) != 'A' {
		t.Errorf("multi-byte letters should occupy one cell each")
	}
}

func TestRowsRoundTrip(t *testing.T) {
	g := catGrid()
	g.Place([]rune("CAR"), 8, 10, Vertical)

	rows := g.Rows()
	if len(rows) != 20 || len(rows[0]) != 20 {
		t.Fatalf("Rows() shape = %dx%d, want 20x20", len(rows), len(rows[0]))
	}
	if rows[10][9] != "A" || rows[12][8] != "R" || rows[0][0] != " " {
		t.Errorf("unexpected cells: %q %q %q", rows[10][9], rows[12][8], rows[0][0])
	}

	back, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if !back.Equal(g) {
		t.Error("FromRows(Rows()) should reproduce the grid")
	}
}

func TestFromRowsRejectsRagged(t *testing.T) {
	if _, err := FromRows([][]string{{"A", "B"}, {"C"}}); err == nil {
		t.Error("expected error for ragged rows")
	}
}

// filled counts non-blank cells.
func filled(g *Grid) int {
	n := 0
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.At(x, y) != Blank {
				n++
			}
		}
	}
	return n
}

func TestString(t *testing.T) {
	g := New(3)
	g.Place([]rune("AB"), 0, 1, Horizontal)
	want := "   \nAB \n   "
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDirection(t *testing.T) {
	if dx, dy := Horizontal.Delta(); dx != 1 || dy != 0 {
		t.Errorf("Horizontal.Delta() = (%d,%d)", dx, dy)
	}
	if dx, dy := Vertical.Delta(); dx != 0 || dy != 1 {
		t.Errorf("Vertical.Delta() = (%d,%d)", dx, dy)
	}
	if Horizontal.Perpendicular() != Vertical || Vertical.Perpendicular() != Horizontal {
		t.Error("Perpendicular should swap directions")
	}
}

func TestPlacementJSON(t *testing.T) {
	p := Placement{Word: "CAR", X: 8, Y: 10, Direction: Vertical}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"word":"CAR","x":8,"y":10,"dir":"V"}` {
		t.Errorf("json = %s", data)
	}

	var back Placement
	if err := json.Unmarshal([]byte(`{"word":"CAR","x":8,"y":10,"dir":"vertical"}`), &back); err != nil {
		t.Fatal(err)
	}
	if back != p {
		t.Errorf("decoded %+v, want %+v", back, p)
	}

	if err := json.Unmarshal([]byte(`{"dir":"diagonal"}`), &back); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestPlacementCell(t *testing.T) {
	p := Placement{Word: "CAR", X: 8, Y: 10, Direction: Vertical}
	if x, y := p.Cell(2); x != 8 || y != 12 {
		t.Errorf("Cell(2) = (%d,%d), want (8,12)", x, y)
	}
}

func TestBounds(t *testing.T) {
	g := New(20)
	if _, _, _, _, ok := g.Bounds(); ok {
		t.Error("empty grid should have no bounds")
	}

	g.Place([]rune("CAT"), 8, 10, Horizontal)
	g.Place([]rune("CAR"), 8, 10, Vertical)
	minX, minY, maxX, maxY, ok := g.Bounds()
	if !ok || minX != 8 || minY != 10 || maxX != 10 || maxY != 12 {
		t.Errorf("Bounds() = (%d,%d)-(%d,%d) %v, want (8,10)-(10,12)", minX, minY, maxX, maxY, ok)
	}
}
