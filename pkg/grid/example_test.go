package grid_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/crossnames/pkg/grid"
)

func ExampleGrid_CanPlace() {
	g := grid.New(5)
	g.Place([]rune("CAT"), 1, 2, grid.Horizontal)

	// CAR may hang down from the shared C.
	fmt.Println(g.CanPlace([]rune("CAR"), 1, 2, grid.Vertical))
	// DOG may not run directly underneath CAT.
	fmt.Println(g.CanPlace([]rune("DOG"), 1, 3, grid.Horizontal))
	// Output:
	// true
	// false
}

func ExampleGrid_Place() {
	g := grid.New(5)
	g.Place([]rune("CAT"), 1, 2, grid.Horizontal)
	g.Place([]rune("CAR"), 1, 2, grid.Vertical)

	fmt.Println(strings.ReplaceAll(g.String(), " ", "."))
	// Output:
	// .....
	// .....
	// .CAT.
	// .A...
	// .R...
}
