package perm_test

import (
	"fmt"

	"github.com/matzehuels/crossnames/pkg/perm"
)

func ExampleLexicographic() {
	for p := range perm.Lexicographic(3) {
		fmt.Println(p)
	}
	// Output:
	// [0 1 2]
	// [0 2 1]
	// [1 0 2]
	// [1 2 0]
	// [2 0 1]
	// [2 1 0]
}

func ExampleApply() {
	names := []string{"ANNA", "BOB", "CLEO"}
	for idx := range perm.Lexicographic(len(names)) {
		fmt.Println(perm.Apply(names, idx))
	}
	// Output:
	// [ANNA BOB CLEO]
	// [ANNA CLEO BOB]
	// [BOB ANNA CLEO]
	// [BOB CLEO ANNA]
	// [CLEO ANNA BOB]
	// [CLEO BOB ANNA]
}

func ExampleFactorial() {
	fmt.Println("4! =", perm.Factorial(4))
	fmt.Println("5! =", perm.Factorial(5))
	// Output:
	// 4! = 24
	// 5! = 120
}
