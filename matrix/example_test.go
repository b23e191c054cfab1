package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cyclosub/matrix"
)

// ExampleBinary_Rotate relabels the path 0→1→2 as 1→2→0.
func ExampleBinary_Rotate() {
	a := matrix.MustBinary([][]int{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	fmt.Println(a.Rotate(1))
	// Output:
	// [0 0 0]
	// [0 0 1]
	// [1 0 0]
}
