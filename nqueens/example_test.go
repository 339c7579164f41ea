package nqueens_test

import (
	"fmt"

	"github.com/katalvlaran/xcover/nqueens"
)

// ExampleCount prints the number of solutions for small boards.
func ExampleCount() {
	for n := 4; n <= 8; n++ {
		count, err := nqueens.Count(n)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("n=%d solutions=%d\n", n, count)
	}
	// Output:
	// n=4 solutions=2
	// n=5 solutions=10
	// n=6 solutions=4
	// n=7 solutions=40
	// n=8 solutions=92
}
