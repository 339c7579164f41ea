package dlx_test

import (
	"fmt"

	"github.com/katalvlaran/xcover/dlx"
)

// ExampleSolve solves the seven-column matrix from Knuth's Dancing Links
// paper, which admits exactly one exact cover.
func ExampleSolve() {
	rows := [][]bool{
		{false, false, true, false, true, true, false},
		{true, false, false, true, false, false, true},
		{false, true, true, false, false, true, false},
		{true, false, false, true, false, false, false},
		{false, true, false, false, false, false, true},
		{false, false, false, true, true, false, true},
	}
	net, err := dlx.NewNetwork(rows, dlx.WithColumnNames([]string{"A", "B", "C", "D", "E", "F", "G"}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := dlx.Solve(net)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("solutions=%d\n", res.Count)
	fmt.Print(dlx.FormatSolution(res.Solutions[0]))
	// Output:
	// solutions=1
	// A D
	// C E F
	// B G
}

// ExampleSolve_countOnly counts covers without materializing them — the
// fast path for "how many" questions.
func ExampleSolve_countOnly() {
	net, err := dlx.NewNetworkFromSets(3, [][]int{
		{0, 2}, // rows as sets of column indices
		{1},
		{0, 1, 2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := dlx.Solve(net, dlx.WithCountOnly())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("covers=%d retained=%d\n", res.Count, len(res.Solutions))
	// Output:
	// covers=2 retained=0
}

// ExampleSolve_onSolution streams solutions through a visitor and stops
// after the first one.
func ExampleSolve_onSolution() {
	net, err := dlx.NewNetworkFromSets(3, [][]int{
		{0, 2},
		{1},
		{0, 1, 2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_, err = dlx.Solve(net, dlx.WithOnSolution(func(sol dlx.Solution) error {
		fmt.Printf("first cover uses %d rows\n", len(sol))

		return dlx.ErrStopSearch
	}))
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// first cover uses 2 rows
}
