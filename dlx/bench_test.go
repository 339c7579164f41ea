package dlx_test

import (
	"testing"

	"github.com/katalvlaran/xcover/dlx"
)

// pairedMatrix builds a width-w matrix with two single-column rows per
// column: 2^w exact covers, exercising deep recursion with cheap frames.
func pairedMatrix(w int) [][]bool {
	rows := make([][]bool, 0, 2*w)
	for c := 0; c < w; c++ {
		for copies := 0; copies < 2; copies++ {
			row := make([]bool, w)
			row[c] = true
			rows = append(rows, row)
		}
	}

	return rows
}

// benchmarkSolve rebuilds the network every iteration so each search
// starts from a fresh structure; build cost is the smaller term by far.
func benchmarkSolve(b *testing.B, rows [][]bool, opts ...dlx.Option) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		net, err := dlx.NewNetwork(rows)
		if err != nil {
			b.Fatalf("NewNetwork failed: %v", err)
		}
		if _, err = dlx.Solve(net, opts...); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Knuth runs the canonical seven-column matrix.
func BenchmarkSolve_Knuth(b *testing.B) {
	benchmarkSolve(b, knuthMatrix())
}

// BenchmarkSolve_Paired10 counts the 1024 covers of a 10-column paired
// matrix without retaining them.
func BenchmarkSolve_Paired10(b *testing.B) {
	benchmarkSolve(b, pairedMatrix(10), dlx.WithCountOnly())
}

// BenchmarkSolve_FirstOnly measures time to the first cover of the paired
// matrix, the common "any solution" usage.
func BenchmarkSolve_FirstOnly(b *testing.B) {
	benchmarkSolve(b, pairedMatrix(10), dlx.WithMaxSolutions(1))
}

// BenchmarkCoverUncover measures one cover/uncover round trip on the
// densest column of the Knuth matrix.
func BenchmarkCoverUncover(b *testing.B) {
	net, err := dlx.NewNetwork(knuthMatrix())
	if err != nil {
		b.Fatalf("NewNetwork failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = net.Cover(3)
		_ = net.Uncover(3)
	}
}
