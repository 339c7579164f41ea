// Package xcover is a compact toolkit for the exact cover problem,
// built around Donald Knuth's dancing links technique.
//
// 🚀 What is xcover?
//
//	A small, dependency-free library that brings together:
//		• dlx: the toroidal linked network + Algorithm X backtracking search
//		• Pluggable column heuristics, solution visitors, cancellation
//		• Secondary "at most once" columns for relaxed constraints
//		• Ready-made reductions: sudoku, n-queens, Langford pairings
//
// ✨ Why choose xcover?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every search restores the network exactly
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – plug your own heuristic or stream solutions via hooks
//
// Under the hood, everything is organized under four subpackages:
//
//	dlx/      — Network construction, cover/uncover mechanics, Solve
//	sudoku/   — 9×9 sudoku as a 324-column exact cover
//	nqueens/  — n-queens with secondary diagonal columns
//	langford/ — Langford pairings
//
// Quick ASCII example — the matrix from Knuth's paper:
//
//	    A B C D E F G
//	    0 0 1 0 1 1 0
//	    1 0 0 1 0 0 1      exact cover:
//	    0 1 1 0 0 1 0        {A D} {C E F} {B G}
//	    1 0 0 1 0 0 0
//	    0 1 0 0 0 0 1
//	    0 0 0 1 1 0 1
//
// Dive into the package docs for full examples and the cover/uncover
// invariants that make the search reversible.
//
//	go get github.com/katalvlaran/xcover/dlx
package xcover
