// Package langford enumerates Langford pairings: arrangements of the
// multiset 1,1,2,2,...,n,n in which the two copies of each k sit exactly
// k apart.
//
// What:
//
//   - Pairings(n): every valid arrangement as a slice of length 2n.
//   - Count(n): the number of arrangements up to reversal.
//
// Why:
//
//	A pairing is an exact cover over 3n columns: n "value placed" columns
//	plus 2n position columns. A candidate (k, j) places value k at
//	positions j and j+k+1, covering three columns; a full cover fills
//	every position with every value placed once.
//
// Pairings exist only for n ≡ 0 or 3 (mod 4); other sizes yield zero
// results, which is reported as an empty outcome rather than an error.
//
// Errors: ErrBadSize for n < 1.
package langford
