// Package bitset implements the BitBoard value type: a set of hole
// indices 0..63 packed into a single machine word.
package bitset

import "math/bits"

// Board is a set of hole indices 0..63. Only the low Holes bits of any
// value produced by this package's constructors are ever set, but the
// type itself places no such restriction on arbitrary values.
type Board uint64

// None and All are the two board-wide constants every caller needs.
// All must be built per-configuration via AllHoles since the number of
// holes in play varies; None is universal.
const None Board = 0

// AllHoles returns a Board with the low n bits set (n in 0..64).
func AllHoles(n int) Board {
	if n <= 0 {
		return None
	}
	if n >= 64 {
		return Board(^uint64(0))
	}
	return Board(uint64(1)<<uint(n) - 1)
}

// Set returns b with hole h set.
func (b Board) Set(h int) Board {
	return b | (1 << uint(h))
}

// Clear returns b with hole h cleared.
func (b Board) Clear(h int) Board {
	return b &^ (1 << uint(h))
}

// Test reports whether hole h is a member of b.
func (b Board) Test(h int) bool {
	return b&(1<<uint(h)) != 0
}

// Union returns the set union of b and o.
func (b Board) Union(o Board) Board {
	return b | o
}

// Intersect returns the set intersection of b and o.
func (b Board) Intersect(o Board) Board {
	return b & o
}

// Diff returns b with every member of o removed: b ∩ ¬o.
func (b Board) Diff(o Board) Board {
	return b &^ o
}

// PopCount returns the number of holes set in b.
func (b Board) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Empty reports whether b has no holes set.
func (b Board) Empty() bool {
	return b == 0
}

// LSB returns the lowest-indexed set hole, or -1 if b is empty.
func (b Board) LSB() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(b))
}

// PopLSB clears and returns the lowest-indexed set hole, or -1 if b is
// already empty.
func (b *Board) PopLSB() int {
	h := b.LSB()
	if h < 0 {
		return -1
	}
	*b &= *b - 1
	return h
}

// ForEach calls f once for every hole set in b, ascending.
func (b Board) ForEach(f func(hole int)) {
	for b != 0 {
		h := b.PopLSB()
		f(h)
	}
}

// Holes returns the ascending list of holes set in b.
func (b Board) Holes() []int {
	holes := make([]int, 0, b.PopCount())
	b.ForEach(func(h int) { holes = append(holes, h) })
	return holes
}
