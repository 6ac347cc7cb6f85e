// Package catalogue enumerates the fixed list of visit patterns a
// solver run chooses from each day: every way to pick Visits holes out
// of Holes, plus a leading "no move" sentinel.
package catalogue

import (
	"fmt"

	"github.com/alfille/foxhole-solve/internal/bitset"
	"github.com/alfille/foxhole-solve/internal/store"
)

// Catalogue is the ordered, immutable list of visit patterns P[0..M].
// P[0] is the sentinel bitset.None; P[1..M] enumerate every distinct
// Visits-of-Holes pattern in ascending lexicographic hole order.
type Catalogue struct {
	patterns []bitset.Board
}

// Binomial computes C(n, k), choosing the shorter side to sum over, as
// in the reference implementation.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	top, bot := 1, 1
	for i := k; i > 0; i-- {
		top *= n + 1 - i
		bot *= i
	}
	return top / bot
}

// Size returns the number of entries New(holes, visits) would produce:
// C(holes, visits) + 1.
func Size(holes, visits int) int {
	return Binomial(holes, visits) + 1
}

// CheckSize reports store.ErrArenaExhausted if New(holes, visits) would
// produce more than limit entries, without ever forming the full
// unreduced numerator Binomial does internally -- that product
// overflows int well before the final quotient would (C(64,32)'s
// numerator alone is on the order of 1e54). It instead accumulates
// C(holes-k+i, i) incrementally for i = 1..k, which is an integer at
// every step and equals C(holes, k) at the last, and bails out the moment the running total passes limit, long
// before the multiply-then-divide could overflow.
func CheckSize(holes, visits, limit int) error {
	if visits < 0 || visits > holes {
		return nil
	}
	k := visits
	if k > holes-k {
		k = holes - k
	}
	count := 1
	for i := 1; i <= k; i++ {
		count = count * (holes - k + i) / i
		if count > limit {
			return fmt.Errorf("catalogue: C(%d,%d)+1 exceeds the %d-entry arena: %w", holes, visits, limit, store.ErrArenaExhausted)
		}
	}
	if count+1 > limit {
		return fmt.Errorf("catalogue: C(%d,%d)+1 exceeds the %d-entry arena: %w", holes, visits, limit, store.ErrArenaExhausted)
	}
	return nil
}

// New builds the catalogue for the given board size and visits-per-day
// count. Panics if visits is outside 1..holes; callers are expected to
// have validated Config before reaching here.
func New(holes, visits int) *Catalogue {
	if visits < 1 || visits > holes {
		panic("catalogue: visits out of range")
	}
	c := &Catalogue{patterns: make([]bitset.Board, 0, Size(holes, visits)+1)}
	c.patterns = append(c.patterns, bitset.None)
	c.recurse(holes, visits, 0, bitset.None)
	return c
}

func (c *Catalogue) recurse(holes, left, startHole int, pattern bitset.Board) {
	if left == 0 {
		c.patterns = append(c.patterns, pattern)
		return
	}
	for h := startHole; h <= holes-left; h++ {
		c.recurse(holes, left-1, h+1, pattern.Set(h))
	}
}

// Len returns the total number of entries, including the sentinel.
func (c *Catalogue) Len() int {
	return len(c.patterns)
}

// Get returns the pattern at index i. Index 0 is always bitset.None.
func (c *Catalogue) Get(i int) bitset.Board {
	return c.patterns[i]
}
