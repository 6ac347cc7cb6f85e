// Package statekey implements the transposition key used to
// deduplicate game states: the current game bitset plus the trailing
// poison-window move history, compared with a length-specialised
// dispatch so the hot comparison path never loops over a slice length
// it doesn't have to.
package statekey

import "github.com/alfille/foxhole-solve/internal/bitset"

// Key is a fixed-length tuple of words: word 0 is always the game
// bitset; words 1..n-1 are the trailing poison-window move patterns,
// most recent first. Length is search_elements in spec terms: 2 in
// standard mode (the game plus the most recent move), poison_plus+1 in
// rigorous mode.
type Key []uint64

// New builds a key from a game bitset and the poison-window move
// history still in effect (most recent first).
func New(game bitset.Board, history []bitset.Board) Key {
	k := make(Key, 1+len(history))
	k[0] = uint64(game)
	for i, h := range history {
		k[i+1] = uint64(h)
	}
	return k
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater
// than b, lexicographically by word. a and b must have equal length;
// dispatch is specialised for lengths 1..5 and falls back to a generic
// loop beyond, per the spec's resolution of the comparator-dispatch
// ambiguity in the source material (no length is ever silently
// truncated to a shorter specialisation).
func Compare(a, b Key) int {
	switch len(a) {
	case 1:
		return cmpWord(a[0], b[0])
	case 2:
		if d := cmpWord(a[0], b[0]); d != 0 {
			return d
		}
		return cmpWord(a[1], b[1])
	case 3:
		if d := cmpWord(a[0], b[0]); d != 0 {
			return d
		}
		if d := cmpWord(a[1], b[1]); d != 0 {
			return d
		}
		return cmpWord(a[2], b[2])
	case 4:
		if d := cmpWord(a[0], b[0]); d != 0 {
			return d
		}
		if d := cmpWord(a[1], b[1]); d != 0 {
			return d
		}
		if d := cmpWord(a[2], b[2]); d != 0 {
			return d
		}
		return cmpWord(a[3], b[3])
	case 5:
		if d := cmpWord(a[0], b[0]); d != 0 {
			return d
		}
		if d := cmpWord(a[1], b[1]); d != 0 {
			return d
		}
		if d := cmpWord(a[2], b[2]); d != 0 {
			return d
		}
		if d := cmpWord(a[3], b[3]); d != 0 {
			return d
		}
		return cmpWord(a[4], b[4])
	default:
		return compareGeneric(a, b)
	}
}

func cmpWord(x, y uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// compareGeneric handles any length, used directly for len >= 6 and
// as the fallback a hand-specialised case would defer to.
func compareGeneric(a, b Key) int {
	for i := range a {
		if d := cmpWord(a[i], b[i]); d != 0 {
			return d
		}
	}
	return 0
}

// Equal reports whether a and b compare equal.
func Equal(a, b Key) bool {
	return Compare(a, b) == 0
}
