package statekey

import (
	"math/rand"
	"testing"

	"github.com/alfille/foxhole-solve/internal/bitset"
)

func TestCompareOrdering(t *testing.T) {
	a := New(bitset.Board(5), []bitset.Board{1, 2})
	b := New(bitset.Board(5), []bitset.Board{1, 3})
	if Compare(a, b) >= 0 {
		t.Errorf("expected a < b")
	}
	if Compare(b, a) <= 0 {
		t.Errorf("expected b > a")
	}
	if Compare(a, a) != 0 {
		t.Errorf("expected a == a")
	}
}

func TestCompareAllSpecialisedLengths(t *testing.T) {
	for length := 1; length <= 8; length++ {
		a := make(Key, length)
		b := make(Key, length)
		for i := range a {
			a[i] = uint64(i)
			b[i] = uint64(i)
		}
		if Compare(a, b) != 0 {
			t.Errorf("length %d: expected equal keys to compare 0", length)
		}
		b[length-1]++
		if Compare(a, b) >= 0 {
			t.Errorf("length %d: expected a < b after bumping last word", length)
		}
	}
}

func TestCompareMatchesGenericReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for length := 1; length <= 7; length++ {
		for trial := 0; trial < 50; trial++ {
			a := make(Key, length)
			b := make(Key, length)
			for i := range a {
				a[i] = uint64(rng.Intn(3))
				b[i] = uint64(rng.Intn(3))
			}
			got := Compare(a, b)
			want := compareGeneric(a, b)
			if got != want {
				t.Fatalf("length %d: Compare=%d generic=%d for a=%v b=%v", length, got, want, a, b)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	a := New(bitset.Board(9), []bitset.Board{4})
	b := New(bitset.Board(9), []bitset.Board{4})
	if !Equal(a, b) {
		t.Errorf("expected equal keys")
	}
}
