package search

import (
	"testing"

	"github.com/alfille/foxhole-solve/internal/bitset"
)

func TestReservoirRootSurvivesEvictionUnderTightCapacity(t *testing.T) {
	res := NewReservoir(1)
	rootID := res.RecordRoot(bitset.AllHoles(5))

	parent := rootID
	for day := 1; day <= 8; day++ {
		parent = res.Observe(day, bitset.None, parent)
	}

	g, ok := res.Lookup(rootID)
	if !ok {
		t.Fatalf("root generation %d was evicted", rootID)
	}
	if g.Day != 0 || g.Refer != RootRefer {
		t.Errorf("root generation = %+v, want Day=0 Refer=RootRefer", g)
	}

	chain := res.Walk(parent)
	if len(chain) == 0 || chain[0].Day != 0 {
		t.Fatalf("expected a walk back to day 0, got %+v", chain)
	}
	last := chain[len(chain)-1]
	if last.Day != 8 {
		t.Errorf("expected the chain to end at day 8, got %+v", last)
	}
	if len(chain) > 1 && chain[1].Day-chain[0].Day <= 1 {
		t.Errorf("expected eviction to leave a real gap after the root, got %+v", chain)
	}
}

func TestReservoirResetClearsTheRoot(t *testing.T) {
	res := NewReservoir(4)
	res.RecordRoot(bitset.AllHoles(3))
	res.Reset()

	if _, ok := res.Lookup(0); ok {
		t.Errorf("expected Lookup(0) to fail after Reset, root should be cleared")
	}
}
