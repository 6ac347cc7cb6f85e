package search

import (
	"testing"

	"github.com/alfille/foxhole-solve/internal/applier"
	"github.com/alfille/foxhole-solve/internal/bitset"
	"github.com/alfille/foxhole-solve/internal/catalogue"
	"github.com/alfille/foxhole-solve/internal/store"
	"github.com/alfille/foxhole-solve/internal/topology"
)

// checkSchedule re-derives every games[d] from games[d-1] via the Move
// Applier and the same trailing-window rule recoverMoves uses, failing
// the test the moment a day fails to reproduce -- the invariant Fixup
// itself is responsible for guaranteeing.
func checkSchedule(t *testing.T, j applier.Jumper, s Schedule, poisonPlus int) {
	t.Helper()
	if s.Games[0] != bitset.AllHoles(s.Games[0].PopCount()) {
		t.Fatalf("games[0] is not a full board: %v", s.Games[0])
	}
	if !s.Games[s.VictoryDay].Empty() {
		t.Fatalf("games[%d] is not empty: %v", s.VictoryDay, s.Games[s.VictoryDay])
	}
	if s.Moves[0] != bitset.None {
		t.Errorf("moves[0] should be the no-move sentinel, got %v", s.Moves[0])
	}
	for d := 1; d <= s.VictoryDay; d++ {
		window := trailingWindow(s.Moves, d-1, poisonPlus)
		got := applier.Apply(j, s.Games[d-1], s.Moves[d], window)
		if got != s.Games[d] {
			t.Fatalf("day %d: Move Applier on games[%d]=%v with move %v yields %v, want games[%d]=%v",
				d, d-1, s.Games[d-1], s.Moves[d], got, d, s.Games[d])
		}
	}
}

func TestFixupFillsGameGapsAndRecoversMoves(t *testing.T) {
	topo := topology.New(topology.Params{
		Geometry:   topology.Circle,
		Connection: topology.Rectangular,
		XLength:    5,
		YLength:    1,
	})
	cat := catalogue.New(topo.Holes(), 1)
	st := store.New(0)
	// A tight capacity forces the reservoir to evict and double its
	// stride, guaranteeing at least one real game gap for this test to
	// exercise.
	res := NewReservoir(2)
	core := NewCore(topo, cat, st, res, 0, false, 10)
	b := NewBisector(core, topo.Holes(), 1, 10)

	solved, days, err := b.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !solved {
		t.Fatalf("expected the 5-hole circle to be solvable")
	}

	chain := b.BestChain()
	if len(chain) == 0 {
		t.Fatalf("expected a non-empty winning chain")
	}
	if chain[0].Day != 0 || chain[len(chain)-1].Day != days {
		t.Fatalf("chain does not span day 0 to the victory day %d: %+v", days, chain)
	}

	schedule, err := Fixup(core, chain, 1)
	if err != nil {
		t.Fatalf("Fixup failed: %v", err)
	}
	if schedule.VictoryDay != days {
		t.Errorf("expected schedule victory day %d, got %d", days, schedule.VictoryDay)
	}
	for d := 1; d <= schedule.VictoryDay; d++ {
		if schedule.Moves[d].PopCount() != 1 {
			t.Errorf("day %d: expected a single-hole visit, got %v", d, schedule.Moves[d])
		}
	}
	checkSchedule(t, topo, schedule, 1)
}

// With poison=2 the triangle graph wins in exactly two days (verified
// in core_test.go). This chain never gaps (only two transitions), so
// it exercises the poison-window continuity in recoverMoves rather
// than fillGameGaps.
func TestFixupRecoversMovesUnderPoisonWindow(t *testing.T) {
	cat := catalogue.New(3, 1)
	st := store.New(0)
	res := NewReservoir(0)
	core := NewCore(triangleJumper{}, cat, st, res, 2, false, 2)
	b := NewBisector(core, 3, 1, 2)

	solved, days, err := b.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !solved || days != 2 {
		t.Fatalf("expected a solved schedule of 2 days, got solved=%v days=%d", solved, days)
	}

	chain := b.BestChain()
	schedule, err := Fixup(core, chain, core.poisonPlus())
	if err != nil {
		t.Fatalf("Fixup failed: %v", err)
	}
	checkSchedule(t, triangleJumper{}, schedule, core.poisonPlus())
}

func TestFixupRejectsChainNotStartingAtDayZero(t *testing.T) {
	cat := catalogue.New(3, 1)
	st := store.New(0)
	res := NewReservoir(0)
	core := NewCore(triangleJumper{}, cat, st, res, 0, false, 4)

	badChain := []Generation{
		{ID: 0, Day: 1, Game: bitset.AllHoles(3), Refer: RootRefer},
	}
	if _, err := Fixup(core, badChain, 1); err == nil {
		t.Errorf("expected an error for a chain not starting at day 0")
	}
}

func TestFixupRejectsNonMonotonicChain(t *testing.T) {
	cat := catalogue.New(3, 1)
	st := store.New(0)
	res := NewReservoir(0)
	core := NewCore(triangleJumper{}, cat, st, res, 0, false, 4)

	badChain := []Generation{
		{ID: 0, Day: 0, Game: bitset.AllHoles(3), Refer: RootRefer},
		{ID: 1, Day: 0, Game: bitset.None, Refer: 0},
	}
	if _, err := Fixup(core, badChain, 1); err == nil {
		t.Errorf("expected an error for a chain with non-increasing days")
	}
}
