package applier

import (
	"testing"

	"github.com/alfille/foxhole-solve/internal/bitset"
	"github.com/alfille/foxhole-solve/internal/topology"
)

func TestApplyCircleFive(t *testing.T) {
	topo := topology.New(topology.Params{Geometry: topology.Circle, Connection: topology.Rectangular, XLength: 5, YLength: 1})
	game := bitset.AllHoles(5)
	today := bitset.None.Set(1)
	next := Apply(topo, game, today, nil)

	// Holes 0,2,3,4 survive (hole 1 caught); each jumps to its two
	// circular neighbours; holes 0 and 2 jump into hole 1, but today's
	// visit masks it out of tomorrow's game.
	if next.Test(1) {
		t.Errorf("hole 1 should not be reachable: caught and only neighbour of 0 and 2")
	}
	if next.Empty() {
		t.Errorf("expected some surviving reachable holes")
	}
}

func TestApplyNoSurvivorsYieldsEmpty(t *testing.T) {
	topo := topology.New(topology.Params{Geometry: topology.Circle, Connection: topology.Rectangular, XLength: 5, YLength: 1})
	game := bitset.AllHoles(5)
	today := game // visiting every hole catches everything
	next := Apply(topo, game, today, nil)
	if !next.Empty() {
		t.Errorf("expected empty next, got %#x", uint64(next))
	}
}

func TestApplyPoisonWindowBlocksLanding(t *testing.T) {
	topo := topology.New(topology.Params{Geometry: topology.Grid, Connection: topology.Rectangular, XLength: 3, YLength: 1})
	game := bitset.None.Set(0)
	today := bitset.None // no visit today
	poisoned := []bitset.Board{bitset.None.Set(1)}
	next := Apply(topo, game, today, poisoned)
	if next.Test(1) {
		t.Errorf("poisoned hole 1 should not be reachable")
	}
}
