// Package applier computes the next day's game state from the current
// game, today's visit, and the trailing poison window.
package applier

import "github.com/alfille/foxhole-solve/internal/bitset"

// Jumper is the topology's neighbour lookup; internal/topology.Topology
// satisfies it.
type Jumper interface {
	Jump(hole int) bitset.Board
}

// Apply computes tomorrow's game given today's game, the visit pattern
// chosen today, and the poison window: the visit patterns from the
// trailing poison days still lethal to a fox landing there (most
// recent first). The poison window is empty when poison is 0.
//
// Step 1: alive = game &^ today (foxes caught today are removed).
// Step 2: next = union of jump[h] for h in alive (survivors jump).
// Step 3: next is masked clear of today and every poisoned hole.
func Apply(j Jumper, game, today bitset.Board, poisonWindow []bitset.Board) bitset.Board {
	alive := game.Diff(today)
	var next bitset.Board
	alive.ForEach(func(h int) {
		next = next.Union(j.Jump(h))
	})
	next = next.Diff(today)
	for _, p := range poisonWindow {
		next = next.Diff(p)
	}
	return next
}
