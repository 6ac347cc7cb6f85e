package search

import (
	"fmt"

	"github.com/alfille/foxhole-solve/internal/applier"
	"github.com/alfille/foxhole-solve/internal/bitset"
)

// Schedule is the fully resolved, gap-free output of the Fixup Pass:
// Games[d] and Moves[d] for every day 0..VictoryDay, with Moves[0]
// always bitset.None (no move precedes the start state).
type Schedule struct {
	VictoryDay int
	Games      []bitset.Board
	Moves      []bitset.Board
}

// ErrInconsistentChain reports that a reservoir chain or a resolved
// schedule failed one of the Fixup Pass's own consistency checks --
// an InternalInvariant failure per the engine's error handling design.
var ErrInconsistentChain = fmt.Errorf("search: reservoir chain failed a fixup invariant check")

// Fixup turns a Bisector's winning chain into a complete schedule: a
// known game for every day from 0 to victory day, and the move that
// produced each one. gapCore is scratch space for bounded game-gap
// searches; it may be the same Core the Bisector drove, since Fixup
// runs after the Bisector's own probing has finished with it.
func Fixup(gapCore *Core, chain []Generation, poisonPlus int) (Schedule, error) {
	games, err := fillGameGaps(gapCore, chain)
	if err != nil {
		return Schedule{}, err
	}
	moves, err := recoverMoves(gapCore.Jumper, gapCore.Catalogue, games, poisonPlus)
	if err != nil {
		return Schedule{}, err
	}

	victoryDay := len(games) - 1
	if !games[victoryDay].Empty() {
		return Schedule{}, fmt.Errorf("%w: day %d is not GAME_NONE", ErrInconsistentChain, victoryDay)
	}

	return Schedule{VictoryDay: victoryDay, Games: games, Moves: moves}, nil
}

// fillGameGaps walks consecutive pairs of known generations and, for
// every pair more than one day apart, runs a bounded search from the
// earlier game targeting the later one to recover the games at every
// day strictly between them.
//
// Each gap search starts with an empty poison window rather than the
// real moves preceding lo.Day, since those moves are not yet known --
// move recovery happens only after every game in the chain is filled
// in. This is exact whenever poisonPlus <= 1 or the gap starts at day
// 0, and is otherwise an approximation: the reconstructed intermediate
// games are a legal bridge between lo.Game and hi.Game under a
// poison-free opening, not necessarily the exact path the original
// probe took. The invariant Fixup ultimately checks -- the Move
// Applier reproduces every games[d] from games[d-1] under the real,
// fully-recovered poison window -- is enforced afterward by
// recoverMoves, which fails loudly if no such move exists.
func fillGameGaps(gapCore *Core, chain []Generation) ([]bitset.Board, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: empty chain", ErrInconsistentChain)
	}
	if chain[0].Day != 0 {
		return nil, fmt.Errorf("%w: chain does not start at day 0", ErrInconsistentChain)
	}

	victoryDay := chain[len(chain)-1].Day
	games := make([]bitset.Board, victoryDay+1)
	games[0] = chain[0].Game
	games[victoryDay] = chain[len(chain)-1].Game

	for i := 1; i < len(chain); i++ {
		lo, hi := chain[i-1], chain[i]
		games[hi.Day] = hi.Game
		span := hi.Day - lo.Day
		if span <= 0 {
			return nil, fmt.Errorf("%w: chain days not strictly increasing at index %d", ErrInconsistentChain, i)
		}
		if span == 1 {
			continue
		}

		outcome, err := gapCore.RunFrom(lo.Game, hi.Game, span)
		if err != nil {
			return nil, err
		}
		if outcome != Won || gapCore.VictoryDay() != span {
			return nil, fmt.Errorf("%w: game gap between day %d and %d did not resolve", ErrInconsistentChain, lo.Day, hi.Day)
		}
		for d := 1; d < span; d++ {
			games[lo.Day+d] = gapCore.day[d]
		}
	}

	return games, nil
}

// recoverMoves fills in the move that explains every day transition,
// since the reservoir only ever snapshots games. Each move is found by
// trying catalogue entries in ascending order against the Move
// Applier until the predicted next_game matches the known games[d+1];
// such a move always exists because the games themselves came from a
// legal sequence.
func recoverMoves(j applier.Jumper, cat catalogueGetter, games []bitset.Board, poisonPlus int) ([]bitset.Board, error) {
	moves := make([]bitset.Board, len(games))

	for d := 0; d < len(games)-1; d++ {
		window := trailingWindow(moves, d, poisonPlus)
		found := false
		for ip := 0; ip < cat.Len(); ip++ {
			candidate := cat.Get(ip)
			next := applier.Apply(j, games[d], candidate, window)
			if next == games[d+1] {
				moves[d+1] = candidate
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no catalogue entry explains the transition from day %d to %d", ErrInconsistentChain, d, d+1)
		}
	}

	return moves, nil
}

// trailingWindow returns the moves from the poisonPlus-1 days before
// day+1 still lethal on day+1, most recent first -- the same
// definition Core.poisonWindow uses, expressed over an already fully
// known moves slice instead of the live search's move array.
func trailingWindow(moves []bitset.Board, day, poisonPlus int) []bitset.Board {
	if poisonPlus <= 1 {
		return nil
	}
	window := make([]bitset.Board, 0, poisonPlus-1)
	for p := 1; p < poisonPlus; p++ {
		d := day + 1 - p
		if d < 1 {
			window = append(window, bitset.None)
			continue
		}
		window = append(window, moves[d])
	}
	return window
}

// catalogueGetter is the slice of *catalogue.Catalogue's interface
// recoverMoves needs, kept narrow so this file does not need to import
// the catalogue package solely for a type name.
type catalogueGetter interface {
	Len() int
	Get(i int) bitset.Board
}
