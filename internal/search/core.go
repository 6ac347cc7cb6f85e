// Package search implements the Search Core, Backtrace Reservoir,
// Bisector, and Fixup Pass: the depth-first game-tree walk at the
// heart of the solver, and the apparatus around it that turns "a
// victory exists" into a concrete, minimal, gap-free schedule.
package search

import (
	"github.com/alfille/foxhole-solve/internal/applier"
	"github.com/alfille/foxhole-solve/internal/bitset"
	"github.com/alfille/foxhole-solve/internal/catalogue"
	"github.com/alfille/foxhole-solve/internal/statekey"
	"github.com/alfille/foxhole-solve/internal/store"
)

// Outcome is the result of one Search Core invocation.
type Outcome int

const (
	Won Outcome = iota
	Lost
	Overflow
	Retry
	Forward
)

// Core owns everything a single bisection probe needs to walk the day
// tree: the topology, the move catalogue, the transposition store, the
// poison window width, and the reservoir used to record the path for
// later reconstruction.
type Core struct {
	Jumper    applier.Jumper
	Catalogue *catalogue.Catalogue
	Store     *store.Store
	Reservoir *Reservoir
	Poison    int
	Rigorous  bool
	MaxDays   int
	Target    bitset.Board // the win condition Run checks each candidate next_game against

	// OnProgress, if set, is invoked every 1<<24 states examined, in
	// the style of the reference implementation's periodic "." output.
	OnProgress func()

	states int64
	day    []bitset.Board // dense, ephemeral per-probe working state
	// move is indexed with a fixed offset of Poison so that lookups for
	// the Poison-1 days before day 0 are in-bounds and read the sentinel
	// "no move" catalogue entry, per spec §3's DayState lifecycle note:
	// "the extra prefix lets poisoned-history lookups at day=0 read
	// zeros without bounds-checking."
	move    []int
	moveOff int
	genID   []int // reservoir generation ID active at each day
	victory int
}

// frame is one level of the explicit DFS stack, per spec §9's redesign
// note: an explicit stack of (day, move_index_cursor) instead of
// recursion.
type frame struct {
	day    int
	cursor int
}

// NewCore builds a Core. maxDays bounds the dense working arrays.
func NewCore(j applier.Jumper, cat *catalogue.Catalogue, st *store.Store, res *Reservoir, poison int, rigorous bool, maxDays int) *Core {
	return &Core{
		Jumper:    j,
		Catalogue: cat,
		Store:     st,
		Reservoir: res,
		Poison:    poison,
		Rigorous:  rigorous,
		MaxDays:   maxDays,
		Target:    bitset.None,
		day:       make([]bitset.Board, maxDays+1),
		move:      make([]int, maxDays+1+poison),
		moveOff:   poison,
		genID:     make([]int, maxDays+1),
	}
}

// ensureCapacity grows the dense working arrays when a probe asks for
// more days than any prior probe on this Core. A Bisector drives the
// same Core through probes of increasing and decreasing depth, so the
// arrays allocated at construction only need to be a floor, not a
// fixed size.
func (c *Core) ensureCapacity(maxDays int) {
	if maxDays+1 <= len(c.day) {
		return
	}
	c.day = make([]bitset.Board, maxDays+1)
	c.move = make([]int, maxDays+1+c.Poison)
	c.genID = make([]int, maxDays+1)
}

// poisonPlus is max(poison, 1): the spec's resolution of the
// poison/poison_plus ambiguity in the source material.
func (c *Core) poisonPlus() int {
	if c.Poison < 1 {
		return 1
	}
	return c.Poison
}

// tailWidth is the number of words following the game bitset in every
// transposition key this Core produces: 1 in standard mode, poison_plus
// in rigorous mode.
func (c *Core) tailWidth() int {
	if !c.Rigorous {
		return 1
	}
	return c.poisonPlus()
}

func (c *Core) setMove(day, ip int) {
	c.move[day+c.moveOff] = ip
}

func (c *Core) moveAt(day int) int {
	return c.move[day+c.moveOff]
}

// Run performs one bisection probe: a bounded depth-first search from
// GAME_ALL for a schedule of at most maxDays days reaching GAME_NONE.
// It returns Won (with victoryDay accessible via VictoryDay), Lost (the
// configuration is exhaustively proven unwinnable at any depth), or
// Overflow (some branch reached maxDays without winning, so a longer
// probe might still succeed). A non-nil error means the transposition
// store's arena was exhausted — a fatal configuration failure per the
// engine's error handling design, not a search outcome.
func (c *Core) Run(holes, maxDays int) (Outcome, error) {
	return c.RunFrom(bitset.AllHoles(holes), bitset.None, maxDays)
}

// RunFrom is the general form of Run: a bounded depth-first search from
// an arbitrary start state for a schedule of at most maxDays days
// reaching target, rather than always GAME_ALL and GAME_NONE. The
// Fixup Pass uses this to resolve a game gap between two known
// reservoir generations; Run is the GAME_ALL/GAME_NONE special case
// every bisection probe uses.
func (c *Core) RunFrom(start, target bitset.Board, maxDays int) (Outcome, error) {
	c.MaxDays = maxDays
	c.Target = target
	c.ensureCapacity(maxDays)
	c.Store.Reset()
	c.Reservoir.Reset()

	c.day[0] = start
	for i := range c.move {
		c.move[i] = 0
	}
	c.genID[0] = c.Reservoir.RecordRoot(start)
	if _, err := c.Store.ContainsOrAdd(c.keyAt(0), 0); err != nil {
		return Lost, err
	}

	stack := []frame{{day: 0, cursor: 1}}
	sawOverflow := false

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		day := top.day
		final := day+1 == maxDays

		if top.cursor >= c.Catalogue.Len() {
			if final {
				sawOverflow = true
			}
			stack = stack[:len(stack)-1]
			continue
		}

		ip := top.cursor
		top.cursor++
		c.setMove(day+1, ip)

		outcome, nextGame, err := c.tryMove(day, ip, final)
		if err != nil {
			return Lost, err
		}

		switch outcome {
		case Won:
			c.day[day+1] = nextGame
			c.victory = day + 1
			c.genID[c.victory] = c.Reservoir.RecordVictory(c.victory, nextGame, c.genID[day])
			return Won, nil
		case Retry:
			continue
		case Forward:
			c.day[day+1] = nextGame
			parent := c.genID[day]
			c.genID[day+1] = c.Reservoir.Observe(day+1, nextGame, parent)
			stack = append(stack, frame{day: day + 1, cursor: 1})
		}
	}

	if sawOverflow {
		return Overflow, nil
	}
	return Lost, nil
}

// VictoryDay returns the day reached by the most recent Won outcome.
func (c *Core) VictoryDay() int {
	return c.victory
}

// ReservoirLeaf returns the generation ID of the victory day, the
// starting point for Walk-based schedule reconstruction.
func (c *Core) ReservoirLeaf() int {
	return c.genID[c.victory]
}

// tryMove computes the outcome of trying catalogue entry ip on the
// given day, mirroring calcMove/calcMoveFinal in the reference
// implementation: the final day skips the transposition store because
// no further descent is possible.
func (c *Core) tryMove(day, ip int, final bool) (Outcome, bitset.Board, error) {
	c.progress()

	today := c.Catalogue.Get(ip)
	window := c.poisonWindow(day)
	next := applier.Apply(c.Jumper, c.day[day], today, window)

	if next == c.Target {
		return Won, next, nil
	}
	if final {
		return Retry, next, nil
	}

	key := statekey.New(next, c.rigorousTail(day, ip))
	hit, err := c.Store.ContainsOrAdd(key, day+1)
	if err != nil {
		return Lost, next, err
	}
	if hit {
		return Retry, next, nil
	}
	return Forward, next, nil
}

// poisonWindow returns the visit patterns from the Poison-1 days prior
// to today still lethal on day+1, most recent first. today's own move
// is excluded here — the Move Applier masks it separately. Always
// exactly Poison-1 entries (padded with the sentinel "no move" pattern
// for days before day 0), so the length never depends on how far into
// the search we are. Empty when Poison <= 1.
func (c *Core) poisonWindow(day int) []bitset.Board {
	if c.Poison <= 1 {
		return nil
	}
	window := make([]bitset.Board, 0, c.Poison-1)
	for p := 1; p < c.Poison; p++ {
		d := day + 1 - p
		window = append(window, c.Catalogue.Get(c.moveAt(d)))
	}
	return window
}

// rigorousTail returns the words appended to the transposition key
// after the game bitset. In standard mode only today's own move is
// included (search_elements == 2 in spec terms); in rigorous mode the
// full active poison history — today's move plus the Poison-1 moves
// before it — is included (poison_plus words, matching tailWidth).
func (c *Core) rigorousTail(day, ip int) []bitset.Board {
	today := c.Catalogue.Get(ip)
	if !c.Rigorous {
		return []bitset.Board{today}
	}
	return append([]bitset.Board{today}, c.poisonWindow(day)...)
}

// keyAt builds the key for the root state at day 0: the game bitset
// plus a zero-filled tail, since no move has yet been made.
func (c *Core) keyAt(day int) statekey.Key {
	return statekey.New(c.day[day], make([]bitset.Board, c.tailWidth()))
}

func (c *Core) progress() {
	c.states++
	if c.OnProgress != nil && c.states&0xFFFFFF == 0 {
		c.OnProgress()
	}
}
