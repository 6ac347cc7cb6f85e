// Package solver owns the Engine facade: one value per run, wiring
// Topology, MoveCatalogue, the Transposition Store, the Backtrace
// Reservoir, the Search Core, the Bisector, and the Fixup Pass
// together behind a single entry point.
package solver

import (
	"fmt"
	"log"

	"github.com/alfille/foxhole-solve/internal/catalogue"
	"github.com/alfille/foxhole-solve/internal/config"
	"github.com/alfille/foxhole-solve/internal/result"
	"github.com/alfille/foxhole-solve/internal/search"
	"github.com/alfille/foxhole-solve/internal/store"
	"github.com/alfille/foxhole-solve/internal/topology"
)

// arenaCapacity is the transposition store's entry cap, sized
// generously for the 64-hole ceiling; zero would mean unbounded and
// defeat the whole point of ErrArenaExhausted as a real failure mode.
const arenaCapacity = 1 << 24

// Engine owns every piece one solver run needs and nothing more. The
// CLI constructs one Engine per invocation and discards it on exit,
// per spec.md §9's redesign note replacing the source's module-level
// mutable globals.
type Engine struct {
	cfg   config.Config
	topo  *topology.Topology
	cat   *catalogue.Catalogue
	store *store.Store
	res   *search.Reservoir
	core  *search.Core
}

// New builds an Engine for cfg. Progress, if cfg.Progress is set, is
// invoked periodically during the search the way the CLI wires a
// stderr dot-printer in. A non-nil error means the catalogue for cfg
// would exceed the arena before a single day is searched -- config.
// Validate bounds Holes and Visits individually but not C(Holes,
// Visits), so this guard is what actually stands between a large but
// individually-valid configuration and a hang or OOM in
// catalogue.New, mirroring the reference implementation's own
// pre-search memory check.
func New(cfg config.Config, onProgress func()) (*Engine, error) {
	if err := catalogue.CheckSize(cfg.Holes, cfg.Visits, arenaCapacity); err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	topo := topology.New(topology.Params{
		Geometry:   cfg.Geometry,
		Connection: cfg.Connection,
		XLength:    cfg.XLength,
		YLength:    cfg.YLength,
	})
	cat := catalogue.New(cfg.Holes, cfg.Visits)
	st := store.New(arenaCapacity)
	res := search.NewReservoir(1 << 16)
	core := search.NewCore(topo, cat, st, res, cfg.Poison, cfg.Rigorous, cfg.MaxDays)
	if cfg.Progress {
		core.OnProgress = onProgress
	}

	return &Engine{cfg: cfg, topo: topo, cat: cat, store: st, res: res, core: core}, nil
}

// Solve runs the Bisector to find the minimal victory day, then the
// Fixup Pass to produce a complete schedule, and renders the outcome
// as a Result. A non-nil error indicates ArenaExhausted or an
// InternalInvariant failure, never a search outcome -- an unsolved
// configuration is a successful Solve call with Solved=false.
func (e *Engine) Solve() (result.Result, error) {
	b := search.NewBisector(e.core, e.cfg.Holes, e.cfg.Visits, e.cfg.MaxDays)

	solved, days, err := b.Run()
	if err != nil {
		return result.Result{}, fmt.Errorf("solver: bisection failed: %w", err)
	}
	if !solved {
		return result.Unsolved(e.cfg.XLength, e.cfg.YLength, e.cfg.Visits, e.cfg.Poison, e.cfg.Connection, e.cfg.Geometry), nil
	}

	schedule, err := search.Fixup(e.core, b.BestChain(), e.cfg.PoisonPlus)
	if err != nil {
		return result.Result{}, fmt.Errorf("solver: fixup failed: %w", err)
	}
	if schedule.VictoryDay != days {
		log.Printf("solver: fixup victory day %d disagrees with bisector day %d", schedule.VictoryDay, days)
	}

	moves := make([][]int, schedule.VictoryDay)
	for d := 1; d <= schedule.VictoryDay; d++ {
		moves[d-1] = schedule.Moves[d].Holes()
	}

	return result.Solved(e.cfg.XLength, e.cfg.YLength, e.cfg.Visits, e.cfg.Poison, e.cfg.Connection, e.cfg.Geometry, schedule.VictoryDay, moves), nil
}
