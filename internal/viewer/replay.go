// Package viewer reconstructs and lays out a solved schedule for
// on-screen display. It never touches the search engine: its only
// input is a result.Result loaded from JSON, the same document
// cmd/foxhole-solve writes.
package viewer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alfille/foxhole-solve/internal/applier"
	"github.com/alfille/foxhole-solve/internal/bitset"
	"github.com/alfille/foxhole-solve/internal/result"
	"github.com/alfille/foxhole-solve/internal/topology"
)

// ErrUnsolved reports that a loaded Result has no schedule to replay.
var ErrUnsolved = fmt.Errorf("viewer: result is unsolved, nothing to replay")

// Replay is a Result's schedule re-expanded into a full game state per
// day, for display. The JSON Result carries only the day's visits, not
// the resulting boards, so Replay recomputes game[d] from game[d-1]
// via the Move Applier -- the same transition the engine itself used
// to prove the schedule winning.
type Replay struct {
	Holes int
	Days  int
	Game  []bitset.Board // Game[0..Days], Game[Days] is empty
	Visit []bitset.Board // Visit[0] is unused, Visit[d] is day d's pattern
}

// LoadResult reads and parses a Result JSON document from path.
func LoadResult(path string) (result.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return result.Result{}, fmt.Errorf("viewer: reading %s: %w", path, err)
	}
	var r result.Result
	if err := json.Unmarshal(data, &r); err != nil {
		return result.Result{}, fmt.Errorf("viewer: parsing %s: %w", path, err)
	}
	return r, nil
}

// Build replays r's schedule into a full day-by-day Replay. r must be
// solved; an unsolved Result has no schedule to step through.
func Build(r result.Result) (Replay, error) {
	if !r.Solved || r.Days == nil {
		return Replay{}, ErrUnsolved
	}

	geo, err := parseGeometry(r.Geometry)
	if err != nil {
		return Replay{}, err
	}
	conn, err := parseConnection(r.Connection)
	if err != nil {
		return Replay{}, err
	}

	topo := topology.New(topology.Params{
		Geometry:   geo,
		Connection: conn,
		XLength:    r.Length,
		YLength:    r.Width,
	})
	holes := topo.Holes()
	days := *r.Days
	if len(r.Moves) != days {
		return Replay{}, fmt.Errorf("viewer: %d moves do not match %d days", len(r.Moves), days)
	}

	visit := make([]bitset.Board, days+1)
	for d := 1; d <= days; d++ {
		var v bitset.Board
		for _, h := range r.Moves[d-1] {
			v = v.Set(h)
		}
		visit[d] = v
	}

	poisonPlus := r.PoisonDays
	if poisonPlus < 1 {
		poisonPlus = 1
	}

	game := make([]bitset.Board, days+1)
	game[0] = bitset.AllHoles(holes)
	for d := 1; d <= days; d++ {
		window := trailingWindow(visit, d, poisonPlus)
		game[d] = applier.Apply(topo, game[d-1], visit[d], window)
	}

	return Replay{Holes: holes, Days: days, Game: game, Visit: visit}, nil
}

// trailingWindow mirrors internal/search.Core's poison-window
// definition: the poisonPlus-1 visit patterns before day, most recent
// first, treating any day before 1 as a no-op visit.
func trailingWindow(visit []bitset.Board, day, poisonPlus int) []bitset.Board {
	if poisonPlus <= 1 {
		return nil
	}
	window := make([]bitset.Board, 0, poisonPlus-1)
	for p := 1; p < poisonPlus; p++ {
		d := day - p
		if d < 1 {
			window = append(window, bitset.None)
			continue
		}
		window = append(window, visit[d])
	}
	return window
}

func parseGeometry(name string) (topology.Geometry, error) {
	switch name {
	case "circle":
		return topology.Circle, nil
	case "grid":
		return topology.Grid, nil
	case "triangle":
		return topology.Triangle, nil
	default:
		return 0, fmt.Errorf("viewer: unknown geometry %q", name)
	}
}

func parseConnection(name string) (topology.Connection, error) {
	switch name {
	case "rectangular":
		return topology.Rectangular, nil
	case "hexagonal":
		return topology.Hexagonal, nil
	case "octagonal":
		return topology.Octagonal, nil
	default:
		return 0, fmt.Errorf("viewer: unknown connection %q", name)
	}
}
