// Package result defines the JSON schema the engine emits: the run's
// configuration plus, when solved, the winning schedule.
package result

import (
	"encoding/json"

	"github.com/alfille/foxhole-solve/internal/topology"
)

// Result is marshaled with encoding/json field order matching
// original_source/jsonOut.c's manual fprintf sequence exactly: Days
// and Moves are present only when Solved, and Solved is always the
// last key.
type Result struct {
	Length     int     `json:"length"`
	Width      int     `json:"width"`
	Visits     int     `json:"visits"`
	PoisonDays int     `json:"poison_days"`
	Connection string  `json:"connection"`
	Geometry   string  `json:"geometry"`
	Days       *int    `json:"days,omitempty"`
	Moves      [][]int `json:"moves,omitempty"`
	Solved     bool    `json:"solved"`
}

// ConnectionName and GeometryName render the enum values the way
// original_source/jsonOut.c's connName/geoName do.
func ConnectionName(c topology.Connection) string {
	switch c {
	case topology.Hexagonal:
		return "hexagonal"
	case topology.Octagonal:
		return "octagonal"
	default:
		return "rectangular"
	}
}

func GeometryName(g topology.Geometry) string {
	switch g {
	case topology.Grid:
		return "grid"
	case topology.Triangle:
		return "triangle"
	default:
		return "circle"
	}
}

// Unsolved builds the Result for a configuration the engine proved has
// no winning schedule.
func Unsolved(length, width, visits, poison int, conn topology.Connection, geo topology.Geometry) Result {
	return Result{
		Length:     length,
		Width:      width,
		Visits:     visits,
		PoisonDays: poison,
		Connection: ConnectionName(conn),
		Geometry:   GeometryName(geo),
		Solved:     false,
	}
}

// Solved builds the Result for a winning schedule. moves holds, for
// each day 1..days, the ascending list of hole indices visited that
// day.
func Solved(length, width, visits, poison int, conn topology.Connection, geo topology.Geometry, days int, moves [][]int) Result {
	d := days
	return Result{
		Length:     length,
		Width:      width,
		Visits:     visits,
		PoisonDays: poison,
		Connection: ConnectionName(conn),
		Geometry:   GeometryName(geo),
		Days:       &d,
		Moves:      moves,
		Solved:     true,
	}
}

// Marshal renders r exactly the way the CLI writes it to stdout or a
// -j file: compact, with the field order declared above.
func Marshal(r Result) ([]byte, error) {
	return json.Marshal(r)
}
