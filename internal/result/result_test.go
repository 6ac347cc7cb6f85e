package result

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alfille/foxhole-solve/internal/topology"
)

func TestUnsolvedOmitsDaysAndMoves(t *testing.T) {
	r := Unsolved(4, 1, 1, 0, topology.Rectangular, topology.Circle)
	data, err := Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	if strings.Contains(s, `"days"`) || strings.Contains(s, `"moves"`) {
		t.Errorf("expected days and moves to be omitted when unsolved, got %s", s)
	}
	if !strings.HasSuffix(strings.TrimSpace(s), `"solved":false}`) {
		t.Errorf("expected solved to be the last key with no trailing comma, got %s", s)
	}
}

func TestSolvedIncludesDaysAndMovesAndSolvedIsLast(t *testing.T) {
	r := Solved(3, 1, 1, 0, topology.Rectangular, topology.Circle, 2, [][]int{{1}, {1}})
	data, err := Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	if !strings.HasSuffix(strings.TrimSpace(s), `"solved":true}`) {
		t.Errorf("expected solved to be the last key, got %s", s)
	}

	var roundTrip map[string]json.RawMessage
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("failed to round-trip: %v", err)
	}
	for _, key := range []string{"length", "width", "visits", "poison_days", "connection", "geometry", "days", "moves", "solved"} {
		if _, ok := roundTrip[key]; !ok {
			t.Errorf("expected key %q in solved result", key)
		}
	}
}

func TestGeometryAndConnectionNames(t *testing.T) {
	cases := []struct {
		geo  topology.Geometry
		conn topology.Connection
		wantGeo, wantConn string
	}{
		{topology.Circle, topology.Rectangular, "circle", "rectangular"},
		{topology.Grid, topology.Hexagonal, "grid", "hexagonal"},
		{topology.Triangle, topology.Octagonal, "triangle", "octagonal"},
	}
	for _, c := range cases {
		if got := GeometryName(c.geo); got != c.wantGeo {
			t.Errorf("GeometryName(%v) = %q, want %q", c.geo, got, c.wantGeo)
		}
		if got := ConnectionName(c.conn); got != c.wantConn {
			t.Errorf("ConnectionName(%v) = %q, want %q", c.conn, got, c.wantConn)
		}
	}
}
