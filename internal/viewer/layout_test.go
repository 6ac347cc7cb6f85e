package viewer

import (
	"testing"

	"github.com/alfille/foxhole-solve/internal/topology"
)

func inUnitSquare(t *testing.T, p Point) {
	t.Helper()
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		t.Errorf("point %+v outside the unit square", p)
	}
}

func TestLayoutCircleProducesOnePointPerHole(t *testing.T) {
	points := Layout(topology.Circle, 5, 2)
	if len(points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(points))
	}
	for _, p := range points {
		inUnitSquare(t, p)
	}
}

func TestLayoutGridProducesARegularLattice(t *testing.T) {
	points := Layout(topology.Grid, 3, 4)
	if len(points) != 12 {
		t.Fatalf("expected 12 points, got %d", len(points))
	}
	for _, p := range points {
		inUnitSquare(t, p)
	}
}

func TestLayoutTriangleRowsGrowByOne(t *testing.T) {
	points := Layout(topology.Triangle, 4, 4)
	if len(points) != 10 {
		t.Fatalf("expected 10 points for a side-4 triangle, got %d", len(points))
	}
	for _, p := range points {
		inUnitSquare(t, p)
	}
}

func TestStateStepsForwardAndBackWithinBounds(t *testing.T) {
	rep := Replay{Holes: 2, Days: 2}
	s := NewState(rep)

	if s.Day() != 0 {
		t.Fatalf("expected to start at day 0, got %d", s.Day())
	}
	s.Prev()
	if s.Day() != 0 {
		t.Errorf("expected Prev at day 0 to stay at 0, got %d", s.Day())
	}

	s.Next()
	s.Next()
	s.Next()
	if s.Day() != 2 {
		t.Errorf("expected Next to clamp at the victory day 2, got %d", s.Day())
	}
	if !s.AtEnd() {
		t.Errorf("expected AtEnd at the victory day")
	}
}
