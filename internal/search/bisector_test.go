package search

import (
	"testing"

	"github.com/alfille/foxhole-solve/internal/catalogue"
	"github.com/alfille/foxhole-solve/internal/store"
)

// Without poison, three mutually-adjacent holes need exactly 3 days
// (verified directly against the Search Core in core_test.go): the
// Bisector should converge there in exactly two probes -- an initial
// ceil(holes/visits)=3 probe that wins immediately, then a bisection
// probe at 2 that overflows and closes the bracket.
func TestBisectorFindsMinimalDaysNoPoison(t *testing.T) {
	core := newTriangleCore(0, 3)
	b := NewBisector(core, 3, 1, 10)

	solved, days, err := b.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !solved {
		t.Fatalf("expected a solution to be found")
	}
	if days != 3 {
		t.Errorf("expected minimal days=3, got %d", days)
	}
	if b.Probes() != 2 {
		t.Errorf("expected exactly 2 probes, got %d", b.Probes())
	}
}

// With a poison window of 2, the same graph clears a full day earlier
// (verified in core_test.go): the Bisector should converge on 2. The
// Core is constructed with a maxDays of 1, far below the Bisector's
// ceiling of 10, to exercise the Core's working-array growth path
// alongside its first probe.
func TestBisectorFindsMinimalDaysWithPoison(t *testing.T) {
	cat := catalogue.New(3, 1)
	st := store.New(0)
	res := NewReservoir(0)
	core := NewCore(triangleJumper{}, cat, st, res, 2, false, 1)
	b := NewBisector(core, 3, 1, 10)

	solved, days, err := b.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !solved {
		t.Fatalf("expected a solution to be found")
	}
	if days != 2 {
		t.Errorf("expected minimal days=2, got %d", days)
	}
}

// The triangle needs exactly 3 days (TestBisectorFindsMinimalDaysNoPoison).
// Capping the Bisector's absolute ceiling at 2 means every probe
// overflows and KnownGood is never set, so Run must report unsolved
// rather than mistake exhausting its day budget for a win.
func TestBisectorReportsUnsolvedWhenMaxDaysIsTooSmall(t *testing.T) {
	core := newTriangleCore(0, 3)
	b := NewBisector(core, 3, 1, 2)

	solved, _, err := b.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if solved {
		t.Errorf("expected no solution within a 2-day ceiling for a graph that needs 3")
	}
}
