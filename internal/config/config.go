// Package config validates raw CLI input into a Config the rest of the
// engine can trust without further range checks.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/alfille/foxhole-solve/internal/topology"
)

// MaxPoison is the upper clamp on poison days.
const MaxPoison = 32

// DefaultMaxDays is the Bisector's hard probe ceiling, matching
// original_source/fhsolve.c's #define MaxDays 1000.
const DefaultMaxDays = 1000

// ErrConfigurationInvalid reports a parameter set that cannot be
// clamped into a solvable envelope -- HOLES exceeding 64 after the
// xlength and ylength clamps have been applied.
var ErrConfigurationInvalid = errors.New("config: parameters cannot be clamped to a solvable envelope")

// Raw captures unclamped CLI input: any int, including negative or
// out-of-range values, as flag.IntVar hands it over.
type Raw struct {
	XLength    int
	YLength    int
	Visits     int
	Poison     int
	Geometry   topology.Geometry
	Connection topology.Connection
	Rigorous   bool
	Progress   bool
}

// Config is Raw after validation: every field is guaranteed to be
// inside its legal range and mutually consistent with every other
// field.
type Config struct {
	XLength    int
	YLength    int
	Holes      int
	Visits     int
	Poison     int
	PoisonPlus int
	Geometry   topology.Geometry
	Connection topology.Connection
	Rigorous   bool
	Progress   bool
	MaxDays    int
}

// Validate applies the clamping rules in order, logging every clamp it
// performs as a diagnostic, and fails only when HOLES exceeds 64 after
// clamping -- a configuration that cannot be solved, not merely one
// that asked for an unusual board.
func Validate(r Raw) (Config, error) {
	c := Config{
		XLength:    clampLog("xlength", r.XLength, 3, 64, 5),
		YLength:    clampLog("ylength", r.YLength, 1, 21, 1),
		Poison:     clampLog("poison", r.Poison, 0, MaxPoison, 0),
		Geometry:   r.Geometry,
		Connection: r.Connection,
		Rigorous:   r.Rigorous,
		Progress:   r.Progress,
		MaxDays:    DefaultMaxDays,
	}

	if c.Geometry == topology.Triangle {
		c.YLength = c.XLength
		c.Holes = c.XLength * (c.XLength + 1) / 2
	} else {
		c.Holes = c.XLength * c.YLength
	}
	if c.Holes > 64 {
		return Config{}, fmt.Errorf("%w: %d holes from xlength=%d ylength=%d geometry=%v exceeds 64",
			ErrConfigurationInvalid, c.Holes, c.XLength, c.YLength, c.Geometry)
	}

	c.Visits = clampLog("visits", r.Visits, 1, c.Holes, 1)
	c.PoisonPlus = c.Poison
	if c.PoisonPlus < 1 {
		c.PoisonPlus = 1
	}

	return c, nil
}

// clampLog clamps v into [lo, hi], substituting fallback when v is
// below lo and lo > 0 would otherwise be the clamp target for a value
// that was never supplied. This mirrors original_source/validate.c's
// shape: out-of-range inputs move to the nearest legal bound, with
// every clamp logged rather than silently applied.
func clampLog(name string, v, lo, hi, fallbackLow int) int {
	switch {
	case v < lo:
		target := fallbackLow
		if target < lo || target > hi {
			target = lo
		}
		log.Printf("config: %s=%d out of range [%d,%d], clamped to %d", name, v, lo, hi, target)
		return target
	case v > hi:
		log.Printf("config: %s=%d out of range [%d,%d], clamped to %d", name, v, lo, hi, hi)
		return hi
	default:
		return v
	}
}
