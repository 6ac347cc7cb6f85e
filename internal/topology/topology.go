// Package topology builds the per-hole jump adjacency used by the Move
// Applier: for each hole, the set of holes a fox there can occupy on
// the following day.
package topology

import "github.com/alfille/foxhole-solve/internal/bitset"

// Geometry selects the overall shape of the board.
type Geometry int

const (
	Circle Geometry = iota
	Grid
	Triangle
)

// Connection selects which neighbours of a hole are reachable.
type Connection int

const (
	Rectangular Connection = iota
	Hexagonal
	Octagonal
)

// Params fully determines a Topology: the board shape, its adjacency
// rule, and its dimensions. Holes is derived, not supplied, by Holes().
type Params struct {
	Geometry   Geometry
	Connection Connection
	XLength    int
	YLength    int
}

// Holes returns the number of holes implied by p.
func (p Params) Holes() int {
	if p.Geometry == Triangle {
		return p.XLength * (p.XLength + 1) / 2
	}
	return p.XLength * p.YLength
}

// Topology is the immutable jump table for one board configuration.
type Topology struct {
	params Params
	holes  int
	jump   []bitset.Board
}

// Jump returns the set of holes a fox at hole h can move to.
func (t *Topology) Jump(h int) bitset.Board {
	return t.jump[h]
}

// Holes returns the number of holes in this topology.
func (t *Topology) Holes() int {
	return t.holes
}

// New builds the jump table for p. Behaviour for parameters outside the
// validated envelope (see internal/config) is undefined: the caller is
// responsible for ensuring Holes() <= 64 before calling New.
func New(p Params) *Topology {
	holes := p.Holes()
	t := &Topology{params: p, holes: holes, jump: make([]bitset.Board, holes)}
	switch p.Geometry {
	case Circle:
		t.buildCircle()
	case Grid:
		t.buildGrid()
	case Triangle:
		t.buildTriangle()
	}
	return t
}

// wrap computes the circle-wrapped index for (x, y): x wraps modulo
// XLength, y is expected already in range.
func (t *Topology) wrap(x, y int) int {
	xl := t.params.XLength
	x = ((x % xl) + xl) % xl
	return x + y*xl
}

// idx computes the clipped grid index for (x, y); callers must ensure
// 0 <= x < XLength and 0 <= y < YLength.
func (t *Topology) idx(x, y int) int {
	return x + y*t.params.XLength
}

// tri computes the triangle index for (x, y) with 0 <= x <= y.
func tri(x, y int) int {
	return y*(y+1)/2 + x
}

func (t *Topology) set(h int, to int) {
	t.jump[h] = t.jump[h].Set(to)
}

func (t *Topology) buildCircle() {
	xl, yl := t.params.XLength, t.params.YLength
	for y := 0; y < yl; y++ {
		for x := 0; x < xl; x++ {
			h := t.wrap(x, y)
			switch t.params.Connection {
			case Hexagonal:
				t.set(h, t.wrap(x-1, y))
				t.set(h, t.wrap(x+1, y))
				if y > 0 {
					t.set(h, t.wrap(x+(y&1)-1, y-1))
					t.set(h, t.wrap(x+(y&1), y-1))
				}
				if y < yl-1 {
					t.set(h, t.wrap(x+(y&1)-1, y+1))
					t.set(h, t.wrap(x+(y&1), y+1))
				}
			case Rectangular:
				t.set(h, t.wrap(x-1, y))
				t.set(h, t.wrap(x+1, y))
				if y > 0 {
					t.set(h, t.wrap(x, y-1))
				}
				if y < yl-1 {
					t.set(h, t.wrap(x, y+1))
				}
			case Octagonal:
				t.set(h, t.wrap(x-1, y))
				t.set(h, t.wrap(x+1, y))
				if y > 0 {
					t.set(h, t.wrap(x-1, y-1))
					t.set(h, t.wrap(x, y-1))
					t.set(h, t.wrap(x+1, y-1))
				}
				if y < yl-1 {
					t.set(h, t.wrap(x-1, y+1))
					t.set(h, t.wrap(x, y+1))
					t.set(h, t.wrap(x+1, y+1))
				}
			}
		}
	}
}

func (t *Topology) buildGrid() {
	xl, yl := t.params.XLength, t.params.YLength
	for y := 0; y < yl; y++ {
		for x := 0; x < xl; x++ {
			h := t.idx(x, y)
			switch t.params.Connection {
			case Hexagonal:
				if x > 0 {
					t.set(h, t.idx(x-1, y))
				}
				if x < xl-1 {
					t.set(h, t.idx(x+1, y))
				}
				if y > 0 {
					if y&1 == 1 {
						t.set(h, t.idx(x, y-1))
						if x < xl-1 {
							t.set(h, t.idx(x+1, y-1))
						}
					} else {
						if x > 0 {
							t.set(h, t.idx(x-1, y-1))
						}
						t.set(h, t.idx(x, y-1))
					}
				}
				if y < yl-1 {
					if y&1 == 1 {
						t.set(h, t.idx(x, y+1))
						if x < xl-1 {
							t.set(h, t.idx(x+1, y+1))
						}
					} else {
						if x > 0 {
							t.set(h, t.idx(x-1, y+1))
						}
						t.set(h, t.idx(x, y+1))
					}
				}
			case Rectangular:
				if x > 0 {
					t.set(h, t.idx(x-1, y))
				}
				if x < xl-1 {
					t.set(h, t.idx(x+1, y))
				}
				if y > 0 {
					t.set(h, t.idx(x, y-1))
				}
				if y < yl-1 {
					t.set(h, t.idx(x, y+1))
				}
			case Octagonal:
				if x > 0 {
					if y > 0 {
						t.set(h, t.idx(x-1, y-1))
					}
					t.set(h, t.idx(x-1, y))
					if y < yl-1 {
						t.set(h, t.idx(x-1, y+1))
					}
				}
				if y > 0 {
					t.set(h, t.idx(x, y-1))
				}
				if y < yl-1 {
					t.set(h, t.idx(x, y+1))
				}
				if x < xl-1 {
					if y > 0 {
						t.set(h, t.idx(x+1, y-1))
					}
					t.set(h, t.idx(x+1, y))
					if y < yl-1 {
						t.set(h, t.idx(x+1, y+1))
					}
				}
			}
		}
	}
}

func (t *Topology) buildTriangle() {
	xl, yl := t.params.XLength, t.params.YLength
	for y := 0; y < xl; y++ {
		for x := 0; x <= y; x++ {
			h := tri(x, y)
			switch t.params.Connection {
			case Hexagonal:
				if x > 0 {
					t.set(h, tri(x-1, y))
				}
				if x < y {
					t.set(h, tri(x+1, y))
				}
				if y > 0 {
					if x > 0 {
						t.set(h, tri(x-1, y-1))
					}
					if x < y {
						t.set(h, tri(x, y-1))
					}
				}
				if y < xl-1 {
					t.set(h, tri(x, y+1))
					t.set(h, tri(x+1, y+1))
				}
			case Rectangular:
				if x > 0 {
					t.set(h, tri(x-1, y))
				}
				if x < y {
					t.set(h, tri(x+1, y))
					t.set(h, tri(x, y-1))
				}
				if y < yl-1 {
					t.set(h, tri(x, y+1))
				}
			case Octagonal:
				if x > 0 {
					t.set(h, tri(x-1, y))
					if y > 0 {
						t.set(h, tri(x-1, y-1))
					}
					if y < yl-1 {
						t.set(h, tri(x-1, y+1))
					}
				}
				if x < y {
					t.set(h, tri(x+1, y))
					t.set(h, tri(x, y-1))
					if x < y-1 {
						t.set(h, tri(x+1, y-1))
					}
				}
				if y < yl-1 {
					t.set(h, tri(x, y+1))
					t.set(h, tri(x+1, y+1))
				}
			}
		}
	}
}
