package viewer

import "github.com/alfille/foxhole-solve/internal/bitset"

// State tracks which day of a Replay is currently displayed, and
// clamps stepping at both ends rather than wrapping -- the viewer has
// no notion of a schedule cycling past its victory day.
type State struct {
	replay Replay
	day    int
}

// NewState starts display at day 0, the full starting board.
func NewState(r Replay) *State {
	return &State{replay: r}
}

// Day returns the currently displayed day.
func (s *State) Day() int {
	return s.day
}

// Next advances one day, stopping at the victory day.
func (s *State) Next() {
	if s.day < s.replay.Days {
		s.day++
	}
}

// Prev retreats one day, stopping at day 0.
func (s *State) Prev() {
	if s.day > 0 {
		s.day--
	}
}

// AtEnd reports whether the displayed day is the victory day.
func (s *State) AtEnd() bool {
	return s.day == s.replay.Days
}

// Game returns the board for the currently displayed day.
func (s *State) Game() bitset.Board {
	return s.replay.Game[s.day]
}

// Visited returns the holes visited to reach the currently displayed
// day; day 0 has none.
func (s *State) Visited() bitset.Board {
	return s.replay.Visit[s.day]
}

// Replay exposes the underlying schedule, for layout and hole counts.
func (s *State) Replay() Replay {
	return s.replay
}
