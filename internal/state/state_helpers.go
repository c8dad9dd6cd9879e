package state

import (
	"slices"
)

// IsWon is the sole win condition: every target word has been found.
func (s *State) IsWon() bool {
	return len(s.Found) == len(s.Puzzle.Words)
}

// Phase returns the name of the current phase.
func (s *State) Phase() string {
	return s.FSM.Current()
}

// AcceptsPointer reports whether pointer gestures may change the selection.
// The board and ring are locked while a word is validated or placed.
func (s *State) AcceptsPointer() bool {
	switch s.FSM.Current() {
	case Idle, Selecting:
		return true
	}
	return false
}

// IsSelecting reports whether a gesture is in progress.
func (s State) IsSelecting() bool {
	return s.FSM.Current() == Selecting
}

// FoundWords returns the found words in puzzle order.
func (s State) FoundWords() []string {
	var out []string
	for _, w := range s.Puzzle.Words {
		if s.Found[w] {
			out = append(out, w)
		}
	}
	return out
}

// RemainingWords returns the words still to find, in puzzle order.
func (s State) RemainingWords() []string {
	found := s.FoundWords()
	var out []string
	for _, w := range s.Puzzle.Words {
		if !slices.Contains(found, w) {
			out = append(out, w)
		}
	}
	return out
}

// Animating reports whether anything on screen is still moving.
func (s State) Animating() bool {
	return !s.Driver.Idle()
}
