package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"word-ring/internal/geom"
	"word-ring/internal/puzzle"
	"word-ring/internal/state"
)

type Session struct {
	Puzzle      *puzzle.Puzzle
	Geometry    geom.Geometry
	GameOptions state.GameOptions
	CurrentGame *Game

	// Aggregate State
	Rounds     int // rounds solved since the session started
	TotalScore int

	banked bool
}

// NewSession validates the puzzle and starts its game.
func NewSession(p *puzzle.Puzzle, g geom.Geometry, opts state.GameOptions) (*Session, error) {
	if p == nil {
		return nil, fmt.Errorf("no puzzle provided")
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot start session: %w", err)
	}

	s := &Session{
		Puzzle:      p,
		Geometry:    g,
		GameOptions: opts,
	}

	s.CurrentGame = NewGame(p, g, opts)
	s.CurrentGame.Init()

	log.Info().Str("puzzle", p.Title).Str("source", p.Source).Int("words", len(p.Words)).Msg("session started")
	return s, nil
}

// Update banks the round's score the first time the game is seen won.
func (s *Session) Update() {
	if s.CurrentGame == nil {
		return
	}
	if s.CurrentGame.State.Win && !s.banked {
		s.TotalScore += s.CurrentGame.State.Score.CurrentScore
		s.Rounds++
		s.banked = true
	}
}

// Restart resets the current game for another round.
func (s *Session) Restart() bool {
	if s.CurrentGame == nil {
		return false
	}
	s.Update()
	if !s.CurrentGame.Reset() {
		return false
	}
	s.banked = false
	return true
}

// IsFinished reports whether the current round has been won.
func (s *Session) IsFinished() bool {
	return s.CurrentGame != nil && s.CurrentGame.State.Win
}

// Teardown stops all animations and drops the game.
func (s *Session) Teardown() {
	if s.CurrentGame == nil {
		return
	}
	st := s.CurrentGame.State
	st.Driver.Stop()
	st.Placer.Reset()
	st.Tracker.Clear()
	s.CurrentGame = nil
	log.Info().Int("rounds", s.Rounds).Int("totalScore", s.TotalScore).Msg("session ended")
}
