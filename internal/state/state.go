package state

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog/log"

	"word-ring/internal/anim"
	"word-ring/internal/board"
	"word-ring/internal/geom"
	"word-ring/internal/placement"
	"word-ring/internal/puzzle"
	"word-ring/internal/ring"
	"word-ring/internal/scoring"
	"word-ring/internal/selection"
)

// Phases of a game.
const (
	Start      = "start"
	Idle       = "idle"
	Selecting  = "selecting"
	Validating = "validating"
	Placing    = "placing"
	Won        = "won"
)

// GameOptions configures a new game.
type GameOptions struct {
	Seed    int64             // 0 picks a time-based seed
	Measure selection.Measure // glyph width for the preview badge
}

// State is everything one game owns, driven by its state machine.
type State struct {
	Puzzle   *puzzle.Puzzle
	Geometry geom.Geometry
	Board    *board.Board
	Ring     *ring.Ring
	Tracker  *selection.Tracker
	Placer   *placement.Animator
	Driver   *anim.Driver
	Found    map[string]bool
	Score    *scoring.Scoring
	FSM      *fsm.FSM
	Options  GameOptions

	PointerDown bool
	Pointer     geom.Point
	LastWord    string         // last word that reached validation
	LastVerdict puzzle.Verdict // classification of LastWord
	Win         bool

	rng *rand.Rand
}

// NewState builds a game for p in the start phase.
func NewState(p *puzzle.Puzzle, g geom.Geometry, opts GameOptions) *State {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &State{
		Puzzle:   p,
		Geometry: g,
		Board:    board.New(p.Cells, g),
		Ring:     ring.New(p.Letters, g),
		Driver:   anim.NewDriver(),
		Found:    make(map[string]bool, len(p.Words)),
		Score:    scoring.InitScoring(),
		Options:  opts,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.Tracker = selection.NewTracker(s.Ring.HitZone, selection.StyleFromGeometry(g), opts.Measure)
	s.Placer = placement.NewAnimator(s.Board, p.Layouts, s.Driver, s.Tracker)
	s.Placer.Landed = func(string, rune) {
		s.Score.ScoreEvent("letterPlaced")
	}

	s.FSM = fsm.NewFSM(
		Start,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Relayout tweens every tile to its slot. Tweens are keyed per tile so a newer
// layout replaces one still in progress.
func (s *State) Relayout() {
	for _, t := range s.Ring.Tiles() {
		s.Driver.StartKeyed(fmt.Sprintf("tile:%d", t.ID), anim.NewTween(&t.Pos, s.Ring.Target(t), anim.MoveFrames))
	}
}

// Shuffle reorders the ring if the game is idle.
func (s *State) Shuffle() bool {
	if s.FSM.Current() != Idle {
		return false
	}
	changed := s.Ring.Shuffle(s.rng)
	s.Score.ScoreEvent("shuffle")
	s.Relayout()
	log.Debug().Str("order", s.Ring.Order()).Bool("changed", changed).Msg("ring shuffled")
	return changed
}

// reject shakes the selected tiles.
func (s *State) reject() {
	for _, t := range s.Tracker.Tiles() {
		s.Driver.Start(anim.NewShake(&t.Offset))
	}
	s.Score.ScoreEvent("rejected")
}

// Fire triggers event and logs a failure. Events that cannot apply in the
// current phase are reported at debug level; anything else is an error.
func (s *State) Fire(ctx context.Context, event string, args ...interface{}) error {
	err := s.FSM.Event(ctx, event, args...)
	if err == nil {
		return nil
	}
	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		log.Debug().Err(err).Str("event", event).Str("phase", s.FSM.Current()).Msg("event refused")
	} else {
		log.Error().Err(err).Str("event", event).Str("phase", s.FSM.Current()).Msg("event failed")
	}
	return err
}

// finishPlacement runs once per placement batch, usually from a driver tick
// long after the event that started the placement has returned.
func (s *State) finishPlacement(ctx context.Context, word string, placed bool) {
	if placed {
		s.Found[word] = true
		s.Score.ScoreEvent("wordFound")
	}
	s.Tracker.Clear()
	log.Info().Str("word", word).Bool("placed", placed).Int("found", len(s.Found)).Int("total", len(s.Puzzle.Words)).Msg("placement finished")

	if s.IsWon() {
		s.Win = true
		s.Score.ScoreEvent("puzzleSolved")
		s.Fire(ctx, "win")
		return
	}
	s.Fire(ctx, "placed")
}

// resetRound clears everything a round produced. Cell and tile identities
// survive; their contents and positions are restored.
func (s *State) resetRound() {
	s.Driver.Stop()
	s.Placer.Reset()
	clear(s.Found)
	s.Board.Clear()
	s.Tracker.Clear()
	s.Ring.Unhighlight()
	s.Relayout()
	s.Score.Reset()
	s.Win = false
	s.PointerDown = false
	s.LastWord = ""
	s.LastVerdict = puzzle.Invalid
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "initGame", Src: []string{Start}, Dst: Idle},

		// Gesture
		{Name: "press", Src: []string{Idle}, Dst: Selecting},
		{Name: "release", Src: []string{Selecting}, Dst: Validating},
		{Name: "cancel", Src: []string{Selecting}, Dst: Idle},

		// Validation outcomes
		{Name: "discard", Src: []string{Validating}, Dst: Idle},
		{Name: "reject", Src: []string{Validating}, Dst: Idle},
		{Name: "match", Src: []string{Validating}, Dst: Placing},

		// Placement outcomes
		{Name: "placed", Src: []string{Placing}, Dst: Idle},
		{Name: "win", Src: []string{Placing}, Dst: Won},

		{Name: "reset", Src: []string{Won, Idle}, Dst: Idle},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			log.Debug().Str("event", e.Event).Str("from", e.Src).Str("to", e.Dst).Msg("transition")
		},
		"enter_selecting": func(ctx context.Context, e *fsm.Event) {
			var tile *ring.Tile
			if len(e.Args) > 0 {
				tile, _ = e.Args[0].(*ring.Tile)
			}
			if !s.Tracker.Begin(tile) {
				s.Fire(ctx, "cancel")
			}
		},
		"enter_validating": func(ctx context.Context, e *fsm.Event) {
			word := s.Tracker.Word()
			if word == "" {
				s.Fire(ctx, "discard")
				return
			}

			s.LastWord = word
			s.LastVerdict = puzzle.Classify(word, s.Puzzle.Layouts, s.Found)
			log.Info().Str("word", word).Stringer("verdict", s.LastVerdict).Msg("selection validated")

			if s.LastVerdict == puzzle.NewMatch {
				s.Fire(ctx, "match")
				return
			}

			s.reject()
			s.Fire(ctx, "reject")
		},
		"enter_placing": func(ctx context.Context, e *fsm.Event) {
			word := s.LastWord
			// The event's context is cancelled once the event returns, and
			// flights land on later frames.
			done := context.WithoutCancel(ctx)
			s.Placer.Place(word, s.Tracker.Sources(), func(placed bool) {
				s.finishPlacement(done, word, placed)
			})
		},
		"enter_idle": func(_ context.Context, e *fsm.Event) {
			s.Tracker.Clear()
		},
		"enter_won": func(_ context.Context, e *fsm.Event) {
			log.Info().Int("score", s.Score.CurrentScore).Msg("puzzle solved")
		},
		"before_reset": func(_ context.Context, e *fsm.Event) {
			s.resetRound()
		},
	}
}
