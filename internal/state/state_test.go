package state

import (
	"context"
	"errors"
	"testing"

	"github.com/looplab/fsm"

	"word-ring/internal/anim"
	"word-ring/internal/geom"
	"word-ring/internal/puzzle"
	"word-ring/internal/ring"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	s := NewState(puzzle.Default(), geom.DefaultGeometry(), GameOptions{Seed: 1})
	if err := s.FSM.Event(context.Background(), "initGame"); err != nil {
		t.Fatalf("initGame failed: %v", err)
	}
	s.Ring.Settle()
	return s
}

func tileFor(s *State, ch rune) *ring.Tile {
	for _, t := range s.Ring.Tiles() {
		if t.Char == ch {
			return t
		}
	}
	return nil
}

// spell drives the state machine through one gesture selecting word.
func spell(t *testing.T, s *State, word string) {
	t.Helper()
	ctx := context.Background()
	first := tileFor(s, rune(word[0]))
	if err := s.FSM.Event(ctx, "press", first); err != nil {
		t.Fatalf("press failed in %s: %v", s.Phase(), err)
	}
	for _, ch := range word[1:] {
		tile := tileFor(s, ch)
		if !s.Tracker.Extend(tile, tile.Pos, true) {
			t.Fatalf("could not extend with %c", ch)
		}
	}
	_ = s.FSM.Event(ctx, "release")
}

func TestState_InitialPhase(t *testing.T) {
	s := NewState(puzzle.Default(), geom.DefaultGeometry(), GameOptions{Seed: 1})
	if s.Phase() != Start {
		t.Errorf("expected %s, got %s", Start, s.Phase())
	}
	if s.AcceptsPointer() {
		t.Error("pointer should be refused before initGame")
	}
	_ = s.FSM.Event(context.Background(), "initGame")
	if s.Phase() != Idle {
		t.Errorf("expected %s, got %s", Idle, s.Phase())
	}
}

func TestState_NewMatchPlacesWord(t *testing.T) {
	s := newTestState(t)
	spell(t, s, "GOLD")

	if s.LastVerdict != puzzle.NewMatch {
		t.Fatalf("expected NewMatch, got %v", s.LastVerdict)
	}
	if s.Phase() != Placing {
		t.Fatalf("expected %s, got %s", Placing, s.Phase())
	}
	if s.AcceptsPointer() {
		t.Error("pointer must be locked while placing")
	}

	s.Driver.Run(1000)

	if s.Phase() != Idle {
		t.Errorf("expected %s after placement, got %s", Idle, s.Phase())
	}
	if !s.Found["GOLD"] || len(s.Found) != 1 {
		t.Errorf("expected found = {GOLD}, got %v", s.Found)
	}
	for i, key := range []string{"G0", "O0", "L0", "D0"} {
		c, _ := s.Board.Cell(key)
		if c.Occupant != rune("GOLD"[i]) {
			t.Errorf("%s: expected %c, got %q", key, "GOLD"[i], c.Occupant)
		}
	}
	if s.Tracker.Active() || s.Tracker.Badge() != nil {
		t.Error("selection should be cleared after placement")
	}
	if s.Score.WordsFound != 1 || s.Score.LettersPlaced != 4 {
		t.Errorf("unexpected score counters: %+v", s.Score)
	}
}

func TestState_PlacementFinishesAfterEventReturns(t *testing.T) {
	s := newTestState(t)
	ctx := context.Background()

	for _, w := range []string{"GOLD", "GOD"} {
		spell(t, s, w)
		if s.Phase() != Placing {
			t.Fatalf("%s: expected %s, got %s", w, Placing, s.Phase())
		}
		s.Driver.Run(1000)
		if s.Phase() != Idle {
			t.Fatalf("%s: expected %s once the letters land, got %s", w, Idle, s.Phase())
		}
	}
	if len(s.Found) != 2 {
		t.Errorf("expected 2 found words, got %v", s.Found)
	}

	if err := s.FSM.Event(ctx, "press", tileFor(s, 'L')); err != nil {
		t.Errorf("press after placement failed: %v", err)
	}
	if err := s.FSM.Event(ctx, "cancel"); err != nil {
		t.Errorf("cancel failed: %v", err)
	}
	if err := s.FSM.Event(ctx, "reset"); err != nil && !errors.As(err, &fsm.NoTransitionError{}) {
		t.Errorf("reset after placement failed: %v", err)
	}
	if len(s.Found) != 0 {
		t.Error("reset should clear the found set")
	}
}

func TestState_FireReportsRefusedEvents(t *testing.T) {
	s := newTestState(t)
	ctx := context.Background()

	if err := s.Fire(ctx, "placed"); err == nil {
		t.Error("placed should be refused while idle")
	}
	if s.Phase() != Idle {
		t.Errorf("a refused event must not move the game, got %s", s.Phase())
	}
	if err := s.Fire(ctx, "press", tileFor(s, 'G')); err != nil {
		t.Errorf("press should be accepted after a refused event: %v", err)
	}
}

func TestState_RepeatShakes(t *testing.T) {
	s := newTestState(t)
	spell(t, s, "GOLD")
	s.Driver.Run(1000)

	spell(t, s, "GOLD")
	if s.LastVerdict != puzzle.Repeat {
		t.Fatalf("expected Repeat, got %v", s.LastVerdict)
	}
	if s.Phase() != Idle {
		t.Errorf("expected %s, got %s", Idle, s.Phase())
	}
	if s.Driver.Active() != 4 {
		t.Errorf("expected 4 shakes, got %d", s.Driver.Active())
	}
	if len(s.Found) != 1 {
		t.Errorf("found set should be unchanged, got %v", s.Found)
	}
	if s.Tracker.Active() {
		t.Error("selection should be cleared after a repeat")
	}

	s.Driver.Run(100)
	for _, tile := range s.Ring.Tiles() {
		if tile.Offset != 0 {
			t.Errorf("tile %c should come to rest, offset %v", tile.Char, tile.Offset)
		}
	}
}

func TestState_InvalidSingleLetter(t *testing.T) {
	s := newTestState(t)
	s.Puzzle.Letters = append(s.Puzzle.Letters, 'X')
	s.Ring.SetLetters(s.Puzzle.Letters)
	s.Ring.Settle()

	spell(t, s, "X")
	if s.LastVerdict != puzzle.Invalid {
		t.Errorf("expected Invalid, got %v", s.LastVerdict)
	}
	if s.Phase() != Idle {
		t.Errorf("expected %s, got %s", Idle, s.Phase())
	}
	if s.Driver.Active() != 1 {
		t.Errorf("expected the X tile to shake, got %d animations", s.Driver.Active())
	}
	if s.Score.Rejections != 1 {
		t.Errorf("expected 1 rejection, got %d", s.Score.Rejections)
	}
}

func TestState_CancelClearsSelection(t *testing.T) {
	s := newTestState(t)
	ctx := context.Background()
	_ = s.FSM.Event(ctx, "press", tileFor(s, 'G'))
	if !s.IsSelecting() {
		t.Fatalf("expected %s, got %s", Selecting, s.Phase())
	}
	_ = s.FSM.Event(ctx, "cancel")
	if s.Phase() != Idle || s.Tracker.Active() {
		t.Error("cancel should return to idle with an empty selection")
	}
	if tileFor(s, 'G').Highlighted {
		t.Error("cancel should unhighlight tiles")
	}
}

func TestState_PressWithoutTileCancels(t *testing.T) {
	s := newTestState(t)
	_ = s.FSM.Event(context.Background(), "press")
	if s.Phase() != Idle {
		t.Errorf("press without a tile should fall back to %s, got %s", Idle, s.Phase())
	}
}

func TestState_WinOnlyWhenAllFound(t *testing.T) {
	s := newTestState(t)
	words := []string{"DOG", "GOLD", "LOG", "GOD"}

	for i, w := range words {
		spell(t, s, w)
		s.Driver.Run(1000)
		if i < len(words)-1 {
			if s.Win || s.Phase() == Won {
				t.Fatalf("won after only %d of %d words", i+1, len(words))
			}
		}
	}

	if !s.Win || s.Phase() != Won {
		t.Fatalf("expected %s after all words, got %s", Won, s.Phase())
	}
	if s.AcceptsPointer() {
		t.Error("pointer should be refused once won")
	}
	if s.Board.FilledCount() != 9 {
		t.Errorf("expected all 9 cells filled, got %d", s.Board.FilledCount())
	}
}

func TestState_ResetAndReplay(t *testing.T) {
	s := newTestState(t)
	ctx := context.Background()
	for _, w := range []string{"GOLD", "GOD", "LOG", "DOG"} {
		spell(t, s, w)
		s.Driver.Run(1000)
	}
	if s.Phase() != Won {
		t.Fatalf("expected %s, got %s", Won, s.Phase())
	}
	tiles := append([]*ring.Tile(nil), s.Ring.Tiles()...)

	if err := s.FSM.Event(ctx, "reset"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if s.Phase() != Idle {
		t.Fatalf("expected %s after reset, got %s", Idle, s.Phase())
	}
	if len(s.Found) != 0 || s.Win {
		t.Error("reset should clear the found set and win flag")
	}
	for _, c := range s.Board.Cells() {
		if !c.Empty() || c.Filled {
			t.Errorf("cell %s should be empty after reset", c.Key)
		}
	}
	for i, tile := range s.Ring.Tiles() {
		if tile != tiles[i] {
			t.Error("reset must reuse the ring tiles in their current order")
		}
	}
	if s.Score.CurrentScore != 0 {
		t.Errorf("score should reset, got %d", s.Score.CurrentScore)
	}

	s.Driver.Run(anim.MoveFrames)
	for _, w := range []string{"LOG", "DOG", "GOD", "GOLD"} {
		spell(t, s, w)
		s.Driver.Run(1000)
	}
	if s.Phase() != Won {
		t.Errorf("expected to win again after reset, got %s", s.Phase())
	}
}

func TestState_ResetFromIdle(t *testing.T) {
	s := newTestState(t)
	spell(t, s, "GOLD")
	s.Driver.Run(1000)

	_ = s.FSM.Event(context.Background(), "reset")
	if s.Phase() != Idle {
		t.Errorf("expected %s, got %s", Idle, s.Phase())
	}
	if len(s.Found) != 0 || s.Board.FilledCount() != 0 {
		t.Error("reset from idle should still clear the round")
	}
}

func TestState_ResetRefusedWhilePlacing(t *testing.T) {
	s := newTestState(t)
	spell(t, s, "GOLD")
	if err := s.FSM.Event(context.Background(), "reset"); err == nil {
		t.Error("reset must be refused while placing")
	}
	s.Driver.Run(1000)
	if !s.Found["GOLD"] {
		t.Error("placement should still finish")
	}
}

func TestState_ShuffleOnlyWhenIdle(t *testing.T) {
	s := newTestState(t)
	before := s.Ring.Order()

	if !s.Shuffle() {
		t.Fatal("shuffle in idle should change the order")
	}
	if s.Ring.Order() == before {
		t.Error("order should differ after shuffle")
	}
	if s.Driver.Active() != len(s.Ring.Tiles()) {
		t.Errorf("expected one tween per tile, got %d", s.Driver.Active())
	}

	_ = s.FSM.Event(context.Background(), "press", s.Ring.Tiles()[0])
	order := s.Ring.Order()
	if s.Shuffle() {
		t.Error("shuffle should be refused while selecting")
	}
	if s.Ring.Order() != order {
		t.Error("refused shuffle must not reorder")
	}
}

func TestState_ShuffleMovesTilesToNewSlots(t *testing.T) {
	s := newTestState(t)
	s.Shuffle()
	s.Driver.Run(anim.MoveFrames)
	for _, tile := range s.Ring.Tiles() {
		if tile.Pos != s.Ring.Target(tile) {
			t.Errorf("tile %c should rest at slot %d", tile.Char, tile.Slot)
		}
	}
}

func TestState_RemainingWords(t *testing.T) {
	s := newTestState(t)
	spell(t, s, "LOG")
	s.Driver.Run(1000)

	found := s.FoundWords()
	if len(found) != 1 || found[0] != "LOG" {
		t.Errorf("expected [LOG], got %v", found)
	}
	remaining := s.RemainingWords()
	if len(remaining) != 3 || remaining[0] != "GOLD" {
		t.Errorf("expected GOLD, GOD, DOG remaining, got %v", remaining)
	}
}
