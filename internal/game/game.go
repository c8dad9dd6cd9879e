package game

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog/log"

	"word-ring/internal/geom"
	"word-ring/internal/puzzle"
	"word-ring/internal/state"
)

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State *state.State
}

// NewGame initializes a new game instance.
func NewGame(p *puzzle.Puzzle, g geom.Geometry, opts state.GameOptions) *Game {
	return &Game{
		State: state.NewState(p, g, opts),
	}
}

// Init moves the game out of its start phase and sends the tiles to their
// slots.
func (g *Game) Init() {
	g.State.Fire(context.Background(), "initGame")
	g.State.Relayout()
}

// HandleTick advances every running animation by one frame.
func (g *Game) HandleTick() {
	g.State.Driver.Tick()
}

// HandlePointerDown starts a selection when the pointer goes down on a tile.
func (g *Game) HandlePointerDown(p geom.Point) {
	if !g.State.AcceptsPointer() {
		return
	}
	g.State.PointerDown = true
	g.State.Pointer = p

	if g.State.Phase() != state.Idle {
		return
	}
	if tile := g.State.Ring.Hit(p); tile != nil {
		g.State.Fire(context.Background(), "press", tile)
	}
}

// HandlePointerMove extends the selection with the first unselected tile
// under the pointer.
func (g *Game) HandlePointerMove(p geom.Point) {
	if !g.State.AcceptsPointer() {
		return
	}
	g.State.Pointer = p
	if !g.State.IsSelecting() || !g.State.PointerDown {
		return
	}
	for _, tile := range g.State.Ring.Tiles() {
		if g.State.Tracker.Extend(tile, p, g.State.PointerDown) {
			break
		}
	}
}

// HandlePointerUp ends the gesture and validates the selection.
func (g *Game) HandlePointerUp(p geom.Point) {
	g.State.PointerDown = false
	if !g.State.AcceptsPointer() {
		return
	}
	g.State.Pointer = p
	if g.State.IsSelecting() {
		g.State.Fire(context.Background(), "release")
		return
	}
	g.State.Tracker.Clear()
}

// HandleReleaseOutside handles a pointer release outside the play area: the
// gesture is abandoned without validation.
func (g *Game) HandleReleaseOutside() {
	g.State.PointerDown = false
	if g.State.IsSelecting() {
		g.State.Fire(context.Background(), "cancel")
	}
}

// Shuffle reorders the ring. It is refused unless the game is idle.
func (g *Game) Shuffle() bool {
	return g.State.Shuffle()
}

// Reset clears the round and returns to idle. It is allowed when idle or won.
func (g *Game) Reset() bool {
	err := g.State.FSM.Event(context.Background(), "reset")
	if err == nil || errors.As(err, &fsm.NoTransitionError{}) {
		return true
	}
	log.Debug().Err(err).Str("phase", g.State.Phase()).Msg("reset refused")
	return false
}

// Phase returns the current phase name.
func (g *Game) Phase() string {
	return g.State.Phase()
}
