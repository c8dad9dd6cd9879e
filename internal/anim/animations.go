package anim

import (
	"math"

	"word-ring/internal/geom"
)

const (
	// MoveFrames is how long ring repositioning and letter flights last.
	MoveFrames = 40
	// FlightRate is the share of the remaining distance a flying letter covers
	// each frame.
	FlightRate = 0.2
	// ShakeFrames is the length of the rejection shake.
	ShakeFrames = 11
	// ShakeAmplitude is the widest shake offset, in columns.
	ShakeAmplitude = 1.5
)

// Tween moves a point linearly from its starting value to a target.
type Tween struct {
	pos    *geom.Point
	from   geom.Point
	to     geom.Point
	step   int
	frames int
}

// NewTween returns a tween that moves *pos to `to` over frames steps.
func NewTween(pos *geom.Point, to geom.Point, frames int) *Tween {
	return &Tween{pos: pos, from: *pos, to: to, frames: max(frames, 1)}
}

func (t *Tween) Step() bool {
	t.step++
	progress := float64(t.step) / float64(t.frames)
	if progress >= 1 {
		*t.pos = t.to
		return true
	}
	*t.pos = t.from.Lerp(t.to, progress)
	return false
}

// Shake oscillates a horizontal offset and restores it to zero at the end.
type Shake struct {
	offset    *float64
	step      int
	frames    int
	amplitude float64
}

// NewShake returns the standard rejection shake for *offset.
func NewShake(offset *float64) *Shake {
	return &Shake{offset: offset, frames: ShakeFrames, amplitude: ShakeAmplitude}
}

func (s *Shake) Step() bool {
	s.step++
	if s.step >= s.frames {
		*s.offset = 0
		return true
	}
	*s.offset = math.Sin(float64(s.step)*0.5) * s.amplitude
	return false
}

// Glyph is a transient letter drawn while it flies to the board.
type Glyph struct {
	Char rune
	Pos  geom.Point
}

// Flight eases a glyph toward a target, covering a fixed share of the
// remaining distance each frame, and calls land on its last frame.
type Flight struct {
	glyph  *Glyph
	target geom.Point
	rate   float64
	step   int
	frames int
	land   func()
}

// NewFlight returns a flight of g to target that calls land when it arrives.
func NewFlight(g *Glyph, target geom.Point, land func()) *Flight {
	return &Flight{glyph: g, target: target, rate: FlightRate, frames: MoveFrames, land: land}
}

func (f *Flight) Step() bool {
	f.step++
	f.glyph.Pos = f.glyph.Pos.Lerp(f.target, f.rate)
	if f.step < f.frames {
		return false
	}
	if f.land != nil {
		f.land()
	}
	return true
}
