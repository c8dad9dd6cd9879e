package ring

import (
	"strings"

	"word-ring/internal/geom"
)

// Tile is one letter on the ring.
type Tile struct {
	ID          int
	Char        rune
	Slot        int
	Pos         geom.Point
	Offset      float64 // horizontal shake offset, 0 at rest
	Highlighted bool
}

// Glyph returns the tile's letter as a string.
func (t *Tile) Glyph() string {
	return string(t.Char)
}

// Screen returns where the tile is drawn, including any shake offset.
func (t *Tile) Screen() geom.Point {
	return geom.Point{X: t.Pos.X + t.Offset, Y: t.Pos.Y}
}

// Ring owns the letter tiles and their slot order.
type Ring struct {
	tiles    []*Tile
	geometry geom.Geometry
	nextID   int
}

// New creates a ring for letters. Tiles start at the ring centre; callers move
// them to their slots with Targets.
func New(letters []rune, g geom.Geometry) *Ring {
	r := &Ring{geometry: g}
	r.SetLetters(letters)
	return r
}

// SetLetters makes the ring hold letters in the given order. Existing tiles are
// reused for matching characters; tiles are only created for characters the
// ring did not already have and dropped for characters it no longer needs.
func (r *Ring) SetLetters(letters []rune) {
	pool := make(map[rune][]*Tile)
	for _, t := range r.tiles {
		pool[t.Char] = append(pool[t.Char], t)
	}

	tiles := make([]*Tile, 0, len(letters))
	for i, ch := range letters {
		var t *Tile
		if avail := pool[ch]; len(avail) > 0 {
			t = avail[0]
			pool[ch] = avail[1:]
		} else {
			t = &Tile{ID: r.nextID, Char: ch, Pos: r.geometry.RingCenter}
			r.nextID++
		}
		t.Slot = i
		tiles = append(tiles, t)
	}
	r.tiles = tiles
}

// Tiles returns the tiles in slot order.
func (r *Ring) Tiles() []*Tile {
	return r.tiles
}

// Len returns the number of tiles.
func (r *Ring) Len() int {
	return len(r.tiles)
}

// Order returns the letters concatenated in slot order.
func (r *Ring) Order() string {
	var b strings.Builder
	for _, t := range r.tiles {
		b.WriteRune(t.Char)
	}
	return b.String()
}

// Target returns the resting position of t's slot.
func (r *Ring) Target(t *Tile) geom.Point {
	return r.geometry.SlotPosition(t.Slot, len(r.tiles))
}

// Targets returns each tile's resting position, indexed like Tiles.
func (r *Ring) Targets() []geom.Point {
	out := make([]geom.Point, len(r.tiles))
	for i, t := range r.tiles {
		out[i] = r.Target(t)
	}
	return out
}

// Settle puts every tile at its slot immediately.
func (r *Ring) Settle() {
	for _, t := range r.tiles {
		t.Pos = r.Target(t)
		t.Offset = 0
	}
}

// HitZone returns the circular zone that selects t. It follows the tile as
// drawn, shake offset included.
func (r *Ring) HitZone(t *Tile) geom.Circle {
	return r.geometry.HitZone(t.Screen())
}

// Hit returns the tile whose hit zone contains p, or nil.
func (r *Ring) Hit(p geom.Point) *Tile {
	for _, t := range r.tiles {
		if r.HitZone(t).Contains(p) {
			return t
		}
	}
	return nil
}

// Unhighlight clears highlight and shake state on every tile.
func (r *Ring) Unhighlight() {
	for _, t := range r.tiles {
		t.Highlighted = false
		t.Offset = 0
	}
}

// Reorder adopts order as the new slot order. order must hold exactly the
// ring's tiles.
func (r *Ring) Reorder(order []*Tile) {
	r.tiles = order
	for i, t := range r.tiles {
		t.Slot = i
	}
}
