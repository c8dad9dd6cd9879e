package selection

import (
	"slices"
	"strings"

	"word-ring/internal/geom"
	"word-ring/internal/ring"
)

// Segment is the connecting line drawn between two consecutively selected
// tiles. It follows the tiles if they move.
type Segment struct {
	From *ring.Tile
	To   *ring.Tile
}

// Tracker accumulates the tiles chosen during one gesture.
type Tracker struct {
	tiles    []*ring.Tile
	segments []Segment
	badge    *Badge

	zone    func(*ring.Tile) geom.Circle
	style   BadgeStyle
	measure Measure
}

// NewTracker returns an empty tracker. zone gives the hit circle of a tile and
// measure the rendered width of a glyph.
func NewTracker(zone func(*ring.Tile) geom.Circle, style BadgeStyle, measure Measure) *Tracker {
	if measure == nil {
		measure = RuneMeasure
	}
	return &Tracker{zone: zone, style: style, measure: measure}
}

// StyleFromGeometry derives the badge measurements from the screen geometry.
func StyleFromGeometry(g geom.Geometry) BadgeStyle {
	return BadgeStyle{
		PadX:        g.BadgePadX,
		Spacing:     g.BadgeSpacing,
		Height:      3,
		Y:           g.BadgeY,
		ScreenWidth: g.ScreenWidth,
	}
}

// Active reports whether a selection is in progress.
func (t *Tracker) Active() bool {
	return len(t.tiles) > 0
}

// Begin starts a selection with tile. It does nothing if a selection is
// already active.
func (t *Tracker) Begin(tile *ring.Tile) bool {
	if tile == nil || t.Active() {
		return false
	}
	t.add(tile)
	return true
}

// Extend appends tile if a selection is active, the pointer is down, the tile
// is not selected yet and p lies within the tile's hit zone.
func (t *Tracker) Extend(tile *ring.Tile, p geom.Point, down bool) bool {
	if tile == nil || !t.Active() || !down {
		return false
	}
	if slices.Contains(t.tiles, tile) {
		return false
	}
	if !t.zone(tile).Contains(p) {
		return false
	}

	t.segments = append(t.segments, Segment{From: t.tiles[len(t.tiles)-1], To: tile})
	t.add(tile)
	return true
}

func (t *Tracker) add(tile *ring.Tile) {
	t.tiles = append(t.tiles, tile)
	tile.Highlighted = true
	t.rebuildBadge()
}

func (t *Tracker) rebuildBadge() {
	chars := make([]rune, len(t.tiles))
	for i, tile := range t.tiles {
		chars[i] = tile.Char
	}
	t.badge = layoutBadge(chars, t.style, t.measure)
}

// Clear removes highlights, segments and the badge and empties the
// selection. Calling it with nothing selected is a no-op.
func (t *Tracker) Clear() {
	for _, tile := range t.tiles {
		tile.Highlighted = false
	}
	t.tiles = nil
	t.segments = nil
	t.badge = nil
}

// DiscardPreview drops the preview badge but keeps the selection.
func (t *Tracker) DiscardPreview() {
	t.badge = nil
}

// Tiles returns the selected tiles in gesture order.
func (t *Tracker) Tiles() []*ring.Tile {
	return t.tiles
}

// Segments returns the connecting lines in the order they were drawn.
func (t *Tracker) Segments() []Segment {
	return t.segments
}

// Badge returns the preview badge, or nil when there is none.
func (t *Tracker) Badge() *Badge {
	return t.badge
}

// Word returns the selected glyphs concatenated and upper-cased.
func (t *Tracker) Word() string {
	var b strings.Builder
	for _, tile := range t.tiles {
		b.WriteRune(tile.Char)
	}
	return strings.ToUpper(b.String())
}

// Sources returns where each selected letter should launch from when it
// flies to the board: the badge glyphs if the badge is shown, otherwise the
// tiles themselves.
func (t *Tracker) Sources() []geom.Point {
	out := make([]geom.Point, len(t.tiles))
	for i, tile := range t.tiles {
		if t.badge != nil && i < len(t.badge.Glyphs) {
			out[i] = t.badge.GlyphCenter(i)
			continue
		}
		out[i] = tile.Screen()
	}
	return out
}
