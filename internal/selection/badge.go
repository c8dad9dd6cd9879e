package selection

import (
	"unicode/utf8"

	"word-ring/internal/geom"
)

// Measure returns the rendered width of a single glyph.
type Measure func(glyph string) int

// RuneMeasure treats every glyph as one column wide. The terminal frontend
// injects a measure based on the styled, rendered glyph instead.
func RuneMeasure(glyph string) int {
	return utf8.RuneCountInString(glyph)
}

// BadgeGlyph is one letter inside the preview badge. X is its centre,
// relative to the badge's left edge.
type BadgeGlyph struct {
	Char  rune
	X     float64
	Width int
}

// Badge is the floating preview of the word being selected.
type Badge struct {
	Origin geom.Point // top-left corner
	Width  int
	Height int
	Glyphs []BadgeGlyph
}

// GlyphCenter returns the on-screen centre of glyph i.
func (b *Badge) GlyphCenter(i int) geom.Point {
	return geom.Point{
		X: b.Origin.X + b.Glyphs[i].X,
		Y: b.Origin.Y + float64(b.Height/2),
	}
}

// BadgeStyle holds the badge's fixed measurements.
type BadgeStyle struct {
	PadX        int
	Spacing     int
	Height      int
	Y           float64
	ScreenWidth int
}

// layoutBadge measures every glyph and packs them left to right with fixed
// spacing, then centres the badge horizontally.
func layoutBadge(chars []rune, style BadgeStyle, measure Measure) *Badge {
	b := &Badge{Height: style.Height}

	total := 0
	for _, ch := range chars {
		w := measure(string(ch))
		b.Glyphs = append(b.Glyphs, BadgeGlyph{Char: ch, Width: w})
		total += w + style.Spacing
	}
	if len(chars) > 0 {
		total -= style.Spacing
	}
	b.Width = total + style.PadX*2

	x := style.PadX
	for i := range b.Glyphs {
		b.Glyphs[i].X = float64(x) + float64(b.Glyphs[i].Width)/2
		x += b.Glyphs[i].Width + style.Spacing
	}

	b.Origin = geom.Point{
		X: float64(style.ScreenWidth-b.Width) / 2,
		Y: style.Y,
	}
	return b
}
