package main

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"word-ring/internal/game"
	"word-ring/internal/geom"
	"word-ring/internal/puzzle"
	"word-ring/internal/state"
)

type paint int

const (
	plain paint = iota
	boxPaint
	filledPaint
	tilePaint
	highlightPaint
	segmentPaint
	badgePaint
	flyingPaint
	buttonPaint
	titlePaint
	scorePaint
	overlayPaint
	winPaint
	rejectPaint
)

var palette = map[paint]lipgloss.Style{
	boxPaint:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	filledPaint:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true), // Orange once a letter lands
	tilePaint:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	highlightPaint: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208")).Bold(true),
	segmentPaint:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	badgePaint:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true),
	flyingPaint:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	buttonPaint:    lipgloss.NewStyle().Reverse(true),
	titlePaint:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	scorePaint:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	overlayPaint:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("22")),
	winPaint:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Background(lipgloss.Color("22")).Bold(true),
	rejectPaint:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// badgeGlyphStyle is the style a preview letter is rendered with. Its rendered
// width drives the badge layout.
var badgeGlyphStyle = lipgloss.NewStyle().Bold(true)

func measureGlyph(glyph string) int {
	return lipgloss.Width(badgeGlyphStyle.Render(glyph))
}

type cell struct {
	ch rune
	p  paint
}

// canvas is a fixed grid of single-width cells, each with one paint.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		c.cells[y] = make([]cell, w)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{ch: ' '}
		}
	}
	return c
}

func (c *canvas) set(x, y int, ch rune, p paint) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{ch: ch, p: p}
}

func (c *canvas) text(x, y int, s string, p paint) {
	for _, r := range s {
		c.set(x, y, r, p)
		x++
	}
}

func (c *canvas) centered(y int, s string, p paint) {
	c.text((c.w-utf8.RuneCountInString(s))/2, y, s, p)
}

func (c *canvas) fill(x, y, w, h int, p paint) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.set(col, row, ' ', p)
		}
	}
}

func (c *canvas) box(x, y, w, h int, p paint) {
	if w < 2 || h < 2 {
		return
	}
	for col := x + 1; col < x+w-1; col++ {
		c.set(col, y, '─', p)
		c.set(col, y+h-1, '─', p)
	}
	for row := y + 1; row < y+h-1; row++ {
		c.set(x, row, '│', p)
		c.set(x+w-1, row, '│', p)
	}
	c.set(x, y, '┌', p)
	c.set(x+w-1, y, '┐', p)
	c.set(x, y+h-1, '└', p)
	c.set(x+w-1, y+h-1, '┘', p)
}

// line plots a straight segment between two screen points.
func (c *canvas) line(from, to geom.Point, ch rune, p paint) {
	d := to.Sub(from)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	if steps == 0 {
		return
	}
	for i := 0; i <= steps; i++ {
		x, y := from.Lerp(to, float64(i)/float64(steps)).Round()
		c.set(x, y, ch, p)
	}
}

// row returns the unstyled text of row y.
func (c *canvas) row(y int) string {
	var b strings.Builder
	for _, cl := range c.cells[y] {
		b.WriteRune(cl.ch)
	}
	return b.String()
}

func (c *canvas) String() string {
	var b strings.Builder
	for y, cells := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(cells); x++ {
			if x < len(cells) && cells[x].p == cells[start].p {
				continue
			}
			var run strings.Builder
			for _, cl := range cells[start:x] {
				run.WriteRune(cl.ch)
			}
			if p := cells[start].p; p == plain {
				b.WriteString(run.String())
			} else {
				b.WriteString(palette[p].Render(run.String()))
			}
			start = x
		}
	}
	return b.String()
}

// button is a one-line clickable label centred on a point.
type button struct {
	label  string
	center geom.Point
}

func (b button) bounds() (x0, x1, y int) {
	w := utf8.RuneCountInString(b.label)
	cx, cy := b.center.Round()
	x0 = cx - w/2
	return x0, x0 + w - 1, cy
}

func (b button) contains(x, y int) bool {
	x0, x1, by := b.bounds()
	return y == by && x >= x0 && x <= x1
}

func (b button) draw(c *canvas) {
	x0, _, y := b.bounds()
	c.text(x0, y, b.label, buttonPaint)
}

func playButton(g geom.Geometry) button {
	return button{label: "[ Play Game ]", center: geom.Point{X: float64(g.ScreenWidth / 2), Y: float64(g.ScreenHeight / 2)}}
}

func shuffleButton(g geom.Geometry) button {
	return button{label: "[ Shuffle ]", center: g.ShuffleButton}
}

func restartButton(g geom.Geometry) button {
	return button{label: "[ Restart ]", center: geom.Point{X: float64(g.ScreenWidth / 2), Y: float64(g.ScreenHeight/2 + 1)}}
}

func renderStart(c *canvas, p *puzzle.Puzzle, g geom.Geometry) {
	mid := g.ScreenHeight / 2
	c.centered(mid-5, "W O R D   R I N G", titlePaint)
	c.centered(mid-3, fmt.Sprintf("Puzzle: %s (%d words)", p.Title, len(p.Words)), plain)
	c.centered(mid-2, "Drag across the letters to spell a word, then let go.", plain)
	playButton(g).draw(c)
}

func renderGame(c *canvas, sess *game.Session) {
	st := sess.CurrentGame.State
	g := st.Geometry

	renderStatus(c, st, sess)
	renderBoard(c, st)
	renderMessage(c, st)
	renderSegments(c, st)
	renderTiles(c, st)
	renderBadge(c, st)
	renderFlying(c, st)
	if st.Phase() != state.Won {
		shuffleButton(g).draw(c)
	}
	if sess.IsFinished() {
		renderCongrats(c, sess)
	}
}

func renderStatus(c *canvas, st *state.State, sess *game.Session) {
	c.text(1, 0, strings.ToUpper(st.Puzzle.Title), titlePaint)
	status := fmt.Sprintf("SCORE: %d | WORDS: %d/%d | SHUFFLES: %d",
		st.Score.CurrentScore, len(st.Found), len(st.Puzzle.Words), st.Score.Shuffles)
	if sess.Rounds > 0 {
		status += fmt.Sprintf(" | TOTAL: %d", sess.TotalScore)
	}
	c.text(c.w-utf8.RuneCountInString(status)-1, 0, status, scorePaint)
}

func renderBoard(c *canvas, st *state.State) {
	g := st.Geometry
	for _, cl := range st.Board.Cells() {
		x, y := cl.Origin.Round()
		p := boxPaint
		if cl.Filled {
			p = filledPaint
		}
		c.box(x, y, g.CellWidth, g.CellHeight, p)
		if !cl.Empty() {
			cx, cy := cl.Center.Round()
			c.set(cx, cy, cl.Occupant, filledPaint)
		}
	}
}

func renderMessage(c *canvas, st *state.State) {
	if st.LastWord == "" || st.Phase() != state.Idle || st.Tracker.Active() {
		return
	}
	y := int(st.Geometry.BadgeY) - 2
	switch st.LastVerdict {
	case puzzle.Repeat:
		c.centered(y, fmt.Sprintf("Already found: %s", st.LastWord), rejectPaint)
	case puzzle.Invalid:
		c.centered(y, fmt.Sprintf("Not in this puzzle: %s", st.LastWord), rejectPaint)
	}
}

func renderSegments(c *canvas, st *state.State) {
	for _, s := range st.Tracker.Segments() {
		c.line(s.From.Screen(), s.To.Screen(), '·', segmentPaint)
	}
	tiles := st.Tracker.Tiles()
	if st.IsSelecting() && st.PointerDown && len(tiles) > 0 {
		c.line(tiles[len(tiles)-1].Screen(), st.Pointer, '·', segmentPaint)
	}
}

func renderTiles(c *canvas, st *state.State) {
	for _, t := range st.Ring.Tiles() {
		x, y := t.Screen().Round()
		p := tilePaint
		if t.Highlighted {
			p = highlightPaint
		}
		c.set(x-1, y, ' ', p)
		c.set(x, y, t.Char, p)
		c.set(x+1, y, ' ', p)
	}
}

func renderBadge(c *canvas, st *state.State) {
	b := st.Tracker.Badge()
	if b == nil || len(b.Glyphs) == 0 {
		return
	}
	x, y := b.Origin.Round()
	c.fill(x, y, b.Width, b.Height, badgePaint)
	for i, gl := range b.Glyphs {
		center := b.GlyphCenter(i)
		gx := int(math.Round(center.X - float64(gl.Width)/2))
		_, gy := center.Round()
		c.set(gx, gy, gl.Char, badgePaint)
	}
}

func renderFlying(c *canvas, st *state.State) {
	for _, gl := range st.Placer.Flying() {
		x, y := gl.Pos.Round()
		c.set(x, y, gl.Char, flyingPaint)
	}
}

func renderCongrats(c *canvas, sess *game.Session) {
	st := sess.CurrentGame.State
	g := st.Geometry
	w, h := 40, 7
	x := (g.ScreenWidth - w) / 2
	y := g.ScreenHeight/2 - 4

	c.fill(x, y, w, h, overlayPaint)
	c.box(x, y, w, h, overlayPaint)
	c.centered(y+1, "Congratulations!", winPaint)
	c.centered(y+2, "You found every word.", overlayPaint)
	c.centered(y+3, fmt.Sprintf("Score: %d   Total: %d", st.Score.CurrentScore, sess.TotalScore), overlayPaint)
	restartButton(g).draw(c)
}
