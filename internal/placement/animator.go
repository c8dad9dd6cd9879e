package placement

import (
	"slices"

	"word-ring/internal/anim"
	"word-ring/internal/board"
	"word-ring/internal/geom"
)

// Preview is the floating badge a placement consumes.
type Preview interface {
	DiscardPreview()
}

// batch tracks the letters of one word on their way to the board.
type batch struct {
	word      string
	expected  int
	completed int
	anyPlaced bool
	done      bool
	onDone    func(placed bool)
}

// Animator flies the letters of newly found words into their board cells.
type Animator struct {
	board   *board.Board
	layouts map[string][]string
	driver  *anim.Driver
	preview Preview

	// Landed, if set, is called once for every letter written to the board.
	Landed func(key string, ch rune)

	flying      []*anim.Glyph
	outstanding int
}

// NewAnimator returns an animator that places words from layouts onto b and
// runs its flights on driver.
func NewAnimator(b *board.Board, layouts map[string][]string, driver *anim.Driver, preview Preview) *Animator {
	return &Animator{board: b, layouts: layouts, driver: driver, preview: preview}
}

// Place sends each letter of word from sources[i] to its cell. Cells that are
// missing or already occupied are skipped but still counted. onDone is called
// exactly once, after every letter is accounted for, with whether any letter
// was actually placed.
func (a *Animator) Place(word string, sources []geom.Point, onDone func(placed bool)) {
	keys, ok := a.layouts[word]
	if !ok {
		a.discardPreview()
		onDone(false)
		return
	}
	if len(keys) == 0 {
		onDone(false)
		return
	}

	b := &batch{word: word, expected: len(keys), onDone: onDone}
	a.outstanding++

	for i, key := range keys {
		cell, ok := a.board.Cell(key)
		if !ok || !cell.Empty() {
			a.complete(b)
			continue
		}

		b.anyPlaced = true
		ch := rune(word[i])
		g := &anim.Glyph{Char: ch, Pos: sourceAt(sources, i, cell.Center)}
		a.flying = append(a.flying, g)

		a.driver.Start(anim.NewFlight(g, cell.Center, func() {
			a.land(g)
			if a.board.Fill(cell.Key, ch) && a.Landed != nil {
				a.Landed(cell.Key, ch)
			}
			a.complete(b)
		}))
	}
}

// complete counts one letter of b and finishes the batch on the last one.
func (a *Animator) complete(b *batch) {
	b.completed++
	if b.done || b.completed < b.expected {
		return
	}
	b.done = true
	a.outstanding--
	a.discardPreview()
	b.onDone(b.anyPlaced)
}

func (a *Animator) land(g *anim.Glyph) {
	a.flying = slices.DeleteFunc(a.flying, func(f *anim.Glyph) bool { return f == g })
}

func (a *Animator) discardPreview() {
	if a.preview != nil {
		a.preview.DiscardPreview()
	}
}

// Flying returns the glyphs currently in the air.
func (a *Animator) Flying() []*anim.Glyph {
	return a.flying
}

// Busy reports whether any placement batch is still outstanding.
func (a *Animator) Busy() bool {
	return a.outstanding > 0
}

// Reset forgets any glyphs still in the air. Callers stop the driver first.
func (a *Animator) Reset() {
	a.flying = nil
	a.outstanding = 0
}

func sourceAt(sources []geom.Point, i int, fallback geom.Point) geom.Point {
	if i < len(sources) {
		return sources[i]
	}
	return fallback
}
