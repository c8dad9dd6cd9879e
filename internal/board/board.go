package board

import (
	"word-ring/internal/geom"
	"word-ring/internal/puzzle"
)

// Cell is one square of the crossword board. Several words may share a cell.
type Cell struct {
	Key      string
	Col      int
	Row      int
	Origin   geom.Point // top-left corner on screen
	Center   geom.Point // where a landing letter is drawn
	Occupant rune       // 0 while empty
	Filled   bool
}

// Empty reports whether nothing has been placed in the cell yet.
func (c *Cell) Empty() bool {
	return c.Occupant == 0
}

// Board maps cell keys to cells. Cell identities live for the whole session;
// only their contents are cleared on reset.
type Board struct {
	cells map[string]*Cell
	order []string
}

// New builds a board from the puzzle's cell declarations.
func New(specs []puzzle.CellSpec, g geom.Geometry) *Board {
	b := &Board{
		cells: make(map[string]*Cell, len(specs)),
		order: make([]string, 0, len(specs)),
	}
	for _, s := range specs {
		b.cells[s.Key] = &Cell{
			Key:    s.Key,
			Col:    s.Col,
			Row:    s.Row,
			Origin: g.CellOrigin(s.Col, s.Row),
			Center: g.CellCenter(s.Col, s.Row),
		}
		b.order = append(b.order, s.Key)
	}
	return b
}

// Cell looks up a cell by key.
func (b *Board) Cell(key string) (*Cell, bool) {
	c, ok := b.cells[key]
	return c, ok
}

// Cells returns every cell in declaration order.
func (b *Board) Cells() []*Cell {
	out := make([]*Cell, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.cells[k])
	}
	return out
}

// Fill writes ch into the cell at key if the cell exists and is still empty.
// It reports whether the cell was written.
func (b *Board) Fill(key string, ch rune) bool {
	c, ok := b.cells[key]
	if !ok || !c.Empty() {
		return false
	}
	c.Occupant = ch
	c.Filled = true
	return true
}

// Clear empties every cell and restores its default appearance.
func (b *Board) Clear() {
	for _, c := range b.cells {
		c.Occupant = 0
		c.Filled = false
	}
}

// FilledCount returns how many cells hold a letter.
func (b *Board) FilledCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Filled {
			n++
		}
	}
	return n
}
