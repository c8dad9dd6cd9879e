package puzzle

import (
	"fmt"
	"strings"
	"unicode"
)

// CellSpec declares one board cell and its grid coordinates.
type CellSpec struct {
	Key string
	Col int
	Row int
}

// Puzzle is the static definition of a single game: the letter ring, the
// board cells and the cells every target word fills.
type Puzzle struct {
	Title   string
	Letters []rune
	Cells   []CellSpec
	Layouts map[string][]string
	Words   []string // target words, in declaration order
	Source  string
}

// Default returns the built-in GOLD puzzle.
func Default() *Puzzle {
	return &Puzzle{
		Title:   "Gold",
		Letters: []rune("GOLD"),
		Cells: []CellSpec{
			{Key: "G0", Col: 0, Row: 0},
			{Key: "O0", Col: 1, Row: 0},
			{Key: "L0", Col: 2, Row: 0},
			{Key: "D0", Col: 3, Row: 0},
			{Key: "O1", Col: 0, Row: 1},
			{Key: "D1", Col: 0, Row: 2},
			{Key: "O2", Col: 2, Row: 1},
			{Key: "G2", Col: 2, Row: 2},
			{Key: "O3", Col: 1, Row: 2},
		},
		Layouts: map[string][]string{
			"GOLD": {"G0", "O0", "L0", "D0"},
			"GOD":  {"G0", "O1", "D1"},
			"LOG":  {"L0", "O2", "G2"},
			"DOG":  {"D1", "O3", "G2"},
		},
		Words:  []string{"GOLD", "GOD", "LOG", "DOG"},
		Source: "built-in",
	}
}

// Layout returns the ordered cell keys for word.
func (p *Puzzle) Layout(word string) ([]string, bool) {
	keys, ok := p.Layouts[word]
	return keys, ok
}

// Validate checks the puzzle for structural problems a loader cannot catch
// line by line.
func (p *Puzzle) Validate() error {
	if len(p.Letters) == 0 {
		return fmt.Errorf("puzzle %q has no letters", p.Title)
	}
	for _, r := range p.Letters {
		if !unicode.IsUpper(r) || r > unicode.MaxASCII {
			return fmt.Errorf("puzzle %q: letter %q is not A-Z", p.Title, r)
		}
	}
	if len(p.Words) == 0 {
		return fmt.Errorf("puzzle %q has no words", p.Title)
	}

	cells := make(map[string]bool, len(p.Cells))
	for _, c := range p.Cells {
		if cells[c.Key] {
			return fmt.Errorf("puzzle %q: cell %s declared twice", p.Title, c.Key)
		}
		cells[c.Key] = true
	}

	for _, word := range p.Words {
		keys, ok := p.Layouts[word]
		if !ok {
			return fmt.Errorf("puzzle %q: word %s has no layout", p.Title, word)
		}
		if len(keys) != len(word) {
			return fmt.Errorf("puzzle %q: word %s has %d cells, expected %d", p.Title, word, len(keys), len(word))
		}
		seen := make(map[string]bool, len(keys))
		for _, k := range keys {
			if !cells[k] {
				return fmt.Errorf("puzzle %q: word %s uses undeclared cell %s", p.Title, word, k)
			}
			if seen[k] {
				return fmt.Errorf("puzzle %q: word %s uses cell %s twice", p.Title, word, k)
			}
			seen[k] = true
		}
		if !spellable(word, p.Letters) {
			return fmt.Errorf("puzzle %q: word %s cannot be spelled from %s", p.Title, word, string(p.Letters))
		}
	}

	return p.checkIntersections()
}

// checkIntersections makes sure every word sharing a cell agrees on the
// letter that goes in it.
func (p *Puzzle) checkIntersections() error {
	letterAt := make(map[string]rune)
	owner := make(map[string]string)
	for _, word := range p.Words {
		for i, k := range p.Layouts[word] {
			r := rune(word[i])
			if prev, ok := letterAt[k]; ok && prev != r {
				return fmt.Errorf("puzzle %q: cell %s is %c in %s but %c in %s", p.Title, k, prev, owner[k], r, word)
			}
			letterAt[k] = r
			owner[k] = word
		}
	}
	return nil
}

// spellable reports whether word uses each ring letter at most once.
func spellable(word string, letters []rune) bool {
	counts := make(map[rune]int, len(letters))
	for _, r := range letters {
		counts[r]++
	}
	for _, r := range strings.ToUpper(word) {
		counts[r]--
		if counts[r] < 0 {
			return false
		}
	}
	return true
}
