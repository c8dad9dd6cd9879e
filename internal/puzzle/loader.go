package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	titleRe   = regexp.MustCompile(`^title:\s*(.+)$`)
	lettersRe = regexp.MustCompile(`^letters:\s*([A-Za-z ]+)$`)
	cellRe    = regexp.MustCompile(`^cell\s+(\S+)\s+(\d+)\s+(\d+)$`)
	wordRe    = regexp.MustCompile(`^word\s+([A-Za-z]+)((?:\s+\S+)*)$`)
)

// LoadPuzzle reads a puzzle definition from a file.
//
// The format is line based; blank lines and lines starting with # are skipped:
//
//	title: Gold
//	letters: G O L D
//	cell G0 0 0
//	word GOLD G0 O0 L0 D0
func LoadPuzzle(path string) (*Puzzle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open puzzle %s: %w", path, err)
	}
	defer file.Close()

	p, err := Parse(file, path)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Parse reads a puzzle definition from r. source is used in error messages.
func Parse(r io.Reader, source string) (*Puzzle, error) {
	p := &Puzzle{
		Layouts: make(map[string][]string),
		Source:  source,
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := p.parseLine(line); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan puzzle %s: %w", source, err)
	}

	if p.Title == "" {
		p.Title = source
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid puzzle %s: %w", source, err)
	}
	return p, nil
}

func (p *Puzzle) parseLine(line string) error {
	if m := titleRe.FindStringSubmatch(line); m != nil {
		p.Title = strings.TrimSpace(m[1])
		return nil
	}

	if m := lettersRe.FindStringSubmatch(line); m != nil {
		if len(p.Letters) > 0 {
			return fmt.Errorf("letters declared twice")
		}
		p.Letters = []rune(strings.ToUpper(strings.ReplaceAll(m[1], " ", "")))
		return nil
	}

	if m := cellRe.FindStringSubmatch(line); m != nil {
		col, err := strconv.Atoi(m[2])
		if err != nil {
			return fmt.Errorf("bad column %q: %w", m[2], err)
		}
		row, err := strconv.Atoi(m[3])
		if err != nil {
			return fmt.Errorf("bad row %q: %w", m[3], err)
		}
		p.Cells = append(p.Cells, CellSpec{Key: m[1], Col: col, Row: row})
		return nil
	}

	if m := wordRe.FindStringSubmatch(line); m != nil {
		word := strings.ToUpper(m[1])
		if _, dup := p.Layouts[word]; dup {
			return fmt.Errorf("word %s declared twice", word)
		}
		p.Layouts[word] = strings.Fields(m[2])
		p.Words = append(p.Words, word)
		return nil
	}

	return fmt.Errorf("unrecognised line %q", line)
}
