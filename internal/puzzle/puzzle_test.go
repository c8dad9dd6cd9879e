package puzzle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const goldPuzzle = `# the built-in puzzle, spelled out
title: Gold
letters: G O L D

cell G0 0 0
cell O0 1 0
cell L0 2 0
cell D0 3 0
cell O1 0 1
cell D1 0 2
cell O2 2 1
cell G2 2 2
cell O3 1 2

word GOLD G0 O0 L0 D0
word god  G0 O1 D1
word LOG  L0 O2 G2
word DOG  D1 O3 G2
`

func TestDefault_IsValid(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("built-in puzzle should be valid: %v", err)
	}
	if len(p.Words) != 4 {
		t.Errorf("expected 4 words, got %d", len(p.Words))
	}
	keys, ok := p.Layout("GOLD")
	if !ok || strings.Join(keys, ",") != "G0,O0,L0,D0" {
		t.Errorf("GOLD layout mismatch: %v", keys)
	}
}

func TestParse_MatchesDefault(t *testing.T) {
	p, err := Parse(strings.NewReader(goldPuzzle), "gold.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	def := Default()
	if p.Title != def.Title {
		t.Errorf("expected title %q, got %q", def.Title, p.Title)
	}
	if string(p.Letters) != string(def.Letters) {
		t.Errorf("expected letters %q, got %q", string(def.Letters), string(p.Letters))
	}
	if len(p.Cells) != len(def.Cells) {
		t.Errorf("expected %d cells, got %d", len(def.Cells), len(p.Cells))
	}
	for word, keys := range def.Layouts {
		got, ok := p.Layouts[word]
		if !ok {
			t.Errorf("missing layout for %s", word)
			continue
		}
		if strings.Join(got, ",") != strings.Join(keys, ",") {
			t.Errorf("%s: expected %v, got %v", word, keys, got)
		}
	}
	if strings.Join(p.Words, ",") != "GOLD,GOD,LOG,DOG" {
		t.Errorf("words out of order: %v", p.Words)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"unknown line", "letters: AB\nbogus\n", ":2:"},
		{"no letters", "cell A0 0 0\nword A A0\n", "no letters"},
		{"no words", "letters: AB\n", "no words"},
		{"wrong cell count", "letters: AB\ncell A0 0 0\nword AB A0\n", "expected 2"},
		{"undeclared cell", "letters: AB\ncell A0 0 0\nword AB A0 B0\n", "undeclared cell B0"},
		{"unspellable", "letters: AB\ncell A0 0 0\ncell A1 1 0\nword AA A0 A1\n", "cannot be spelled"},
		{"duplicate word", "letters: AB\ncell A0 0 0\ncell B0 1 0\nword AB A0 B0\nword ab A0 B0\n", "declared twice"},
		{"conflicting intersection", "letters: ABC\ncell X 0 0\ncell Y 1 0\ncell Z 0 1\nword AB X Y\nword CA X Z\n", "cell X is A"},
	}

	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.input), "p.txt")
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: expected error containing %q, got %q", tt.name, tt.wantErr, err.Error())
		}
	}
}

func TestLoadPuzzle_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gold.txt")
	if err := os.WriteFile(path, []byte(goldPuzzle), 0644); err != nil {
		t.Fatalf("failed to write puzzle: %v", err)
	}

	p, err := LoadPuzzle(path)
	if err != nil {
		t.Fatalf("LoadPuzzle failed: %v", err)
	}
	if p.Source != path {
		t.Errorf("expected source %s, got %s", path, p.Source)
	}

	if _, err := LoadPuzzle(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestClassify(t *testing.T) {
	layouts := Default().Layouts
	found := map[string]bool{"GOD": true}

	tests := []struct {
		word   string
		expect Verdict
	}{
		{"GOLD", NewMatch},
		{"GOD", Repeat},
		{"X", Invalid},
		{"GO", Invalid},
		{"DLOG", Invalid}, // anagrams do not count
		{"gold", Invalid}, // callers upper-case first
	}

	for _, tt := range tests {
		if got := Classify(tt.word, layouts, found); got != tt.expect {
			t.Errorf("Classify(%q) = %v, expected %v", tt.word, got, tt.expect)
		}
	}
}

func TestClassify_IsPure(t *testing.T) {
	layouts := Default().Layouts
	found := map[string]bool{}
	first := Classify("LOG", layouts, found)
	second := Classify("LOG", layouts, found)
	if first != second || first != NewMatch {
		t.Errorf("expected NewMatch twice, got %v then %v", first, second)
	}
	if len(found) != 0 {
		t.Error("Classify must not modify the found set")
	}
}
