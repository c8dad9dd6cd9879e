package puzzle

// Verdict is the classification of a completed selection.
type Verdict int

const (
	Invalid Verdict = iota
	Repeat
	NewMatch
)

func (v Verdict) String() string {
	switch v {
	case Repeat:
		return "repeat"
	case NewMatch:
		return "newMatch"
	default:
		return "invalid"
	}
}

// Classify decides what a selected word means for the current game. The word
// must already be upper-cased and non-empty; matching is exact.
func Classify(word string, layouts map[string][]string, found map[string]bool) Verdict {
	if _, ok := layouts[word]; !ok {
		return Invalid
	}
	if found[word] {
		return Repeat
	}
	return NewMatch
}
