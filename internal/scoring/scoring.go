package scoring

// Scoring keeps the running score of one round. Nothing is persisted; the
// session banks the final score when the round ends.
type Scoring struct {
	// public
	CurrentScore  int
	LettersPlaced int
	WordsFound    int
	Rejections    int
	Shuffles      int
	// private
	scoreTable map[string]int
}

// InitScoring creates a zeroed score for a new round.
func InitScoring() *Scoring {
	return &Scoring{scoreTable: getScoreTable()}
}

// ScoreEvent updates the score based on a given game event.
func (s *Scoring) ScoreEvent(event string) {
	if s.scoreTable == nil {
		s.scoreTable = getScoreTable()
	}
	switch event {
	case "letterPlaced":
		s.LettersPlaced++
	case "wordFound":
		s.WordsFound++
	case "rejected":
		s.Rejections++
	case "shuffle":
		s.Shuffles++
	}
	s.CurrentScore += s.scoreTable[event]
	if s.CurrentScore < 0 {
		s.CurrentScore = 0
	}
}

// Reset zeroes every counter for a fresh round.
func (s *Scoring) Reset() {
	*s = Scoring{scoreTable: s.scoreTable}
}

// getScoreTable returns the predefined values for different scoring events.
func getScoreTable() map[string]int {
	return map[string]int{
		"letterPlaced": 25,
		"wordFound":    250,
		"rejected":     -50,
		"shuffle":      0,
		"puzzleSolved": 1000,
	}
}
