package grow

import "fmt"

// ScoreTracker holds the current round's score and the best score of the process.
type ScoreTracker struct {
	current  int
	high     int
	captured bool // current written this round
	newHigh  bool // last commit raised the high score
}

// NewScoreTracker creates a tracker with both scores at zero.
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{}
}

// BeginRound allows the next Capture.
func (s *ScoreTracker) BeginRound() {
	s.captured = false
	s.newHigh = false
}

// Capture records the round's final score. It may be called once per round.
func (s *ScoreTracker) Capture(score int) {
	if s.captured {
		panic("grow: score captured twice in one round")
	}
	s.current = score
	s.captured = true
}

// Commit compares the captured score against the high score, raising the
// high score if it was beaten. It returns the high score line for the game
// over screen and whether this round set a new high score.
func (s *ScoreTracker) Commit() (text string, isNew bool) {
	if s.current > s.high {
		s.high = s.current
		s.newHigh = true
	}
	return s.HighScoreText(), s.newHigh
}

// HighScoreText returns "new high score!" after a record round, otherwise
// "high score - N".
func (s *ScoreTracker) HighScoreText() string {
	if s.newHigh {
		return "new high score!"
	}
	return fmt.Sprintf("high score - %d", s.high)
}

// Current returns the last captured score.
func (s *ScoreTracker) Current() int {
	return s.current
}

// High returns the best score so far.
func (s *ScoreTracker) High() int {
	return s.high
}

// NewHigh reports whether the last committed round set a new high score.
func (s *ScoreTracker) NewHigh() bool {
	return s.newHigh
}
