package crossing

// State is the scoring state of one run. The three bonus fields are
// pending: they pay out only when the player reaches the goal row.
type State struct {
	Lives           int
	Score           int
	BonusScore      int
	BonusMultiplier int
	BonusLives      int
}

// Reset starts a new run with the given number of lives.
func (s *State) Reset(lives int) {
	*s = State{Lives: lives}
}

// Apply adds a collected bonus to the pending accumulators.
func (s *State) Apply(e Effect) {
	s.BonusLives += e.Lives
	s.BonusScore += e.Score
	s.BonusMultiplier += e.Multiplier
}

// CommitBonus pays out a completed crossing: one point plus the pending
// score times the pending multiplier, plus the pending lives.
func (s *State) CommitBonus() {
	s.Score += s.BonusScore*s.BonusMultiplier + 1
	s.Lives += s.BonusLives
	s.ForfeitBonus()
}

// ForfeitBonus drops the pending accumulators.
func (s *State) ForfeitBonus() {
	s.BonusScore = 0
	s.BonusMultiplier = 0
	s.BonusLives = 0
}

// LoseLife takes one life away.
func (s *State) LoseLife() {
	if s.Lives > 0 {
		s.Lives--
	}
}

// GameOver reports whether no lives are left.
func (s State) GameOver() bool {
	return s.Lives <= 0
}

// HasPendingBonus reports whether any accumulator is non-zero.
func (s State) HasPendingBonus() bool {
	return s.BonusScore > 0 || s.BonusMultiplier > 0 || s.BonusLives > 0
}
