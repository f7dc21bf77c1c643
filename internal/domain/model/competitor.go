package model

// Competitor is a tournament entrant and their chronological match history.
type Competitor struct {
	ID            string    // stable identifier
	Name          string    // display name
	Matches       []Outcome // oldest first; order matters for streaks
	Disqualified  bool      // sanctioned out of the tournament
	PenaltyPoints int       // deducted after streak accounting, expected >= 0
}

// AddMatch appends the outcome of the competitor's latest match.
func (c *Competitor) AddMatch(o Outcome) {
	c.Matches = append(c.Matches, o)
}

// Standing is one row of a ranking: a competitor with the score it was
// ranked by and its 1-based position.
type Standing struct {
	Rank       int
	Competitor *Competitor
	Score      int
}
