// Package scoring turns a competitor's match history into a tournament score.
package scoring

import (
	"fmt"

	"github.com/okian/blade/internal/domain/model"
)

// Scoring rule constants.
const (
	WinPoints    = 3
	DrawPoints   = 1
	LossPoints   = 0
	StreakLength = 3 // consecutive wins that trigger the bonus
	StreakBonus  = 5
)

// Scorer computes a non-negative score from a chronological match history.
type Scorer interface {
	// Calculate returns the score for matches. A nil or empty history and a
	// disqualified competitor both score 0. Negative penaltyPoints fail with
	// ErrInvalidPenalty.
	Calculate(matches []model.Outcome, disqualified bool, penaltyPoints int) (int, error)
}

// Calculator is the stateless Scorer implementing the tournament rules.
type Calculator struct{}

// NewCalculator returns a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate implements Scorer.
//
// Each win earns WinPoints and each draw DrawPoints. The moment a run of
// consecutive wins reaches exactly StreakLength, StreakBonus is added once;
// longer runs do not retrigger it until a draw or loss breaks the run.
// Penalty points are subtracted at the end and the result is floored at 0.
func (c *Calculator) Calculate(matches []model.Outcome, disqualified bool, penaltyPoints int) (int, error) {
	if penaltyPoints < 0 {
		return 0, fmt.Errorf("penalty points must not be negative, got %d: %w", penaltyPoints, ErrInvalidPenalty)
	}
	if disqualified || len(matches) == 0 {
		return 0, nil
	}

	total, streak := 0, 0
	for i, m := range matches {
		switch m {
		case model.Win:
			total += WinPoints
			streak++
		case model.Draw:
			total += DrawPoints
			streak = 0
		case model.Loss:
			total += LossPoints
			streak = 0
		default:
			return 0, fmt.Errorf("match %d: %w: %d", i, model.ErrUnknownOutcome, uint8(m))
		}
		if streak == StreakLength {
			total += StreakBonus
		}
	}

	total -= penaltyPoints
	if total < 0 {
		return 0, nil
	}
	return total, nil
}
