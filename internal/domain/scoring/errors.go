package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrInvalidPenalty = errors.New("invalid penalty")
)
