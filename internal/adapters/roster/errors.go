package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrInvalidRoster       = errors.New("invalid roster")
	ErrDuplicateCompetitor = errors.New("duplicate competitor id")
)
