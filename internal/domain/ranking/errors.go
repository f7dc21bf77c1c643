package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrNoPlayers     = errors.New("No players found") //nolint:staticcheck // exact message is part of the contract
	ErrNilCompetitor = errors.New("nil competitor")
)
