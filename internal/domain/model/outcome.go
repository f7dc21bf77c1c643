// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Outcome is the result of a single match from the competitor's perspective.
// The zero value is not a valid outcome.
type Outcome uint8

// Match outcomes.
const (
	Win Outcome = iota + 1
	Draw
	Loss
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Valid reports whether o is one of Win, Draw or Loss.
func (o Outcome) Valid() bool {
	switch o {
	case Win, Draw, Loss:
		return true
	}
	return false
}

// ParseOutcome parses "win", "draw" or "loss" (or w/d/l), ignoring case and
// surrounding whitespace.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win", "w":
		return Win, nil
	case "draw", "d":
		return Draw, nil
	case "loss", "l":
		return Loss, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOutcome, uint8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	parsed, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
