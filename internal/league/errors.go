package league

import "errors"

// Error kinds. Call sites wrap these with context so callers can test with
// errors.Is.
var (
	// ErrValidation marks malformed input: missing or duplicate teams, odd
	// rosters, negative goals, self pairings, out-of-range round numbers.
	ErrValidation = errors.New("validation error")

	// ErrState marks an operation that is invalid for the current state,
	// such as recording a result twice or drawing past the last round.
	ErrState = errors.New("state error")
)
