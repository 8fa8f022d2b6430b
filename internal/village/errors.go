package village

import "errors"

var (
	// ErrUnclassifiedBehavior is returned when an agent is bound to a
	// behavior that maps to no kind. The behavior set is closed, so this
	// indicates a bug rather than a reachable game state.
	ErrUnclassifiedBehavior = errors.New("agent behavior has no kind")

	// ErrInvalidSetup is returned by Setup.Validate for negative counts.
	ErrInvalidSetup = errors.New("invalid simulation setup")

	// ErrInvalidRules is returned by Rules.Validate.
	ErrInvalidRules = errors.New("invalid rules")
)
