package ashrand

import "errors"

var (
	// ErrUnsupportedOperation is returned by an optional contract
	// operation when the concrete algorithm does not implement it.
	ErrUnsupportedOperation = errors.New("operation is not supported by this generator")

	// ErrInvalidArgument is returned for out-of-range state indexes,
	// empty inputs where a non-empty one is required, non-positive
	// attempt budgets and duplicate registry tags.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrExhaustedAttempts is returned by bounded predicate searches once
	// the caller-supplied retry budget is spent without a match.
	ErrExhaustedAttempts = errors.New("exhausted the configured number of attempts")
)
