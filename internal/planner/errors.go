package planner

import "errors"

var (
	// ErrUnavailable indicates the text-generation service could not be
	// reached or is not configured.
	ErrUnavailable = errors.New("planner service unavailable")

	// ErrInvalidOutput indicates the service response could not be parsed
	// into a valid 7-day plan.
	ErrInvalidOutput = errors.New("invalid planner output format")
)
