package errorvalues

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrClientNotFound    = errors.New("client doesn't exist")
	ErrFlagNotFound      = errors.New("triage flag not found")
	ErrFlagClosed        = errors.New("triage flag is resolved or dismissed")
	ErrInvalidFlagStatus = errors.New("invalid flag status transition")
	ErrInvalidToken      = errors.New("invalid token")
)
