package console

import "errors"

// Sentinel errors of the console core. Handlers map these to HTTP status
// codes; wrap with fmt.Errorf("...: %w", Err...) to add context.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidState = errors.New("invalid state")
	ErrForbidden    = errors.New("forbidden")
)
