package source

import "errors"

// Sentinel errors for this package. These allow errors.Is from callers.
var (
	ErrStatus      = errors.New("unexpected response status")
	ErrMissingKey  = errors.New("sheet key not found")
	ErrUnknownKind = errors.New("unknown source kind")
	ErrNoLocation  = errors.New("source location not configured")
	ErrTooLarge    = errors.New("response body too large")
)
