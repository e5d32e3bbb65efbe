package service

import "errors"

// Sentinel errors carried by fallback outcomes.
var (
	ErrNoSource   = errors.New("no source configured")
	ErrParsePanic = errors.New("parser panicked")
)
