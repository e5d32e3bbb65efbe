package cli

import "errors"

// Sentinel errors returned by the check command.
var (
	ErrUnhealthy   = errors.New("server is not healthy")
	ErrBadResponse = errors.New("unexpected response")
	ErrNotLive     = errors.New("server is serving generated data")
)
