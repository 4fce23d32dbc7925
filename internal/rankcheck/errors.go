package rankcheck

import "errors"

// Sentinel errors.
var (
	ErrUnhealthy   = errors.New("service unhealthy")
	ErrBadResponse = errors.New("unexpected response")
	ErrMismatch    = errors.New("ranking mismatch")
)
