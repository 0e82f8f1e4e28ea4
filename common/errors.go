package common

import "errors"

// Sentinel parse/protocol errors, wrapped with %w where they are returned
// so callers can tell error kinds apart with errors.Is.
var (
	ErrMalformedFEN     = errors.New("malformed fen")
	ErrUnknownGod       = errors.New("unknown god name")
	ErrSquareRange      = errors.New("square out of range")
	ErrDuplicateWorker  = errors.New("duplicate worker square")
	ErrInconsistentGod  = errors.New("inconsistent god state")
	ErrUnknownCommand   = errors.New("unknown command")
)
