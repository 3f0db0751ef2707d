package hog

import "errors"

var (
	// ErrInvalidParameter is returned when cell size, bin count or the
	// input image cannot be used. It is checked before any work is done.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrIndexOutOfRange reports an orientation bin outside [0, bins).
	// It indicates a bug, not bad input.
	ErrIndexOutOfRange = errors.New("bin index out of range")
)
