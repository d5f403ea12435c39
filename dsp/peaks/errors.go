package peaks

import "errors"

var (
	// ErrInvalidDistance is returned for a minimum distance below one sample.
	ErrInvalidDistance = errors.New("peak distance must be >= 1 sample")
	// ErrInvalidProminence is returned for a negative or NaN prominence threshold.
	ErrInvalidProminence = errors.New("peak prominence must be >= 0")
	// ErrIndexOutOfRange is returned when a peak index does not address the signal.
	ErrIndexOutOfRange = errors.New("peak index out of range")
)
