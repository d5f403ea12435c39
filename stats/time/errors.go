package time

import "errors"

// ErrZeroVariance is returned when a normalisation divides by a zero
// standard deviation, i.e. the signal is constant.
var ErrZeroVariance = errors.New("signal has zero variance")
