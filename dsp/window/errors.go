package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow is returned when the window duration covers no samples.
	ErrInvalidWindow = errors.New("window must span at least one sample")
	// ErrInvalidHop is returned when the hop duration covers no samples.
	ErrInvalidHop = errors.New("hop must span at least one sample")

	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateSpan(win, hop int) error {
	if win <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, win)
	}
	if hop <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHop, hop)
	}
	return nil
}
