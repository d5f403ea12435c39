package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySignal is returned when an operation needs at least one sample.
	ErrEmptySignal = errors.New("signal must not be empty")
	// ErrInvalidSampleRate is returned for non-positive or non-finite sample rates.
	ErrInvalidSampleRate = errors.New("sample rate must be finite and > 0")
)

// ValidateSignal returns ErrEmptySignal for a zero-length signal.
func ValidateSignal(signal []float64) error {
	if len(signal) == 0 {
		return ErrEmptySignal
	}
	return nil
}

// ValidateSampleRate rejects sample rates that cannot place samples on a time axis.
func ValidateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}
