// Package log builds the zap loggers used by the commands.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a development logger when debug is set and a production
// logger otherwise.
func New(debug bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("can't initialize zap logger: %w", err)
	}

	return logger, nil
}

// Must is like New but falls back to a no-op logger on error.
func Must(debug bool) *zap.Logger {
	logger, err := New(debug)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
