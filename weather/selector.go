package weather

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Selector picks one of several search candidates. It returns a 1-based
// position in candidates.
type Selector interface {
	Select(ctx context.Context, candidates []City) (int, error)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(ctx context.Context, candidates []City) (int, error)

// Select calls f.
func (f SelectorFunc) Select(ctx context.Context, candidates []City) (int, error) {
	return f(ctx, candidates)
}

// PromptSelector lists candidates on Out as "N. Title" and reads the chosen
// number from In. It blocks until a line is available.
type PromptSelector struct {
	In  io.Reader
	Out io.Writer
}

// Select implements Selector.
func (p PromptSelector) Select(ctx context.Context, candidates []City) (int, error) {
	for i, c := range candidates {
		if _, err := fmt.Fprintf(p.Out, "%d. %s\n", i+1, c.Title); err != nil {
			return 0, fmt.Errorf("failed to write prompt: %w", err)
		}
	}
	if _, err := fmt.Fprint(p.Out, "Pick one city:\n> "); err != nil {
		return 0, fmt.Errorf("failed to write prompt: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("failed to read selection: %w", err)
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSelection, strings.TrimSpace(line))
	}

	return choice, nil
}
