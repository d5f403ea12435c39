package peaks

import (
	"fmt"
	"math"
	"sort"
)

// Peak is a detected local maximum.
type Peak struct {
	Index int
	Value float64
}

// Option configures Find.
type Option func(*config)

type config struct {
	distance      float64
	hasDistance   bool
	prominence    float64
	hasProminence bool
}

// WithDistance requires at least ceil(d) samples between reported peaks.
// When two candidates are closer the taller one is kept.
func WithDistance(d float64) Option {
	return func(c *config) {
		c.distance = d
		c.hasDistance = true
	}
}

// WithProminence drops peaks whose prominence is below p.
func WithProminence(p float64) Option {
	return func(c *config) {
		c.prominence = p
		c.hasProminence = true
	}
}

// Find returns the peaks of signal ordered by index. Without options every
// local maximum is returned.
func Find(signal []float64, opts ...Option) ([]Peak, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.hasDistance && !(cfg.distance >= 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDistance, cfg.distance)
	}
	if cfg.hasProminence && !(cfg.prominence >= 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProminence, cfg.prominence)
	}

	idx := LocalMaxima(signal)

	if cfg.hasDistance && len(idx) > 1 {
		idx = selectByDistance(signal, idx, int(math.Ceil(cfg.distance)))
	}

	if cfg.hasProminence && len(idx) > 0 {
		prom, err := Prominences(signal, idx)
		if err != nil {
			return nil, err
		}

		kept := idx[:0]
		for i, p := range prom {
			if p >= cfg.prominence {
				kept = append(kept, idx[i])
			}
		}
		idx = kept
	}

	out := make([]Peak, len(idx))
	for i, k := range idx {
		out[i] = Peak{Index: k, Value: signal[k]}
	}

	return out, nil
}

// LocalMaxima returns the indices of all local maxima. A plateau of equal
// samples counts once, at its midpoint (rounded down), if the samples on
// both sides of it are strictly lower.
func LocalMaxima(signal []float64) []int {
	var out []int

	last := len(signal) - 1
	for i := 1; i < last; i++ {
		if !(signal[i-1] < signal[i]) {
			continue
		}

		ahead := i + 1
		for ahead < last && signal[ahead] == signal[i] {
			ahead++
		}

		if signal[ahead] < signal[i] {
			out = append(out, (i+ahead-1)/2)
			i = ahead
		}
	}

	return out
}

// selectByDistance keeps peaks in order of decreasing height, removing any
// neighbour closer than distance samples. Equal heights favour the right peak.
func selectByDistance(signal []float64, idx []int, distance int) []int {
	order := make([]int, len(idx))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return signal[idx[order[a]]] < signal[idx[order[b]]]
	})

	keep := make([]bool, len(idx))
	for i := range keep {
		keep[i] = true
	}

	for o := len(order) - 1; o >= 0; o-- {
		j := order[o]
		if !keep[j] {
			continue
		}

		for k := j - 1; k >= 0 && idx[j]-idx[k] < distance; k-- {
			keep[k] = false
		}
		for k := j + 1; k < len(idx) && idx[k]-idx[j] < distance; k++ {
			keep[k] = false
		}
	}

	out := make([]int, 0, len(idx))
	for i, k := range idx {
		if keep[i] {
			out = append(out, k)
		}
	}

	return out
}
