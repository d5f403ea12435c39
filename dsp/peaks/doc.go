// Package peaks locates local maxima in a sampled signal.
//
// Detection follows the usual find-peaks convention: a peak is a sample (or
// the midpoint of a flat plateau) that is strictly higher than both of its
// neighbours. First and last samples are never peaks. Candidates can be
// thinned by a minimum horizontal distance, keeping taller peaks first, and
// filtered by a minimum topographic prominence. Distance filtering runs
// before the prominence filter.
package peaks
