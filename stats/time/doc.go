// Package time provides time-domain statistics over sample slices: mean and
// population variance, median, peak-to-peak range, z-score normalisation and
// nearest-value lookup.
//
// Variance and standard deviation use the population convention (divisor
// n), so a z-scored signal has mean 0 and standard deviation 1 under the same
// definitions.
package time
