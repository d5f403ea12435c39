// Package window splits signals into fixed-length segments and provides the
// taper windows applied to them.
//
// Segment converts window and hop durations to sample counts by truncation.
// The hop is the stride between successive window starts; the overlap
// between neighbouring windows is WindowSamples-HopSamples. Trailing samples
// that do not fill a complete window are dropped.
package window
