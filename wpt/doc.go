// Package wpt implements wavelet packet decomposition of 1-D and 2-D
// signals over four transform families, plus the basis utilities shared
// with best-basis selection.
//
// A decomposition is a tree of sub-band coefficient arrays addressed by
// (depth, band): each node splits into an approximation and a detail
// child through one quadrature filtering step with periodic boundary
// extension. The families differ in their redundancy policy:
//
//   - ModeOrdinary: critically downsampled; node length halves per depth
//     and decomposition followed by Inverse is exact.
//   - ModeStationary: no downsampling; taps stride by 2^depth instead, so
//     every node keeps the full signal length (shift-redundant).
//   - ModeAutocorrelation: redundant transform over the autocorrelation-
//     shell pair derived from the filter; single-tap exact inverse ladder.
//   - ModeShiftInvariant: expands nodes across circular-shift candidates
//     into an irregular tree carrying per-variant shift provenance, the
//     input representation for shift-invariant basis search.
//
// # Usage
//
//	f, _ := wavelet.New(wavelet.TypeDB4)
//	t, err := wpt.Decompose(x, f, 3, wpt.ModeOrdinary)
//	if err != nil { ... }
//	approx := t.Node(3, 0)
//	y, _ := wpt.Inverse(t)   // y == x to machine precision
//
// Selected cuts of a tree are represented by Basis values (see package
// bestbasis for the selection itself); IsValidBasis checks the cut
// invariant and Reconstruct rebuilds a signal from any valid cut.
//
// Trees are immutable after construction and safe for concurrent reads;
// DecomposeAll fans an ensemble out across goroutines.
package wpt
