// Package freq builds smoothed symbol-frequency distributions and the
// cumulative arrays consumed by the prefix-code builder.
//
// A Counter accumulates raw occurrence counts over a fixed-width
// symbol alphabet; Finish normalizes them into a Distribution. Two
// cumulative views are derived in symbol order:
//
//	Cum(k)    = p(0) + p(1) + ... + p(k)        (inclusive prefix sum)
//	CumMid(k) = Cum(k) - p(k)/2                 (midpoint prefix sum)
//
// CumMid is what Mehlhorn's partitioning step compares against letter
// sub-intervals; Cum bounds each recursion's probability interval.
//
// Zero-frequency smoothing: symbols never seen in the sample would be
// unencodable, so Finish donates a bounded slice of probability mass
// to them. With n0 zero-count symbols, shared = min(0.05, n0·0.005)
// is split evenly among them and every observed symbol is scaled by
// (1 - shared). The formula is kept exactly as-is for compatibility
// with existing encodings; it is a heuristic, not a principled
// estimator.
//
// Errors:
//   - ErrEmptySample   - Finish on a Counter that saw no symbols.
//   - ErrNormalization - probabilities failed to sum to 1 within 1e-4
//     (an internal invariant, not a recoverable input condition).
package freq
