// Package letters models the target code alphabet: an ordered set of
// letters, each with a positive integer rendering cost, and the root
// of the generalized Kraft characteristic equation
//
//	Σ c^cost(j) = 1   over all letters j
//
// The root c is the base every cost-weighted partition in the code
// builder is expressed in: letter j "owns" a slice of probability
// space proportional to c^cost(j). NewCosts finds the smallest
// positive real root of P(x) = Σ x^cost(j) − 1 by Sturm-sequence
// bracketing plus bisection, then re-validates the Kraft sum.
//
// Errors:
//   - ErrBadCost    - a letter cost below 1.
//   - ErrNoRoot     - the characteristic equation has no positive
//     root; no prefix code can exist for that cost vector.
//   - ErrKraftCheck - the solved root fails the Kraft re-validation
//     (an internal solver invariant, should be unreachable).
//
// All three are configuration-fatal: an Encoding must never be built
// on top of them.
package letters
