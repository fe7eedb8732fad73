// Package prefixcode builds nearly optimal prefix-free codes over an
// unequal-cost letter alphabet and decodes them back to symbols.
//
// The construction follows Mehlhorn's recursive partitioning:
//
//	K. Mehlhorn, "An efficient algorithm for constructing nearly
//	optimal prefix codes", IEEE Trans. Information Theory 26(5),
//	513–517, 1980.
//
// Each recursion step owns a probability interval [apl, apr] and a
// symbol range [l, r]. The interval is carved into one sub-interval
// per letter m, proportional to c^cost(m) where c is the Kraft root
// of the cost vector; symbols fall into the sub-interval containing
// their midpoint cumulative probability. Empty first/last buckets are
// repaired by anchoring the boundary symbols, which keeps every
// recursion strictly shrinking. The resulting code set is prefix-free
// by construction: sibling buckets never share a letter.
//
// An Encoding is immutable once built and safe for concurrent reads.
// Rebuilding for fresh frequency data produces a new Encoding; nothing
// is ever patched in place. Its JSON form - width, letter count and
// the per-symbol letter-index lists - round-trips to an equal value.
//
// Complexity: building is O(h·K·2^N) for code height h, K letters and
// N-bit symbols; encoding a symbol is O(1) table access; decoding is
// O(1) per input letter.
package prefixcode
