// Package lexing is a generic prefix-trie engine: it builds a trie
// from (label, letter-sequence) pairs over any comparable letter type
// and decodes letter streams back into labels, incrementally and with
// every failure reported as a value.
//
// The same engine drives two very different alphabets in this module:
// the symbol decoder walks letter indices through a dense array-backed
// trie, while the tokenizer walks runes through a hash-backed trie.
// The per-level lookup is abstracted behind the Map capability
// interface; pick NewDense for small integer keys and NewHash for
// sparse ones at the call site.
//
// Decoding is pull-free and resumable: a Stream holds the current trie
// node and the letters matched so far, so input may arrive in chunks
// of any size:
//
//	lx, _ := lexing.NewLexer(pairs, lexing.NewHash[rune, int]())
//	st := lx.NewStream()
//	for _, r := range chunk {
//		label, done, err := st.Feed(r)
//		...
//	}
//	// st keeps its partial match; feed the next chunk whenever it
//	// arrives, then st.Flush() once the input truly ends.
//
// Error taxonomy (all values, never panics):
//   - ErrInvalidLetter        - the letter is outside the alphabet.
//   - ErrUnexpectedLetter     - a valid letter extends a dead branch.
//   - ErrUnexpectedTermination - input ended mid-code; feed more and
//     retry Flush, or treat as truncation.
//   - ErrNotPrefixFree        - trie construction found one sequence
//     prefixing another.
//
// Feed never mutates the walk state when it returns an error, so a
// caller may log and keep going (best-effort recovery), and Flush
// never resets it, so "need more input" is not a point of no return.
package lexing
