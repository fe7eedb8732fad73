// Package jimi glues the prefix-code core to printable letter tokens:
// every letter of the code alphabet is rendered as one multi-character
// string token, and a letter's cost is simply its token's rune count.
// Feeding those costs and a symbol-frequency distribution to the code
// builder yields text that is cheap where the data is common.
//
// Encoding owns the symbol→code table plus the token table; it is
// immutable, safe for concurrent use and JSON round-trippable. The
// Encoder renders symbols straight out of one preassembled arena
// buffer, so encoding allocates nothing per call. The Decoder chains
// two tries: a rune-keyed tokenizer recovers letter indices from text
// and a dense letter-keyed trie recovers symbols from letters; every
// decode error is tagged with the layer that produced it.
//
//	dist, _ := freq.NewCounter(bitpack.Width8).AddBytes(sample).Finish()
//	enc, _ := jimi.New(jimi.DefaultTokens(), dist)
//
//	tokens, n := enc.Encoder().Encode(data)
//	dec, _ := enc.Decoder()
//	back, _ := dec.DecodeToBytes(strings.Join(tokens, ""))
//	back = back[:n] // strip the width's padding
//
// Streams decode incrementally: partial tokens and partial codes both
// survive chunk boundaries, so network-fed text needs no reassembly.
package jimi
