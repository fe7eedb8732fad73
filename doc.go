// Package hajiman is a generalized prefix-code compression toolkit:
// it maps fixed-width source symbols onto sequences of unequal-cost
// "letters", rendered as printable multi-character tokens, so that
// the expected encoded cost is nearly optimal for a given symbol
// frequency distribution.
//
// 🚀 What is hajiman?
//
//	A small, composable library that brings together:
//		• bitpack - 4/6/8-bit symbol alphabets with byte packing/unpacking
//		• freq - symbol counting, smoothing and cumulative distributions
//		• letters - unequal letter costs and the generalized Kraft root
//		• prefixcode - the nearly-optimal prefix-code builder
//		• lexing - a generic prefix trie with resumable, error-aware decoding
//		• jimi - the token codec gluing symbols to textual letter tokens
//
// ✨ Why choose hajiman?
//
//   - Any letter alphabet: costs are per-letter, not fixed at 2 symbols
//   - Streaming decode: feed input chunk by chunk, no re-parsing
//   - Errors as data: every decode failure is a value, never a panic
//   - Immutable encodings: build once, share across goroutines freely
//
// Typical pipeline:
//
//	dist, _ := freq.NewCounter(bitpack.Width8).AddBytes(sample).Finish()
//	enc, _ := jimi.New(jimi.DefaultTokens(), dist)
//
//	text, n := enc.Encoder().EncodeToString(payload) // bytes → token text
//
//	dec, _ := enc.Decoder()
//	out, _ := dec.DecodeToBytes(text) // token text → bytes
//	out = out[:n]
//
// Start with package jimi for the end-to-end codec, or package
// prefixcode if you bring your own letter alphabet.
package hajiman
