// Package bitpack models fixed-width symbol alphabets and converts
// byte streams to symbol sequences and back.
//
// A Symbol is an integer in [0, 2^N) for a Width of N bits. Three
// widths are supported:
//
//   - Width8 - one symbol per byte, no padding.
//   - Width4 - two symbols per byte (high nibble first), no padding.
//   - Width6 - the input is zero-padded to a multiple of 3 bytes and
//     every 3-byte group becomes 4 six-bit symbols (base64-style
//     bit layout, without the alphabet).
//
// Split reports the original byte length alongside the symbols so a
// round trip can truncate trailing padding:
//
//	syms, n := bitpack.Width6.Split(data)
//	// ... encode, transmit, decode back into syms ...
//	var buf bytes.Buffer
//	_ = bitpack.Width6.Join(syms, &buf)
//	restored := buf.Bytes()[:n] // == data
//
// Join is the exact inverse of Split on whole symbol groups; a
// trailing partial group (input ended mid-byte) is dropped rather
// than half-written. JoinResults additionally threads per-symbol
// errors from an upstream decoder, keeping sink I/O failures
// distinguishable from decode failures.
package bitpack
