package bitpack

import (
	"errors"
	"fmt"
	"io"
)

// Symbol is one fixed-width unit of source data, an integer in
// [0, 2^N) for the Width N that produced it.
type Symbol uint8

// Width is the bit width of a symbol alphabet.
type Width int

// Supported symbol widths.
const (
	// Width4 splits every byte into two nibble symbols.
	Width4 Width = 4
	// Width6 splits every 3-byte group into four six-bit symbols.
	Width6 Width = 6
	// Width8 maps every byte to one symbol.
	Width8 Width = 8
)

// ErrWidth is returned when a Width other than 4, 6 or 8 is used.
var ErrWidth = errors.New("bitpack: unsupported symbol width")

// SinkError wraps a write failure of the destination writer, keeping
// it distinguishable from upstream decode errors passed through
// JoinResults unchanged.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("bitpack: sink write: %v", e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// Ok reports whether w is one of the supported widths.
func (w Width) Ok() bool {
	return w == Width4 || w == Width6 || w == Width8
}

// AlphabetSize returns 2^w, the number of distinct symbols.
func (w Width) AlphabetSize() int { return 1 << uint(w) }

// Max returns the largest symbol of the alphabet.
func (w Width) Max() Symbol { return Symbol(w.AlphabetSize() - 1) }

// Valid reports whether s fits in the alphabet of w.
func (w Width) Valid(s Symbol) bool { return int(s) < w.AlphabetSize() }

// GroupSymbols returns how many symbols form one reconstructable
// group: 1 for Width8, 2 for Width4, 4 for Width6.
func (w Width) GroupSymbols() int {
	switch w {
	case Width4:
		return 2
	case Width6:
		return 4
	default:
		return 1
	}
}

// GroupBytes returns how many bytes one symbol group reconstructs:
// 1 for Width8 and Width4, 3 for Width6.
func (w Width) GroupBytes() int {
	if w == Width6 {
		return 3
	}
	return 1
}

// Split converts data into fixed-width symbols and returns them with
// the original byte length. Width6 zero-pads data up to a 3-byte
// boundary first; truncating a joined round trip to the returned
// length recovers data exactly.
func (w Width) Split(data []byte) ([]Symbol, int) {
	n := len(data)
	switch w {
	case Width8:
		syms := make([]Symbol, n)
		for i, b := range data {
			syms[i] = Symbol(b)
		}
		return syms, n
	case Width4:
		syms := make([]Symbol, 0, 2*n)
		for _, b := range data {
			syms = append(syms, Symbol(b>>4), Symbol(b&0x0F))
		}
		return syms, n
	case Width6:
		padded := data
		if rem := n % 3; rem != 0 {
			padded = make([]byte, n+3-rem)
			copy(padded, data)
		}
		syms := make([]Symbol, 0, len(padded)/3*4)
		for i := 0; i < len(padded); i += 3 {
			b0, b1, b2 := padded[i], padded[i+1], padded[i+2]
			syms = append(syms,
				Symbol(b0>>2),
				Symbol((b0&0x03)<<4|b1>>4),
				Symbol((b1&0x0F)<<2|b2>>6),
				Symbol(b2&0x3F),
			)
		}
		return syms, n
	default:
		return nil, n
	}
}

// Join writes the bytes reconstructed from syms to out, the inverse
// of Split. A trailing group left incomplete because the input ended
// is dropped; no partial byte is ever written. Write failures are
// returned as *SinkError.
func (w Width) Join(syms []Symbol, out io.Writer) error {
	i := 0
	return w.JoinResults(func() (Symbol, error, bool) {
		if i == len(syms) {
			return 0, nil, false
		}
		s := syms[i]
		i++
		return s, nil, true
	}, out)
}

// JoinResults consumes (symbol, error) pairs pulled from next until it
// reports no more input, assembling whole groups into bytes written to
// out. The first non-nil upstream error is returned unchanged; write
// failures are wrapped in *SinkError so callers can tell the two
// apart. A trailing incomplete group is dropped silently.
func (w Width) JoinResults(next func() (Symbol, error, bool), out io.Writer) error {
	if !w.Ok() {
		return ErrWidth
	}
	group := make([]Symbol, 0, w.GroupSymbols())
	buf := make([]byte, w.GroupBytes())
	for {
		s, err, more := next()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		group = append(group, s)
		if len(group) < w.GroupSymbols() {
			continue
		}
		w.pack(group, buf)
		group = group[:0]
		if _, werr := out.Write(buf); werr != nil {
			return &SinkError{Err: werr}
		}
	}
}

// pack assembles one complete symbol group into buf.
func (w Width) pack(group []Symbol, buf []byte) {
	switch w {
	case Width8:
		buf[0] = byte(group[0])
	case Width4:
		buf[0] = byte(group[0])<<4 | byte(group[1])
	case Width6:
		buf[0] = byte(group[0])<<2 | byte(group[1])>>4
		buf[1] = byte(group[1])<<4 | byte(group[2])>>2
		buf[2] = byte(group[2])<<6 | byte(group[3])
	}
}
