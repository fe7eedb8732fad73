package jimi

import (
	"strings"

	"github.com/katalvlaran/hajiman/bitpack"
)

// Encoder renders symbols as token text with zero per-call
// allocation: every symbol's full rendering is laid out once in a
// shared arena string, and encoding is a bounds-checked slice of it.
type Encoder struct {
	width bitpack.Width
	arena string
	spans []span // indexed by symbol
}

// span locates one symbol's rendering inside the arena.
type span struct {
	off int
	len int
}

func newEncoder(e *Encoding) *Encoder {
	size := e.code.Width().AlphabetSize()
	spans := make([]span, size)

	var arena strings.Builder
	for s := 0; s < size; s++ {
		off := arena.Len()
		for _, id := range e.code.Code(bitpack.Symbol(s)) {
			arena.WriteString(e.tokens[id])
		}
		spans[s] = span{off: off, len: arena.Len() - off}
	}
	return &Encoder{width: e.code.Width(), arena: arena.String(), spans: spans}
}

// EncodeSymbol returns the token text of one symbol. The result
// shares the arena; strings are immutable, so this is safe.
func (e *Encoder) EncodeSymbol(s bitpack.Symbol) string {
	sp := e.spans[s]
	return e.arena[sp.off : sp.off+sp.len]
}

// Encode splits data into symbols at the encoder's width and returns
// one token-text slice per symbol, along with the original byte
// length for truncating a later round trip.
func (e *Encoder) Encode(data []byte) ([]string, int) {
	syms, n := e.width.Split(data)
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = e.EncodeSymbol(s)
	}
	return out, n
}

// EncodeToString is Encode with the pieces joined into one string.
func (e *Encoder) EncodeToString(data []byte) (string, int) {
	pieces, n := e.Encode(data)
	return strings.Join(pieces, ""), n
}
