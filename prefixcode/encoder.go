package prefixcode

import (
	"github.com/katalvlaran/hajiman/bitpack"
	"github.com/katalvlaran/hajiman/letters"
)

// Encoder maps symbols to their letter sequences. It shares the
// encoding's code table and is read-only, so one Encoder may serve
// many goroutines.
type Encoder struct {
	width bitpack.Width
	codes []letters.Code
}

// NewEncoder returns an Encoder over enc.
func NewEncoder(enc *Encoding) *Encoder {
	return &Encoder{width: enc.width, codes: enc.codes}
}

// Encode returns the code of s. The result is shared; callers must
// not modify it.
func (e *Encoder) Encode(s bitpack.Symbol) letters.Code {
	return e.codes[s]
}

// EncodeBytes splits data into symbols and concatenates their codes,
// returning the flat letter stream and the original byte length for
// later truncation of the round trip.
func (e *Encoder) EncodeBytes(data []byte) ([]letters.ID, int) {
	syms, n := e.width.Split(data)
	var out []letters.ID
	for _, s := range syms {
		out = append(out, e.codes[s]...)
	}
	return out, n
}
