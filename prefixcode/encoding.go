package prefixcode

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/hajiman/bitpack"
	"github.com/katalvlaran/hajiman/letters"
)

var (
	// ErrAlphabetTooSmall is returned when fewer than two letters are
	// available; no prefix-free code can cover more than one symbol.
	ErrAlphabetTooSmall = errors.New("prefixcode: need at least two letters")
	// ErrPartition indicates the recursive partitioner violated one of
	// its own invariants. Should be unreachable; never recoverable.
	ErrPartition = errors.New("prefixcode: internal partition invariant broken")
	// ErrBadEncoding is returned when a persisted encoding fails
	// validation on load.
	ErrBadEncoding = errors.New("prefixcode: invalid persisted encoding")
)

// Encoding is the immutable result of the code builder: one non-empty
// letter sequence per symbol of a fixed-width alphabet. Build once,
// then derive encoders and decoders freely, including concurrently.
type Encoding struct {
	width    bitpack.Width
	nLetters int
	codes    []letters.Code
}

// Width returns the symbol width the encoding covers.
func (e *Encoding) Width() bitpack.Width { return e.width }

// Letters returns the size of the letter alphabet.
func (e *Encoding) Letters() int { return e.nLetters }

// Code returns a copy of the letter sequence assigned to s.
func (e *Encoding) Code(s bitpack.Symbol) letters.Code {
	return e.codes[s].Clone()
}

// Equal reports whether two encodings assign identical codes over the
// same alphabets.
func (e *Encoding) Equal(o *Encoding) bool {
	if e.width != o.width || e.nLetters != o.nLetters || len(e.codes) != len(o.codes) {
		return false
	}
	for i, c := range e.codes {
		oc := o.codes[i]
		if len(c) != len(oc) {
			return false
		}
		for j, id := range c {
			if oc[j] != id {
				return false
			}
		}
	}
	return true
}

// encodingJSON is the persisted form: plain nested values only.
type encodingJSON struct {
	Width   int     `json:"width"`
	Letters int     `json:"letters"`
	Codes   [][]int `json:"codes"`
}

// MarshalJSON implements json.Marshaler.
func (e *Encoding) MarshalJSON() ([]byte, error) {
	out := encodingJSON{
		Width:   int(e.width),
		Letters: e.nLetters,
		Codes:   make([][]int, len(e.codes)),
	}
	for i, code := range e.codes {
		ids := make([]int, len(code))
		for j, id := range code {
			ids[j] = int(id)
		}
		out.Codes[i] = ids
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler, validating alphabet
// sizes, code lengths and letter ranges before accepting the value.
func (e *Encoding) UnmarshalJSON(data []byte) error {
	var in encodingJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("prefixcode: decode persisted encoding: %w", err)
	}

	w := bitpack.Width(in.Width)
	if !w.Ok() {
		return fmt.Errorf("%w: width %d", ErrBadEncoding, in.Width)
	}
	if in.Letters < 2 {
		return fmt.Errorf("%w: letter alphabet of %d", ErrBadEncoding, in.Letters)
	}
	if len(in.Codes) != w.AlphabetSize() {
		return fmt.Errorf("%w: %d codes for a %d-symbol alphabet",
			ErrBadEncoding, len(in.Codes), w.AlphabetSize())
	}

	codes := make([]letters.Code, len(in.Codes))
	for i, ids := range in.Codes {
		if len(ids) == 0 {
			return fmt.Errorf("%w: empty code for symbol %d", ErrBadEncoding, i)
		}
		code := make(letters.Code, len(ids))
		for j, id := range ids {
			if id < 0 || id >= in.Letters {
				return fmt.Errorf("%w: letter %d out of range for symbol %d",
					ErrBadEncoding, id, i)
			}
			code[j] = letters.ID(id)
		}
		codes[i] = code
	}

	e.width = w
	e.nLetters = in.Letters
	e.codes = codes
	return nil
}
