package jimi

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/hajiman/bitpack"
	"github.com/katalvlaran/hajiman/freq"
	"github.com/katalvlaran/hajiman/letters"
	"github.com/katalvlaran/hajiman/prefixcode"
)

// Encoding binds a prefix code to the token table that renders it.
// Immutable after New; rebuild from fresh frequency data instead of
// mutating.
type Encoding struct {
	code   *prefixcode.Encoding
	tokens Tokens
}

// New derives letter costs from the token rune lengths, solves the
// Kraft equation and builds the prefix code for dist. Errors are
// configuration-fatal: a nil Encoding is never partially usable.
func New(tokens Tokens, dist *freq.Distribution) (*Encoding, error) {
	costs, err := tokens.Costs()
	if err != nil {
		return nil, err
	}
	lc, err := letters.NewCosts(costs)
	if err != nil {
		return nil, fmt.Errorf("jimi: token costs: %w", err)
	}
	code, err := prefixcode.Build(lc, dist)
	if err != nil {
		return nil, fmt.Errorf("jimi: build code: %w", err)
	}
	return &Encoding{
		code:   code,
		tokens: append(Tokens(nil), tokens...),
	}, nil
}

// Width returns the symbol width the encoding covers.
func (e *Encoding) Width() bitpack.Width { return e.code.Width() }

// Tokens returns a copy of the token table.
func (e *Encoding) Tokens() Tokens {
	return append(Tokens(nil), e.tokens...)
}

// Code returns a copy of the letter sequence assigned to s.
func (e *Encoding) Code(s bitpack.Symbol) letters.Code { return e.code.Code(s) }

// Encoder builds the arena-backed encoder for e.
func (e *Encoding) Encoder() *Encoder { return newEncoder(e) }

// Decoder builds the two-stage decoder for e. It fails with
// lexing.ErrNotPrefixFree (layer-tagged) when the token table is not
// prefix-free at the character level.
func (e *Encoding) Decoder() (*Decoder, error) { return newDecoder(e) }

// Equal reports whether two encodings share code table and tokens.
func (e *Encoding) Equal(o *Encoding) bool {
	if !e.code.Equal(o.code) || len(e.tokens) != len(o.tokens) {
		return false
	}
	for i, tok := range e.tokens {
		if o.tokens[i] != tok {
			return false
		}
	}
	return true
}

// encodingJSON is the persisted form: the plain prefix-code value
// plus the ordered token list.
type encodingJSON struct {
	Encoding *prefixcode.Encoding `json:"encoding"`
	Tokens   []string             `json:"tokens"`
}

// MarshalJSON implements json.Marshaler.
func (e *Encoding) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodingJSON{Encoding: e.code, Tokens: e.tokens})
}

// UnmarshalJSON implements json.Unmarshaler. The token table must
// cover exactly the letter alphabet of the embedded code.
func (e *Encoding) UnmarshalJSON(data []byte) error {
	var in encodingJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("jimi: decode persisted encoding: %w", err)
	}
	if in.Encoding == nil {
		return fmt.Errorf("%w: missing code table", ErrTokensMismatch)
	}
	if _, err := Tokens(in.Tokens).Costs(); err != nil {
		return err
	}
	if len(in.Tokens) != in.Encoding.Letters() {
		return fmt.Errorf("%w: %d tokens for %d letters",
			ErrTokensMismatch, len(in.Tokens), in.Encoding.Letters())
	}
	e.code = in.Encoding
	e.tokens = Tokens(in.Tokens)
	return nil
}
