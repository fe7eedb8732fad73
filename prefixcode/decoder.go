package prefixcode

import (
	"github.com/katalvlaran/hajiman/bitpack"
	"github.com/katalvlaran/hajiman/letters"
	"github.com/katalvlaran/hajiman/lexing"
)

// Decoder walks letter streams back to symbols through a dense
// letter-indexed trie built from the encoding's code table.
type Decoder struct {
	lexer *lexing.Lexer[letters.ID, bitpack.Symbol]
	width bitpack.Width
}

// NewDecoder builds the decode trie for enc. A prefix-freedom
// violation here means the encoding was corrupted (hand-edited or
// mis-deserialized); freshly built encodings cannot trigger it.
func NewDecoder(enc *Encoding) (*Decoder, error) {
	pairs := make([]lexing.Pair[letters.ID, bitpack.Symbol], len(enc.codes))
	for s, code := range enc.codes {
		pairs[s] = lexing.Pair[letters.ID, bitpack.Symbol]{
			Label: bitpack.Symbol(s),
			Seq:   []letters.ID(code),
		}
	}

	lexer, err := lexing.NewLexer(pairs, lexing.NewDense[letters.ID, bitpack.Symbol](enc.nLetters))
	if err != nil {
		return nil, err
	}
	return &Decoder{lexer: lexer, width: enc.width}, nil
}

// NewStream starts a resumable decode; see lexing.Stream for the
// chunk-boundary guarantees.
func (d *Decoder) NewStream() *lexing.Stream[letters.ID, bitpack.Symbol] {
	return d.lexer.NewStream()
}

// Decode eagerly decodes a complete letter sequence. It returns the
// symbols decoded so far together with the first error encountered;
// input ending mid-code surfaces as ErrUnexpectedTermination.
func (d *Decoder) Decode(ids []letters.ID) ([]bitpack.Symbol, error) {
	st := d.NewStream()
	var out []bitpack.Symbol
	for _, id := range ids {
		sym, done, err := st.Feed(id)
		if err != nil {
			return out, err
		}
		if done {
			out = append(out, sym)
		}
	}
	return out, st.Flush()
}
