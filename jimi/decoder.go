package jimi

import (
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/hajiman/bitpack"
	"github.com/katalvlaran/hajiman/letters"
	"github.com/katalvlaran/hajiman/lexing"
	"github.com/katalvlaran/hajiman/prefixcode"
)

// Decoder chains the two decode stages: runes → letter indices via a
// hash-backed trie over the token characters, then letter indices →
// symbols via the dense code trie. Immutable and shareable; each
// decode runs on its own Stream.
type Decoder struct {
	width     bitpack.Width
	tokenizer *lexing.Lexer[rune, letters.ID]
	symbols   *prefixcode.Decoder
}

func newDecoder(e *Encoding) (*Decoder, error) {
	pairs := make([]lexing.Pair[rune, letters.ID], len(e.tokens))
	for i, tok := range e.tokens {
		pairs[i] = lexing.Pair[rune, letters.ID]{Label: letters.ID(i), Seq: []rune(tok)}
	}
	tokenizer, err := lexing.NewLexer(pairs, lexing.NewHash[rune, letters.ID](e.tokens.alphabet()))
	if err != nil {
		return nil, &LayerError{Layer: LayerToken, Err: fmt.Errorf("token table: %w", err)}
	}

	symbols, err := prefixcode.NewDecoder(e.code)
	if err != nil {
		return nil, &LayerError{Layer: LayerSymbol, Err: err}
	}
	return &Decoder{width: e.code.Width(), tokenizer: tokenizer, symbols: symbols}, nil
}

// NewStream starts a resumable decode: both layers' partial-match
// state lives in the Stream and survives chunk boundaries.
func (d *Decoder) NewStream() *Stream {
	return &Stream{
		tokens:  d.tokenizer.NewStream(),
		symbols: d.symbols.NewStream(),
	}
}

// Stream is one two-stage decode in progress.
type Stream struct {
	tokens  *lexing.Stream[rune, letters.ID]
	symbols *lexing.Stream[letters.ID, bitpack.Symbol]
}

// Feed consumes one rune. It returns (symbol, true, nil) when the
// rune completes both a token and a code, (0, false, nil) when the
// match merely deepens, and a *LayerError on a mismatch. The walk
// state survives errors, so feeding may continue best-effort.
func (s *Stream) Feed(r rune) (bitpack.Symbol, bool, error) {
	id, done, err := s.tokens.Feed(r)
	if err != nil {
		return 0, false, &LayerError{Layer: LayerToken, Err: err}
	}
	if !done {
		return 0, false, nil
	}
	sym, done, err := s.symbols.Feed(id)
	if err != nil {
		return 0, false, &LayerError{Layer: LayerSymbol, Err: err}
	}
	if !done {
		return 0, false, nil
	}
	return sym, true, nil
}

// FeedString feeds a whole chunk, collecting completed symbols until
// the first error. Both are returned; the stream stays usable.
func (s *Stream) FeedString(chunk string) ([]bitpack.Symbol, error) {
	var out []bitpack.Symbol
	for i, r := range chunk {
		sym, done, err := s.Feed(r)
		if err != nil {
			return out, fmt.Errorf("at byte %d: %w", i, err)
		}
		if done {
			out = append(out, sym)
		}
	}
	return out, nil
}

// Flush reports whether the stream sits on a clean boundary: no
// partial token and no partial code. A *LayerError wrapping
// ErrUnexpectedTermination means "incomplete input" - the stream may
// still be fed more.
func (s *Stream) Flush() error {
	if err := s.tokens.Flush(); err != nil {
		return &LayerError{Layer: LayerToken, Err: err}
	}
	if err := s.symbols.Flush(); err != nil {
		return &LayerError{Layer: LayerSymbol, Err: err}
	}
	return nil
}

// Decode eagerly decodes text into symbols. The returned symbols are
// always valid up to the error, which may be a trailing termination
// (incomplete input) - check with errors.Is against
// lexing.ErrUnexpectedTermination.
func (d *Decoder) Decode(text string) ([]bitpack.Symbol, error) {
	st := d.NewStream()
	out, err := st.FeedString(text)
	if err != nil {
		return out, err
	}
	return out, st.Flush()
}

// DecodeTo streams the decoded bytes into w, assembling symbol groups
// through the width's packer. Decode errors pass through unchanged;
// sink failures surface as *bitpack.SinkError.
func (d *Decoder) DecodeTo(text string, w io.Writer) error {
	st := d.NewStream()
	runes := []rune(text)
	i, flushed := 0, false

	return d.width.JoinResults(func() (bitpack.Symbol, error, bool) {
		for i < len(runes) {
			r := runes[i]
			i++
			sym, done, err := st.Feed(r)
			if err != nil {
				return 0, err, true
			}
			if done {
				return sym, nil, true
			}
		}
		if !flushed {
			flushed = true
			if err := st.Flush(); err != nil {
				return 0, err, true
			}
		}
		return 0, nil, false
	}, w)
}

// DecodeToBytes materializes the decode into a byte buffer. The
// bytes are valid up to the error in every case; a trailing
// termination (errors.Is against lexing.ErrUnexpectedTermination)
// means "incomplete input, feed more", anything else means the text
// is malformed.
func (d *Decoder) DecodeToBytes(text string) ([]byte, error) {
	var buf bytes.Buffer
	err := d.DecodeTo(text, &buf)
	return buf.Bytes(), err
}
