package jimi

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTokens is returned for an empty or nil token table.
	ErrNoTokens = errors.New("jimi: token table must not be empty")
	// ErrEmptyToken is returned when a token renders to zero runes.
	ErrEmptyToken = errors.New("jimi: tokens must not be empty strings")
	// ErrTokensMismatch is returned when a persisted encoding carries
	// a token table of the wrong size for its letter alphabet.
	ErrTokensMismatch = errors.New("jimi: token table does not match the letter alphabet")
)

// Layer names the decode stage an error originated from.
type Layer int

const (
	// LayerToken is the rune-level tokenizer turning text into letters.
	LayerToken Layer = iota
	// LayerSymbol is the letter-level trie turning letters into symbols.
	LayerSymbol
)

func (l Layer) String() string {
	if l == LayerToken {
		return "token"
	}
	return "symbol"
}

// LayerError tags a decode error with the layer that produced it,
// leaving the underlying lexing error reachable through Unwrap.
type LayerError struct {
	Layer Layer
	Err   error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("jimi: %s layer: %v", e.Layer, e.Err)
}

func (e *LayerError) Unwrap() error { return e.Err }
