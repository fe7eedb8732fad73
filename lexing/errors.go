package lexing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLetter marks a letter outside the trie's alphabet.
	ErrInvalidLetter = errors.New("lexing: letter outside the alphabet")
	// ErrUnexpectedLetter marks a valid letter that extends a dead
	// branch: the prefix matched so far cannot continue with it.
	ErrUnexpectedLetter = errors.New("lexing: letter extends a dead branch")
	// ErrUnexpectedTermination marks input that ended while a code was
	// still being matched. Streaming callers treat it as "feed more
	// input", not as a decode failure.
	ErrUnexpectedTermination = errors.New("lexing: input ended inside a code")
	// ErrNotPrefixFree is returned by Build when one sequence is a
	// prefix of another, which would make decoding ambiguous.
	ErrNotPrefixFree = errors.New("lexing: sequences are not prefix-free")
	// ErrEmptySequence is returned by Build for a pair with no letters.
	ErrEmptySequence = errors.New("lexing: code sequence must not be empty")
)

// InvalidError reports a letter outside the alphabet. Unwraps to
// ErrInvalidLetter.
type InvalidError[K comparable] struct {
	Letter K
}

func (e *InvalidError[K]) Error() string {
	return fmt.Sprintf("lexing: letter %v outside the alphabet", e.Letter)
}

func (e *InvalidError[K]) Unwrap() error { return ErrInvalidLetter }

// UnexpectedError reports a valid letter hitting a dead branch after
// Prefix matched. Unwraps to ErrUnexpectedLetter.
type UnexpectedError[K comparable] struct {
	Prefix []K
	Letter K
}

func (e *UnexpectedError[K]) Error() string {
	return fmt.Sprintf("lexing: letter %v cannot extend prefix %v", e.Letter, e.Prefix)
}

func (e *UnexpectedError[K]) Unwrap() error { return ErrUnexpectedLetter }

// TerminationError reports input ending with Prefix still unmatched.
// Unwraps to ErrUnexpectedTermination.
type TerminationError[K comparable] struct {
	Prefix []K
}

func (e *TerminationError[K]) Error() string {
	return fmt.Sprintf("lexing: input ended after partial match %v", e.Prefix)
}

func (e *TerminationError[K]) Unwrap() error { return ErrUnexpectedTermination }
