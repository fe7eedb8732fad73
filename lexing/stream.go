package lexing

// Lexer owns an immutable prefix trie. It is safe for concurrent use:
// every decode walks its own Stream while the trie is only read.
type Lexer[K comparable, L any] struct {
	root Map[K, L]
}

// NewLexer builds the trie for pairs over the proto map and wraps it
// in a Lexer. Fails with ErrNotPrefixFree or ErrEmptySequence.
func NewLexer[K comparable, L any](pairs []Pair[K, L], proto Map[K, L]) (*Lexer[K, L], error) {
	root, err := Build(pairs, proto)
	if err != nil {
		return nil, err
	}
	return &Lexer[K, L]{root: root}, nil
}

// NewStream starts a decode at the trie root with no pending prefix.
func (lx *Lexer[K, L]) NewStream() *Stream[K, L] {
	return &Stream[K, L]{root: lx.root, cur: lx.root}
}

// Stream is one resumable decode in progress: the current trie node
// plus the letters matched since the last completed label. Feeding
// input in one chunk or in many produces identical output; the walk
// state survives chunk boundaries and is never rebuilt from the root.
type Stream[K comparable, L any] struct {
	root   Map[K, L]
	cur    Map[K, L]
	prefix []K
}

// Feed consumes one letter. It returns (label, true, nil) when the
// letter completes a code, (zero, false, nil) when the match simply
// deepens, and (zero, false, err) on a mismatch:
//
//   - *InvalidError    - k is outside the alphabet.
//   - *UnexpectedError - k is valid but no code continues this way.
//
// The walk state is left untouched on error, so the caller may keep
// feeding to salvage what follows.
func (s *Stream[K, L]) Feed(k K) (L, bool, error) {
	var zero L
	n, inAlphabet := s.cur.Get(k)
	if !inAlphabet {
		return zero, false, &InvalidError[K]{Letter: k}
	}
	if n == nil {
		return zero, false, &UnexpectedError[K]{Prefix: s.Pending(), Letter: k}
	}
	if label, done := n.Leaf(); done {
		s.prefix = s.prefix[:0]
		s.cur = s.root
		return label, true, nil
	}
	s.prefix = append(s.prefix, k)
	s.cur = n.children
	return zero, false, nil
}

// Flush reports whether the stream sits at a code boundary. A
// nonempty pending prefix yields *TerminationError; the state is NOT
// reset, so the caller may still feed more input and Flush again.
func (s *Stream[K, L]) Flush() error {
	if len(s.prefix) == 0 {
		return nil
	}
	return &TerminationError[K]{Prefix: s.Pending()}
}

// Pending returns a copy of the letters matched since the last
// completed label.
func (s *Stream[K, L]) Pending() []K {
	if len(s.prefix) == 0 {
		return nil
	}
	out := make([]K, len(s.prefix))
	copy(out, s.prefix)
	return out
}

// Reset abandons any partial match and returns to the trie root.
func (s *Stream[K, L]) Reset() {
	s.prefix = s.prefix[:0]
	s.cur = s.root
}
