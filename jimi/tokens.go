package jimi

import "unicode/utf8"

// Tokens is an ordered letter-token table: entry i renders letter i.
// For decoding to work the tokens must be prefix-free at the
// character level; Decoder enforces that at construction.
type Tokens []string

// defaultTokens is the classic honey-water alphabet: three short
// interjections, then progressively longer ones. Costs (rune counts)
// come out as [3,4,3,3,4,2,3,3,2,2].
var defaultTokens = Tokens{
	"哈基米",
	"那呗路多",
	"阿西嘎",
	"嗨呀库",
	"欧嘛滋哩",
	"曼波",
	"大狗叫",
	"叮咚鸡",
	"呜哦",
	"哇恰",
}

// DefaultTokens returns a fresh copy of the built-in token table.
func DefaultTokens() Tokens {
	out := make(Tokens, len(defaultTokens))
	copy(out, defaultTokens)
	return out
}

// Costs derives the letter-cost vector: one cost per token, equal to
// its rune count. Fails with ErrNoTokens or ErrEmptyToken.
func (t Tokens) Costs() ([]int, error) {
	if len(t) == 0 {
		return nil, ErrNoTokens
	}
	costs := make([]int, len(t))
	for i, tok := range t {
		n := utf8.RuneCountInString(tok)
		if n == 0 {
			return nil, ErrEmptyToken
		}
		costs[i] = n
	}
	return costs, nil
}

// alphabet returns the deduplicated set of runes used by any token.
func (t Tokens) alphabet() []rune {
	seen := make(map[rune]struct{})
	var out []rune
	for _, tok := range t {
		for _, r := range tok {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}
