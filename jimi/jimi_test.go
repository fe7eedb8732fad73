package jimi_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hajiman/bitpack"
	"github.com/katalvlaran/hajiman/freq"
	"github.com/katalvlaran/hajiman/jimi"
	"github.com/katalvlaran/hajiman/lexing"
)

// asciiTokens is a small prefix-free table handy for readable tests.
var asciiTokens = jimi.Tokens{"aa", "aba", "abb", "baa", "bb"}

func uniformEncoding(t *testing.T, tokens jimi.Tokens, w bitpack.Width) *jimi.Encoding {
	t.Helper()
	enc, err := jimi.New(tokens, freq.Uniform(w))
	require.NoError(t, err, "uniform encoding builds")
	return enc
}

// honeyWater is the reference workload: every byte value plus two
// overlapping ramps, giving a skewed but full-coverage sample.
func honeyWater() []byte {
	var src []byte
	for b := 0; b < 256; b++ {
		src = append(src, byte(b))
	}
	for b := 199; b >= 10; b-- {
		src = append(src, byte(b))
	}
	for b := 100; b < 190; b++ {
		src = append(src, byte(b))
	}
	return src
}

// TestRoundTrip_AllWidths is the flagship property: decode(encode(x))
// truncated to the original length equals x, for every width.
func TestRoundTrip_AllWidths(t *testing.T) {
	src := honeyWater()

	for _, w := range []bitpack.Width{bitpack.Width4, bitpack.Width6, bitpack.Width8} {
		enc := uniformEncoding(t, jimi.DefaultTokens(), w)
		dec, err := enc.Decoder()
		require.NoError(t, err, "default tokens are prefix-free (width %d)", w)

		text, n := enc.Encoder().EncodeToString(src)
		require.Equal(t, len(src), n, "original length reported (width %d)", w)

		back, err := dec.DecodeToBytes(text)
		require.NoError(t, err, "clean text decodes fully (width %d)", w)
		require.GreaterOrEqual(t, len(back), n, "decode covers the source (width %d)", w)
		assert.Equal(t, src, back[:n], "round trip at width %d", w)
	}
}

// TestRoundTrip_FrequencyBased trains the code on the payload itself.
func TestRoundTrip_FrequencyBased(t *testing.T) {
	src := []byte(strings.Repeat("hello, honey water! ", 40))

	dist, err := freq.NewCounter(bitpack.Width8).AddBytes(src).Finish()
	require.NoError(t, err, "sample normalizes")
	enc, err := jimi.New(jimi.DefaultTokens(), dist)
	require.NoError(t, err, "frequency-based encoding builds")
	dec, err := enc.Decoder()
	require.NoError(t, err, "decoder builds")

	text, n := enc.Encoder().EncodeToString(src)
	back, err := dec.DecodeToBytes(text)
	require.NoError(t, err, "decodes cleanly")
	assert.Equal(t, src, back[:n], "tuned encoding round-trips its own sample")
}

// TestEncoder_ArenaMatchesCodeTable checks the (offset, length) spans
// against a naive per-symbol rendering.
func TestEncoder_ArenaMatchesCodeTable(t *testing.T) {
	enc := uniformEncoding(t, jimi.DefaultTokens(), bitpack.Width6)
	tokens := enc.Tokens()
	encoder := enc.Encoder()

	for s := bitpack.Symbol(0); s <= bitpack.Width6.Max(); s++ {
		var want strings.Builder
		for _, id := range enc.Code(s) {
			want.WriteString(tokens[id])
		}
		assert.Equal(t, want.String(), encoder.EncodeSymbol(s),
			"arena slice of symbol %d matches its code rendering", s)
	}
}

// TestNew_TokenValidation covers the configuration-fatal inputs.
func TestNew_TokenValidation(t *testing.T) {
	_, err := jimi.New(nil, freq.Uniform(bitpack.Width4))
	assert.ErrorIs(t, err, jimi.ErrNoTokens, "nil token table is fatal")

	_, err = jimi.New(jimi.Tokens{"ok", ""}, freq.Uniform(bitpack.Width4))
	assert.ErrorIs(t, err, jimi.ErrEmptyToken, "empty token is fatal")
}

// TestDecoder_NonPrefixFreeTokens is the canonical {"ab","a"} failure,
// tagged as a token-layer error.
func TestDecoder_NonPrefixFreeTokens(t *testing.T) {
	enc, err := jimi.New(jimi.Tokens{"ab", "a"}, freq.Uniform(bitpack.Width4))
	require.NoError(t, err, "building the code itself does not touch token characters")

	_, err = enc.Decoder()
	require.ErrorIs(t, err, lexing.ErrNotPrefixFree, "a prefixes ab")

	var layered *jimi.LayerError
	require.ErrorAs(t, err, &layered, "error carries its layer")
	assert.Equal(t, jimi.LayerToken, layered.Layer, "violation is in the token layer")
}

// TestStream_ChunkedEquivalence decodes the same text whole and split
// at every rune boundary, expecting identical symbols.
func TestStream_ChunkedEquivalence(t *testing.T) {
	enc := uniformEncoding(t, jimi.DefaultTokens(), bitpack.Width8)
	dec, err := enc.Decoder()
	require.NoError(t, err, "decoder builds")

	text, _ := enc.Encoder().EncodeToString([]byte("chunk boundaries are invisible"))
	runes := []rune(text)

	want, err := dec.Decode(text)
	require.NoError(t, err, "single-chunk decode is clean")

	for cut := 0; cut <= len(runes); cut += 7 {
		st := dec.NewStream()
		got, err := st.FeedString(string(runes[:cut]))
		require.NoError(t, err, "first chunk decodes (cut %d)", cut)
		rest, err := st.FeedString(string(runes[cut:]))
		require.NoError(t, err, "second chunk decodes (cut %d)", cut)
		got = append(got, rest...)

		require.NoError(t, st.Flush(), "stream ends on a boundary (cut %d)", cut)
		assert.Equal(t, want, got, "cut at rune %d changes nothing", cut)
	}
}

// TestDecode_ErrorTagging checks both layers' failure modes.
func TestDecode_ErrorTagging(t *testing.T) {
	enc := uniformEncoding(t, asciiTokens, bitpack.Width4)
	dec, err := enc.Decoder()
	require.NoError(t, err, "ascii decoder builds")

	// A rune no token uses: token-layer invalid letter.
	_, err = dec.Decode("aaz")
	require.ErrorIs(t, err, lexing.ErrInvalidLetter, "z is outside the token alphabet")
	var layered *jimi.LayerError
	require.ErrorAs(t, err, &layered, "layer tag present")
	assert.Equal(t, jimi.LayerToken, layered.Layer, "rune errors come from the token layer")

	// Truncated input: incomplete trailing token.
	text, _ := enc.Encoder().EncodeToString([]byte{0x12})
	runes := []rune(text)
	_, err = dec.Decode(string(runes[:len(runes)-1]))
	require.ErrorIs(t, err, lexing.ErrUnexpectedTermination, "truncation is a termination")

	// DecodeToBytes flags the same truncation as incomplete input.
	_, err = dec.DecodeToBytes(string(runes[:len(runes)-1]))
	assert.ErrorIs(t, err, lexing.ErrUnexpectedTermination, "incomplete input flagged")
}

// TestEncoding_JSONRoundTrip persists and reloads the full encoding.
func TestEncoding_JSONRoundTrip(t *testing.T) {
	enc := uniformEncoding(t, jimi.DefaultTokens(), bitpack.Width6)

	blob, err := json.Marshal(enc)
	require.NoError(t, err, "encoding marshals")

	var back jimi.Encoding
	require.NoError(t, json.Unmarshal(blob, &back), "encoding unmarshals")
	assert.True(t, enc.Equal(&back), "persisted form reproduces an equal encoding")

	// A reloaded encoding must be fully operational.
	dec, err := back.Decoder()
	require.NoError(t, err, "reloaded decoder builds")
	text, n := back.Encoder().EncodeToString([]byte("revived"))
	out, err := dec.DecodeToBytes(text)
	require.NoError(t, err, "reloaded codec decodes")
	assert.Equal(t, []byte("revived"), out[:n], "reloaded codec round-trips")
}

// TestEncoding_UnmarshalMismatch rejects token tables that do not
// cover the letter alphabet.
func TestEncoding_UnmarshalMismatch(t *testing.T) {
	enc := uniformEncoding(t, jimi.DefaultTokens(), bitpack.Width4)
	blob, err := json.Marshal(enc)
	require.NoError(t, err, "encoding marshals")

	var doctored map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &doctored), "blob reparses")
	doctored["tokens"], _ = json.Marshal([]string{"哈基米", "曼波"})
	reblob, _ := json.Marshal(doctored)

	var back jimi.Encoding
	err = json.Unmarshal(reblob, &back)
	assert.ErrorIs(t, err, jimi.ErrTokensMismatch, "two tokens cannot index ten letters")
}
