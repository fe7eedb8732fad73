package jimi_test

import (
	"testing"

	"github.com/katalvlaran/hajiman/bitpack"
	"github.com/katalvlaran/hajiman/freq"
	"github.com/katalvlaran/hajiman/jimi"
)

// benchmarkCodec measures one encode+decode cycle of a fixed payload
// at the given width with the default token table.
func benchmarkCodec(b *testing.B, w bitpack.Width) {
	enc, err := jimi.New(jimi.DefaultTokens(), freq.Uniform(w))
	if err != nil {
		b.Fatalf("build encoding: %v", err)
	}
	dec, err := enc.Decoder()
	if err != nil {
		b.Fatalf("build decoder: %v", err)
	}
	encoder := enc.Encoder()

	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i * 31)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		text, _ := encoder.EncodeToString(payload)
		if _, err := dec.DecodeToBytes(text); err != nil {
			b.Fatalf("decode: %v", err)
		}
	}
}

func BenchmarkCodec_Width4(b *testing.B) { benchmarkCodec(b, bitpack.Width4) }

func BenchmarkCodec_Width6(b *testing.B) { benchmarkCodec(b, bitpack.Width6) }

func BenchmarkCodec_Width8(b *testing.B) { benchmarkCodec(b, bitpack.Width8) }

// BenchmarkEncodeSymbol isolates the arena lookup on the hot path.
func BenchmarkEncodeSymbol(b *testing.B) {
	enc, err := jimi.New(jimi.DefaultTokens(), freq.Uniform(bitpack.Width8))
	if err != nil {
		b.Fatalf("build encoding: %v", err)
	}
	encoder := enc.Encoder()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = encoder.EncodeSymbol(bitpack.Symbol(i & 0xFF))
	}
}
