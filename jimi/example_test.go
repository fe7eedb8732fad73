package jimi_test

import (
	"fmt"

	"github.com/katalvlaran/hajiman/bitpack"
	"github.com/katalvlaran/hajiman/freq"
	"github.com/katalvlaran/hajiman/jimi"
)

// ExampleEncoding demonstrates the end-to-end codec: build an
// encoding from a frequency sample, render bytes as token text, then
// decode the text back and truncate the width padding away.
func ExampleEncoding() {
	sample := []byte("mi mi mi ha ha")

	dist, err := freq.NewCounter(bitpack.Width8).AddBytes(sample).Finish()
	if err != nil {
		fmt.Println("finish:", err)
		return
	}
	enc, err := jimi.New(jimi.DefaultTokens(), dist)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	text, n := enc.Encoder().EncodeToString([]byte("ha"))

	dec, err := enc.Decoder()
	if err != nil {
		fmt.Println("decoder:", err)
		return
	}
	back, err := dec.DecodeToBytes(text)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	fmt.Println(string(back[:n]))
	// Output: ha
}
