package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/hajiman/bitpack"
	"github.com/katalvlaran/hajiman/freq"
	"github.com/katalvlaran/hajiman/jimi"
)

// width validates the --width flag.
func width() (bitpack.Width, error) {
	w := bitpack.Width(symbolWidth)
	if !w.Ok() {
		return 0, fmt.Errorf("unsupported --width %d (want 4, 6 or 8)", symbolWidth)
	}
	return w, nil
}

// readInput resolves the input precedence: data argument, then
// --input-file, then stdin.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	if inputFile != "" {
		return os.ReadFile(inputFile)
	}
	return io.ReadAll(os.Stdin)
}

// openOutput resolves --output-file, defaulting to stdout.
func openOutput() (io.WriteCloser, error) {
	if outputFile == "" {
		return os.Stdout, nil
	}
	return os.Create(outputFile)
}

// loadEncoding reads a JSON encoding from --encoding-file.
func loadEncoding() (*jimi.Encoding, error) {
	blob, err := os.ReadFile(encodingFile)
	if err != nil {
		return nil, err
	}
	var enc jimi.Encoding
	if err := json.Unmarshal(blob, &enc); err != nil {
		return nil, err
	}
	return &enc, nil
}

// buildEncoding picks the encoding for encode: an explicit file wins,
// then the input's own frequencies, then the uniform fallback.
func buildEncoding(w bitpack.Width, data []byte) (*jimi.Encoding, error) {
	if encodingFile != "" {
		log.Debugf("loading encoding from %s", encodingFile)
		return loadEncoding()
	}

	dist := freq.Uniform(w)
	if frequencyBased {
		log.Debug("building frequency-based encoding from the input")
		d, err := freq.NewCounter(w).AddBytes(data).Finish()
		if err != nil {
			return nil, err
		}
		dist = d
	}
	return jimi.New(jimi.DefaultTokens(), dist)
}

// marshalEncoding renders the JSON header for encode output.
func marshalEncoding(enc *jimi.Encoding) ([]byte, error) {
	if prettyEncoding {
		return json.MarshalIndent(enc, "", "  ")
	}
	return json.Marshal(enc)
}

func runEncode(args []string) error {
	w, err := width()
	if err != nil {
		return err
	}
	data, err := readInput(args)
	if err != nil {
		return err
	}
	enc, err := buildEncoding(w, data)
	if err != nil {
		return err
	}

	out, err := openOutput()
	if err != nil {
		return err
	}
	defer out.Close()

	header, err := marshalEncoding(enc)
	if err != nil {
		return err
	}
	if _, err := out.Write(header); err != nil {
		return err
	}

	text, n := enc.Encoder().EncodeToString(data)
	log.Debugf("encoded %d bytes into %d bytes of token text", n, len(text))
	_, err = io.WriteString(out, text)
	return err
}

func runDecode(args []string) error {
	if _, err := width(); err != nil {
		return err
	}
	data, err := readInput(args)
	if err != nil {
		return err
	}

	var enc *jimi.Encoding
	switch {
	case encodingFile != "":
		if enc, err = loadEncoding(); err != nil {
			return err
		}
	default:
		// Look for a self-describing JSON header, as produced by
		// encode; without one, assume the uniform encoding.
		enc, data = splitHeader(data)
		if enc == nil {
			w, _ := width()
			log.Debug("no encoding header found, assuming uniform probabilities")
			if enc, err = jimi.New(jimi.DefaultTokens(), freq.Uniform(w)); err != nil {
				return err
			}
		}
	}

	dec, err := enc.Decoder()
	if err != nil {
		return err
	}

	out, err := openOutput()
	if err != nil {
		return err
	}
	defer out.Close()

	return dec.DecodeTo(string(data), out)
}

// splitHeader tries to peel a leading JSON encoding off data. It
// returns (nil, data) when no valid header is present.
func splitHeader(data []byte) (*jimi.Encoding, []byte) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var enc jimi.Encoding
	if err := dec.Decode(&enc); err != nil {
		return nil, data
	}
	return &enc, data[dec.InputOffset():]
}
