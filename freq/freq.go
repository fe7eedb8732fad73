package freq

import (
	"errors"
	"math"

	"github.com/katalvlaran/hajiman/bitpack"
)

// sumTolerance bounds how far a normalized distribution may drift
// from summing to exactly 1.
const sumTolerance = 1e-4

var (
	// ErrEmptySample is returned by Finish when no symbols were counted.
	ErrEmptySample = errors.New("freq: cannot normalize an empty sample")
	// ErrNormalization indicates the smoothed probabilities failed to
	// sum to 1 within tolerance. Construction must abort: a partially
	// valid distribution would corrupt every code built from it.
	ErrNormalization = errors.New("freq: smoothed probabilities do not sum to 1")
)

// Counter accumulates raw per-symbol occurrence counts.
type Counter struct {
	width  bitpack.Width
	counts []uint64
	total  uint64
}

// NewCounter returns an empty Counter over the alphabet of w.
func NewCounter(w bitpack.Width) *Counter {
	return &Counter{
		width:  w,
		counts: make([]uint64, w.AlphabetSize()),
	}
}

// Add records one occurrence of s.
func (c *Counter) Add(s bitpack.Symbol) {
	c.counts[s]++
	c.total++
}

// AddSymbols records every symbol of syms.
func (c *Counter) AddSymbols(syms []bitpack.Symbol) *Counter {
	for _, s := range syms {
		c.Add(s)
	}
	return c
}

// AddBytes splits data at the counter's width and records the
// resulting symbols, padding included.
func (c *Counter) AddBytes(data []byte) *Counter {
	syms, _ := c.width.Split(data)
	return c.AddSymbols(syms)
}

// Total returns how many symbols have been counted so far.
func (c *Counter) Total() uint64 { return c.total }

// Finish normalizes the counts into a probability distribution,
// applies zero-frequency smoothing and derives the cumulative arrays.
// The Counter may keep accumulating afterwards; Finish is a snapshot.
func (c *Counter) Finish() (*Distribution, error) {
	if c.total == 0 {
		return nil, ErrEmptySample
	}

	probs := make([]float64, len(c.counts))
	zero := 0
	for i, n := range c.counts {
		probs[i] = float64(n) / float64(c.total)
		if n == 0 {
			zero++
		}
	}

	if zero > 0 {
		shared := math.Min(0.05, float64(zero)*0.005)
		added := shared / float64(zero)
		left := 1.0 - shared
		for i := range probs {
			if c.counts[i] == 0 {
				probs[i] = added
			} else {
				probs[i] *= left
			}
		}
	}

	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1.0) >= sumTolerance {
		return nil, ErrNormalization
	}

	return fromProbs(c.width, probs), nil
}

// Uniform returns the distribution of a sample in which every symbol
// of the alphabet occurred exactly once. Use it when no sample text
// is available.
func Uniform(w bitpack.Width) *Distribution {
	n := w.AlphabetSize()
	probs := make([]float64, n)
	p := 1.0 / float64(n)
	for i := range probs {
		probs[i] = p
	}
	return fromProbs(w, probs)
}

// Distribution is an immutable smoothed probability distribution over
// a fixed-width symbol alphabet, with the two cumulative views used
// by the code builder. Every probability is strictly positive.
type Distribution struct {
	width  bitpack.Width
	probs  []float64
	cum    []float64 // inclusive prefix sums
	cumMid []float64 // cum[i] - probs[i]/2
}

func fromProbs(w bitpack.Width, probs []float64) *Distribution {
	cum := make([]float64, len(probs))
	cumMid := make([]float64, len(probs))
	run := 0.0
	for i, p := range probs {
		run += p
		cum[i] = run
		cumMid[i] = run - p/2
	}
	return &Distribution{width: w, probs: probs, cum: cum, cumMid: cumMid}
}

// Width returns the symbol width the distribution was built over.
func (d *Distribution) Width() bitpack.Width { return d.width }

// Prob returns the smoothed probability of s.
func (d *Distribution) Prob(s bitpack.Symbol) float64 { return d.probs[s] }

// Cum returns the inclusive cumulative probability up to and
// including s.
func (d *Distribution) Cum(s bitpack.Symbol) float64 { return d.cum[s] }

// CumBefore returns the cumulative probability of all symbols
// strictly before s, i.e. Cum(s-1) with Cum(-1) defined as 0.
func (d *Distribution) CumBefore(s bitpack.Symbol) float64 {
	if s == 0 {
		return 0
	}
	return d.cum[s-1]
}

// CumMid returns Cum(s) minus half of s's own mass, the midpoint
// cumulative the partitioner compares against letter sub-intervals.
func (d *Distribution) CumMid(s bitpack.Symbol) float64 { return d.cumMid[s] }
