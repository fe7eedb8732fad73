package prefixcode

import (
	"github.com/katalvlaran/hajiman/bitpack"
	"github.com/katalvlaran/hajiman/freq"
	"github.com/katalvlaran/hajiman/letters"
)

// Build assigns a code to every symbol of the distribution's alphabet
// using Mehlhorn's recursive partitioning over the cost vector. The
// returned Encoding is complete, prefix-free and immutable.
func Build(costs *letters.Costs, dist *freq.Distribution) (*Encoding, error) {
	if costs.Len() < 2 {
		return nil, ErrAlphabetTooSmall
	}

	b := &builder{
		costs: costs,
		dist:  dist,
		codes: make([]letters.Code, dist.Width().AlphabetSize()),
	}
	if err := b.code(0, dist.Width().Max(), nil); err != nil {
		return nil, err
	}
	for _, c := range b.codes {
		if len(c) == 0 {
			return nil, ErrPartition
		}
	}

	return &Encoding{
		width:    dist.Width(),
		nLetters: costs.Len(),
		codes:    b.codes,
	}, nil
}

type builder struct {
	costs *letters.Costs
	dist  *freq.Distribution
	codes []letters.Code
}

// code assigns codes to every symbol in the closed range [l, r],
// prefix being the letters already fixed for this subtree.
func (b *builder) code(l, r bitpack.Symbol, prefix letters.Code) error {
	if l == r {
		b.codes[l] = prefix.Clone()
		return nil
	}

	buckets, err := b.partition(l, r)
	if err != nil {
		return err
	}

	for m, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		sub := prefix.Append(letters.ID(m))
		if err := b.code(bucket[0], bucket[len(bucket)-1], sub); err != nil {
			return err
		}
	}
	return nil
}

// partition splits the symbols of [l, r] into one bucket per letter.
// Letter m owns the probability sub-interval
//
//	[apl + Δ·PowBefore(m), apl + Δ·PowBefore(m+1))   with Δ = apr − apl
//
// and collects the symbols whose midpoint cumulative falls inside it.
// The midpoints are nondecreasing, so one merge pass suffices and the
// buckets come out sorted. Symbols pushed past the final boundary by
// rounding (the letter powers sum to 1 only within tolerance) are
// clamped into the last bucket.
func (b *builder) partition(l, r bitpack.Symbol) ([][]bitpack.Symbol, error) {
	apl := b.dist.CumBefore(l)
	apr := b.dist.Cum(r)
	delta := apr - apl

	nLetters := b.costs.Len()
	buckets := make([][]bitpack.Symbol, nLetters)

	m := 0
	for x := l; ; x++ {
		mid := b.dist.CumMid(x)
		for m < nLetters-1 && mid >= apl+delta*b.costs.PowBefore(letters.ID(m+1)) {
			m++
		}
		buckets[m] = append(buckets[m], x)
		if x == r {
			break
		}
	}

	// Anchor the boundary symbols: an empty first (last) bucket steals
	// l (r) from the first (last) nonempty one, so the extreme
	// partitions are never degenerate and recursion always shrinks.
	if len(buckets[0]) == 0 {
		first := firstNonEmpty(buckets)
		if buckets[first][0] != l {
			return nil, ErrPartition
		}
		buckets[first] = buckets[first][1:]
		buckets[0] = []bitpack.Symbol{l}
	}
	if last := nLetters - 1; len(buckets[last]) == 0 {
		src := lastNonEmpty(buckets)
		n := len(buckets[src])
		if buckets[src][n-1] != r {
			return nil, ErrPartition
		}
		buckets[src] = buckets[src][:n-1]
		buckets[last] = []bitpack.Symbol{r}
	}
	return buckets, nil
}

func firstNonEmpty(buckets [][]bitpack.Symbol) int {
	for i, b := range buckets {
		if len(b) > 0 {
			return i
		}
	}
	return -1
}

func lastNonEmpty(buckets [][]bitpack.Symbol) int {
	for i := len(buckets) - 1; i >= 0; i-- {
		if len(buckets[i]) > 0 {
			return i
		}
	}
	return -1
}
