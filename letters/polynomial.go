package letters

import "math"

// polynomial holds real coefficients, coefs[i] multiplying x^i.
// The zero-length polynomial is identically zero.
type polynomial []float64

// trimEps treats coefficients this small as zero when normalizing
// Euclidean remainders; keeps the Sturm chain from chasing noise.
const trimEps = 1e-12

func (p polynomial) degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

func (p polynomial) trim() polynomial {
	d := p.degree()
	return p[:d+1]
}

// eval computes p(x) by Horner's rule.
func (p polynomial) eval(x float64) float64 {
	v := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + p[i]
	}
	return v
}

// derivative returns p'.
func (p polynomial) derivative() polynomial {
	if len(p) <= 1 {
		return polynomial{}
	}
	d := make(polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}
	return d.trim()
}

// rem returns the remainder of p divided by q, with near-zero leading
// coefficients dropped so the remainder sequence keeps shrinking.
func (p polynomial) rem(q polynomial) polynomial {
	r := make(polynomial, len(p))
	copy(r, p)
	dq := q.degree()
	lead := q[dq]
	for r.degree() >= dq {
		dr := r.degree()
		f := r[dr] / lead
		for i := 0; i <= dq; i++ {
			r[dr-dq+i] -= f * q[i]
		}
		r[dr] = 0 // cancel exactly, independent of rounding
		for j := dr - 1; j >= 0 && math.Abs(r[j]) < trimEps; j-- {
			r[j] = 0
		}
		r = r.trim()
	}
	return r.trim()
}

// sturmChain builds the canonical Sturm sequence
// p, p', -rem(p, p'), -rem(p', p2), ...
func sturmChain(p polynomial) []polynomial {
	chain := []polynomial{p.trim(), p.derivative()}
	for {
		last := chain[len(chain)-1]
		if last.degree() <= 0 {
			return chain
		}
		r := chain[len(chain)-2].rem(last)
		if r.degree() < 0 {
			return chain
		}
		neg := make(polynomial, len(r))
		for i, c := range r {
			neg[i] = -c
		}
		chain = append(chain, neg)
	}
}

// signChanges counts sign alternations of the chain evaluated at x,
// skipping exact zeros per Sturm's theorem.
func signChanges(chain []polynomial, x float64) int {
	changes, prev := 0, 0
	for _, q := range chain {
		v := q.eval(x)
		s := 0
		switch {
		case v > 0:
			s = 1
		case v < 0:
			s = -1
		}
		if s != 0 {
			if prev != 0 && s != prev {
				changes++
			}
			prev = s
		}
	}
	return changes
}

// rootsIn returns the number of distinct real roots of the chain's
// polynomial in the half-open interval (lo, hi].
func rootsIn(chain []polynomial, lo, hi float64) int {
	return signChanges(chain, lo) - signChanges(chain, hi)
}

// smallestPositiveRoot isolates and refines the smallest real root of
// p greater than zero, to within tol. The second return value is
// false when p has no positive root.
func smallestPositiveRoot(p polynomial, tol float64) (float64, bool) {
	p = p.trim()
	if p.degree() < 1 {
		return 0, false
	}
	chain := sturmChain(p)

	// Cauchy bound: every root has |x| ≤ 1 + max|a_i| / |a_n|.
	d := p.degree()
	maxCoef := 0.0
	for _, c := range p[:d] {
		maxCoef = math.Max(maxCoef, math.Abs(c))
	}
	hi := 1 + maxCoef/math.Abs(p[d])

	if rootsIn(chain, 0, hi) == 0 {
		return 0, false
	}

	// Shrink (lo, hi] towards the leftmost positive root: keep the
	// half that still contains at least one root, preferring the
	// lower half so larger roots are discarded.
	lo := 0.0
	for hi-lo > tol {
		mid := (lo + hi) / 2
		if math.Abs(p.eval(mid)) < trimEps {
			return mid, true
		}
		if rootsIn(chain, lo, mid) > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2, true
}
