package letters

import (
	"errors"
	"math"
)

// kraftTolerance bounds the re-validation of Σ c^cost − 1 after the
// root has been solved.
const kraftTolerance = 1e-4

// rootTolerance is the bisection width at which the solver stops.
const rootTolerance = 1e-5

var (
	// ErrBadCost is returned for a letter cost below 1.
	ErrBadCost = errors.New("letters: letter costs must be at least 1")
	// ErrNoCosts is returned for an empty cost vector.
	ErrNoCosts = errors.New("letters: cost vector must not be empty")
	// ErrNoRoot indicates the characteristic equation has no positive
	// root, so no prefix code exists for the cost vector.
	ErrNoRoot = errors.New("letters: characteristic equation has no positive root")
	// ErrKraftCheck indicates the solved root failed the Kraft
	// re-validation. This is a solver invariant, not an input error.
	ErrKraftCheck = errors.New("letters: solved root fails the Kraft equality")
)

// ID identifies one letter of the code alphabet by its position in
// the cost vector.
type ID int

// Code is the ordered, non-empty letter sequence assigned to one
// symbol.
type Code []ID

// Append returns a new Code extending c by id. The receiver is left
// untouched, so recursion prefixes can be shared safely.
func (c Code) Append(id ID) Code {
	out := make(Code, len(c)+1)
	copy(out, c)
	out[len(c)] = id
	return out
}

// Clone returns an independent copy of c.
func (c Code) Clone() Code {
	if c == nil {
		return nil
	}
	out := make(Code, len(c))
	copy(out, c)
	return out
}

// Costs is an immutable letter-cost vector together with the solved
// Kraft root and the prefix power table the partitioner consumes.
type Costs struct {
	costs []int
	root  float64
	// powBefore[m] = Σ_{j<m} root^cost(j); one extra slot so
	// powBefore[len(costs)] is the (≈1) full sum.
	powBefore []float64
}

// NewCosts validates the cost vector, solves the characteristic
// equation P(x) = Σ x^cost(j) − 1 for its smallest positive root and
// re-checks the Kraft equality at the solution.
func NewCosts(costs []int) (*Costs, error) {
	if len(costs) == 0 {
		return nil, ErrNoCosts
	}
	maxCost := 0
	for _, cost := range costs {
		if cost < 1 {
			return nil, ErrBadCost
		}
		if cost > maxCost {
			maxCost = cost
		}
	}

	p := make(polynomial, maxCost+1)
	p[0] = -1
	for _, cost := range costs {
		p[cost]++
	}

	root, ok := smallestPositiveRoot(p, rootTolerance)
	if !ok {
		return nil, ErrNoRoot
	}

	c := &Costs{
		costs:     append([]int(nil), costs...),
		root:      root,
		powBefore: make([]float64, len(costs)+1),
	}
	sum := 0.0
	for i, cost := range costs {
		c.powBefore[i] = sum
		sum += math.Pow(root, float64(cost))
	}
	c.powBefore[len(costs)] = sum

	if math.Abs(sum-1.0) >= kraftTolerance {
		return nil, ErrKraftCheck
	}
	return c, nil
}

// Len returns the number of letters in the alphabet.
func (c *Costs) Len() int { return len(c.costs) }

// Cost returns the rendering cost of letter m.
func (c *Costs) Cost(m ID) int { return c.costs[m] }

// Root returns the solved Kraft root.
func (c *Costs) Root() float64 { return c.root }

// Pow returns root^cost(m), letter m's share of probability space.
func (c *Costs) Pow(m ID) float64 {
	return c.powBefore[m+1] - c.powBefore[m]
}

// PowBefore returns Σ_{j<m} root^cost(j), the cumulative share of all
// letters ordered before m.
func (c *Costs) PowBefore(m ID) float64 { return c.powBefore[m] }
