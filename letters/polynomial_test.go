package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSmallestPositiveRoot_Quadratic isolates the positive root of
// x² + x − 1 among its two real roots.
func TestSmallestPositiveRoot_Quadratic(t *testing.T) {
	p := polynomial{-1, 1, 1} // roots ≈ 0.618 and ≈ -1.618

	root, ok := smallestPositiveRoot(p, 1e-7)
	require.True(t, ok, "a positive root exists")
	assert.InDelta(t, 0.6180339887, root, 1e-5, "negative root must be skipped")
}

// TestSmallestPositiveRoot_PicksLeftmost verifies that the smaller of
// two positive roots is returned.
func TestSmallestPositiveRoot_PicksLeftmost(t *testing.T) {
	// (x-1)(x-3) = x² - 4x + 3, roots 1 and 3.
	p := polynomial{3, -4, 1}

	root, ok := smallestPositiveRoot(p, 1e-7)
	require.True(t, ok, "roots exist")
	assert.InDelta(t, 1.0, root, 1e-5, "the leftmost positive root wins")
}

// TestSmallestPositiveRoot_NoPositive covers a polynomial whose real
// roots are all negative.
func TestSmallestPositiveRoot_NoPositive(t *testing.T) {
	// (x+1)(x+2) = x² + 3x + 2.
	p := polynomial{2, 3, 1}

	_, ok := smallestPositiveRoot(p, 1e-7)
	assert.False(t, ok, "no positive root to report")
}

// TestSturmChain_CountsDistinctRoots checks root counting on a cubic
// with three known roots.
func TestSturmChain_CountsDistinctRoots(t *testing.T) {
	// (x-1)(x-2)(x-4) = x³ - 7x² + 14x - 8.
	p := polynomial{-8, 14, -7, 1}
	chain := sturmChain(p)

	assert.Equal(t, 3, rootsIn(chain, 0, 5), "three roots in (0,5]")
	assert.Equal(t, 1, rootsIn(chain, 0, 1.5), "one root in (0,1.5]")
	assert.Equal(t, 2, rootsIn(chain, 1.5, 5), "two roots in (1.5,5]")
	assert.Equal(t, 0, rootsIn(chain, 2.5, 3.5), "no root in (2.5,3.5]")
}
