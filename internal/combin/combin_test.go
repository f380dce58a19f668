package combin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	require.Equal(t, uint64(1), Factorial(0))
	require.Equal(t, uint64(1), Factorial(1))
	require.Equal(t, uint64(120), Factorial(5))
	require.Equal(t, uint64(40320), Factorial(8))
	require.Equal(t, uint64(479001600), Factorial(12))
	require.Equal(t, uint64(2432902008176640000), Factorial(20))
}

func TestFactorial_WidthBoundaries(t *testing.T) {
	// The documented practical boundaries for narrow output widths.
	require.LessOrEqual(t, Factorial(5), uint64(math.MaxUint8)+1)
	require.LessOrEqual(t, Factorial(8), uint64(math.MaxUint16)+1)
	require.LessOrEqual(t, Factorial(12), uint64(math.MaxUint32)+1)
	require.Greater(t, Factorial(6), uint64(math.MaxUint8))
	require.Greater(t, Factorial(9), uint64(math.MaxUint16))
	require.Greater(t, Factorial(13), uint64(math.MaxUint32))
}

func TestBinomial(t *testing.T) {
	require.Equal(t, uint64(1), Binomial(0, 0))
	require.Equal(t, uint64(1), Binomial(7, 0))
	require.Equal(t, uint64(7), Binomial(7, 1))
	require.Equal(t, uint64(35), Binomial(7, 3))
	require.Equal(t, uint64(495), Binomial(12, 4))
	require.Equal(t, uint64(0), Binomial(3, 4))
}

func TestBinomial_Symmetry(t *testing.T) {
	for n := 0; n <= MaxBinomialN; n++ {
		for k := 0; k <= n; k++ {
			require.Equal(t, Binomial(n, n-k), Binomial(n, k), "C(%d,%d)", n, k)
		}
	}
}

func TestBinomial_PascalIdentity(t *testing.T) {
	for n := 2; n <= MaxBinomialN; n++ {
		for k := 1; k < n; k++ {
			require.Equal(t, Binomial(n-1, k-1)+Binomial(n-1, k), Binomial(n, k), "C(%d,%d)", n, k)
		}
	}
}

func TestBinomial_LargestRowFitsUint64(t *testing.T) {
	// Row 67 is the last row where the central coefficient fits a uint64.
	require.Equal(t, uint64(14226520737620288370), Binomial(67, 33))
}
