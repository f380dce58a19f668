// Package combin provides the factorial and binomial lookup tables used by
// the coordinate coders.
//
// Both tables are precomputed at package init and sized to the uint64
// working range: 20! is the largest factorial and row 67 is the last
// Pascal-triangle row whose every entry fits in a uint64. Callers are
// expected to range-check their inputs against MaxFactorialN and
// MaxBinomialN before indexing.
package combin

const (
	// MaxFactorialN is the largest n for which n! fits in a uint64.
	MaxFactorialN = 20

	// MaxBinomialN is the largest n for which every C(n,k) fits in a uint64.
	MaxBinomialN = 67
)

var factorials [MaxFactorialN + 1]uint64

var binomials [MaxBinomialN + 1][MaxBinomialN + 1]uint64

func init() {
	factorials[0] = 1
	for n := uint64(1); n <= MaxFactorialN; n++ {
		factorials[n] = factorials[n-1] * n
	}

	for n := 0; n <= MaxBinomialN; n++ {
		binomials[n][0] = 1
		for k := 1; k <= n; k++ {
			binomials[n][k] = binomials[n-1][k-1] + binomials[n-1][k]
		}
	}
}

// Factorial returns n!.
//
// Panics if n > MaxFactorialN; callers validate sequence length first.
func Factorial(n int) uint64 {
	return factorials[n]
}

// Binomial returns C(n,k), the number of k-subsets of an n-element set.
// Returns 0 when k > n, matching the combinatorial convention.
//
// Panics if n > MaxBinomialN or k < 0; callers validate length first.
func Binomial(n, k int) uint64 {
	if k > n {
		return 0
	}

	return binomials[n][k]
}
