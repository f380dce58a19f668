package coding

import (
	"fmt"

	"github.com/arloliu/coord/errs"
	"github.com/arloliu/coord/internal/combin"
)

// MaxPositionLen is the longest sequence the position coder accepts. It is
// the last length for which every C(N,K) coordinate space fits the uint64
// working type.
const MaxPositionLen = combin.MaxBinomialN

// EncodePosition maps the set of positions occupied by interesting elements
// onto a single integer in [0, C(N,K)), where K is the number of elements
// for which isInteresting reports true. The relative order among the
// interesting elements is deliberately ignored, which is what shrinks the
// coordinate space from permutations to subsets.
//
// The scan runs left to right keeping a running count of interesting
// elements seen so far. Each uninteresting element after the first
// interesting one contributes C(index, running-1); elements before the
// first interesting element contribute nothing. This enumerates K-subsets
// in lexicographic order of their index sets (the combinatorial number
// system; see http://kociemba.org/math/UDSliceCoord.htm for the cube
// coordinate this construction comes from).
//
// Fails with errs.ErrCodeOverflow when the code does not fit the requested
// output width.
func EncodePosition[E Code, T any](data []T, isInteresting func(T) bool) (E, error) {
	if len(data) > MaxPositionLen {
		return 0, fmt.Errorf("%w: %d elements, max %d", errs.ErrSequenceTooLong, len(data), MaxPositionLen)
	}

	var code uint64
	seen := 0
	for i, x := range data {
		if isInteresting(x) {
			seen++

			continue
		}
		if seen == 0 {
			continue
		}
		code += combin.Binomial(i, seen-1)
	}

	return narrow[E](code)
}

// DecodePosition reconstructs the interesting-position mask encoded by
// EncodePosition. The result has length elements; true marks a position
// held by one of the numInteresting interesting elements.
//
// Positions are resolved from index length-1 downwards with the standard
// greedy inverse of the combinatorial number system: at each index the
// cutoff is C(index, remaining-1) (zero once all interesting slots are
// placed); a code below the cutoff takes the position, otherwise the cutoff
// is subtracted and the position is left unmarked. Descending order is what
// makes the threshold decision unique, since later binomial coefficients
// are always smaller.
//
// Fails with errs.ErrNegativeCode, errs.ErrInvalidCount when numInteresting
// is negative or exceeds length, and errs.ErrCodeOutOfRange when
// code >= C(length, numInteresting).
func DecodePosition[E Integer](code E, numInteresting, length int) ([]bool, error) {
	c, err := widen(code)
	if err != nil {
		return nil, err
	}

	if length < 0 || length > MaxPositionLen {
		return nil, fmt.Errorf("%w: length %d, max %d", errs.ErrSequenceTooLong, length, MaxPositionLen)
	}
	if numInteresting < 0 || numInteresting > length {
		return nil, fmt.Errorf("%w: %d interesting of %d", errs.ErrInvalidCount, numInteresting, length)
	}
	if c >= combin.Binomial(length, numInteresting) {
		return nil, fmt.Errorf("%w: code %d, coordinate space C(%d,%d)", errs.ErrCodeOutOfRange, c, length, numInteresting)
	}

	out := make([]bool, length)
	remaining := numInteresting
	for i := length - 1; i >= 0; i-- {
		var cutoff uint64
		if remaining > 0 {
			cutoff = combin.Binomial(i, remaining-1)
		}
		if c < cutoff {
			out[i] = true
			remaining--
		} else {
			c -= cutoff
		}
	}

	return out, nil
}
