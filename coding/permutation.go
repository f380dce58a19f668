package coding

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/coord/errs"
	"github.com/arloliu/coord/internal/combin"
)

// MaxPermutationLen is the longest sequence the permutation coder accepts.
// 20! is the largest factorial representable in the uint64 working type;
// longer sequences fail with errs.ErrSequenceTooLong instead of wrapping.
const MaxPermutationLen = combin.MaxFactorialN

// EncodePermutation maps the ordering of data onto a single integer in
// [0, N!) using the factorial number system (Lehmer code).
//
// For each position i, the number of earlier elements comparing strictly
// less than data[i] becomes the factorial digit of weight i!. Sorting data
// in decreasing order yields code 0:
//
//	sorted:   7, 6, 5, 4, 3, 2, 1, 0
//	shuffled: 3, 6, 5, 7, 0, 2, 1, 4
//	counts:   0, 1, 1, 3, 0, 1, 1, 4
//	code:     0*0! + 1*1! + 1*2! + 3*3! + 0*4! + 1*5! + 1*6! + 4*7! = 21021
//
// Every bit of entropy in the ordering maps to a bit of the code, so the
// narrowest sufficient output width can be chosen via the type parameter:
// 5! fits uint8, 8! fits uint16, 12! fits uint32, 20! fits uint64. A code
// that does not fit the requested width fails with errs.ErrCodeOverflow.
//
// Elements must be distinct; duplicate values make the coding ambiguous and
// are not supported.
func EncodePermutation[E Code, T cmp.Ordered](data []T) (E, error) {
	if len(data) > MaxPermutationLen {
		return 0, fmt.Errorf("%w: %d elements, max %d", errs.ErrSequenceTooLong, len(data), MaxPermutationLen)
	}

	var code uint64
	for i, x := range data {
		var count uint64
		for _, y := range data[:i] {
			if y < x {
				count++
			}
		}
		code += count * combin.Factorial(i)
	}

	return narrow[E](code)
}

// DecodePermutation reconstructs the ordering encoded by EncodePermutation.
//
// ref supplies the element set in arbitrary order; the result is the unique
// permutation of ref matching code. The factorial digits are recovered by
// dividing out decreasing factorials; this must run from the highest index
// down, since each quotient is defined relative to the magnitude still
// remaining, not the absolute digit position.
//
// Fails with errs.ErrNegativeCode for negative codes and
// errs.ErrCodeOutOfRange when code >= len(ref)!.
func DecodePermutation[E Integer, T cmp.Ordered](code E, ref []T) ([]T, error) {
	c, err := widen(code)
	if err != nil {
		return nil, err
	}

	n := len(ref)
	if n > MaxPermutationLen {
		return nil, fmt.Errorf("%w: %d elements, max %d", errs.ErrSequenceTooLong, n, MaxPermutationLen)
	}
	if c >= combin.Factorial(n) {
		return nil, fmt.Errorf("%w: code %d, coordinate space %d!", errs.ErrCodeOutOfRange, c, n)
	}

	// Recover the factorial digits, highest weight first.
	counts := make([]uint64, n)
	for i := n - 1; i >= 0; i-- {
		f := combin.Factorial(i)
		counts[i] = c / f
		c %= f
	}

	sorted := slices.Clone(ref)
	slices.Sort(sorted)

	// Rebuild from the last position backwards: digit i selects the
	// counts[i]-th smallest value not yet placed.
	used := make([]bool, n)
	out := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		k := counts[i]
		for j, v := range sorted {
			if used[j] {
				continue
			}
			if k == 0 {
				used[j] = true
				out[i] = v

				break
			}
			k--
		}
	}

	return out, nil
}
