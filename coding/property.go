package coding

import (
	"fmt"
	"math"

	"github.com/arloliu/coord/errs"
)

// EncodeProperty maps a finite-cardinality per-element property onto a
// single integer in [0, B^(N-1)).
//
// mapping must translate each element to a digit in [0, base). Only the
// first N-1 digits are encoded, interpreted as a base-B positional number;
// the final digit carries no information because the caller guarantees the
// full digit sequence sums to 0 mod base, so it is reconstructed from the
// others on decode.
//
// The parity precondition is the caller's responsibility and is not
// validated: a mapping whose digits do not sum to 0 mod base encodes
// without error but decodes to a different digit sequence. A digit at or
// above base, however, is structurally invalid and fails with
// errs.ErrDigitOutOfRange.
//
// Fails with errs.ErrCodeOverflow when the code does not fit the uint64
// working type or the requested output width, errs.ErrInvalidBase for a
// base below 2, and errs.ErrEmptySequence for empty data.
func EncodeProperty[E Code, T any](data []T, mapping func(T) uint8, base uint8) (E, error) {
	if base < 2 {
		return 0, fmt.Errorf("%w: base %d", errs.ErrInvalidBase, base)
	}
	if len(data) == 0 {
		return 0, errs.ErrEmptySequence
	}

	b := uint64(base)
	var code uint64
	for _, x := range data[:len(data)-1] {
		d := mapping(x)
		if d >= base {
			return 0, fmt.Errorf("%w: digit %d, base %d", errs.ErrDigitOutOfRange, d, base)
		}
		if code > (math.MaxUint64-uint64(d))/b {
			return 0, fmt.Errorf("%w: %d digits of base %d exceed the working range", errs.ErrCodeOverflow, len(data)-1, base)
		}
		code = code*b + uint64(d)
	}

	return narrow[E](code)
}

// DecodeProperty reconstructs the digit sequence encoded by EncodeProperty.
//
// The code is rendered as length-1 base-B digits, most significant first
// and left-padded with zeros, then the omitted final digit is recovered as
// (base - sum mod base) mod base so the full sequence sums to 0 mod base.
//
// Fails with errs.ErrNegativeCode, errs.ErrInvalidBase,
// errs.ErrInvalidLength for a non-positive length, and
// errs.ErrCodeOutOfRange when code >= base^(length-1).
func DecodeProperty[E Integer](code E, base uint8, length int) ([]uint8, error) {
	if base < 2 {
		return nil, fmt.Errorf("%w: base %d", errs.ErrInvalidBase, base)
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLength, length)
	}

	c, err := widen(code)
	if err != nil {
		return nil, err
	}

	b := uint64(base)
	out := make([]uint8, length)
	var sum uint64
	for i := length - 2; i >= 0; i-- {
		d := c % b
		c /= b
		out[i] = uint8(d)
		sum += d
	}
	if c != 0 {
		return nil, fmt.Errorf("%w: code exceeds %d^%d", errs.ErrCodeOutOfRange, base, length-1)
	}
	out[length-1] = uint8((b - sum%b) % b)

	return out, nil
}
