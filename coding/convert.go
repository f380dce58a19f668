package coding

import (
	"fmt"

	"github.com/arloliu/coord/errs"
)

// Code constrains the caller-chosen output width of the encoders.
//
// Encoded coordinates are non-negative by construction, so only unsigned
// widths are offered. Pick the narrowest width whose range covers the
// coordinate space: 5! fits uint8, 8! fits uint16, 12! fits uint32, 20! fits
// uint64.
type Code interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integer constrains the code input of the decoders. Any integer type is
// accepted; negative values are rejected with errs.ErrNegativeCode.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// narrow converts a uint64 working value to the requested output width,
// reporting errs.ErrCodeOverflow when the value does not fit.
func narrow[E Code](v uint64) (E, error) {
	var zero E
	if maxE := uint64(^zero); v > maxE {
		return 0, fmt.Errorf("%w: %d does not fit requested width (max %d)", errs.ErrCodeOverflow, v, maxE)
	}

	return E(v), nil
}

// widen converts a caller-supplied code to the uint64 working type.
func widen[E Integer](code E) (uint64, error) {
	if code < E(0) {
		return 0, fmt.Errorf("%w: %d", errs.ErrNegativeCode, int64(code))
	}

	return uint64(code), nil
}
