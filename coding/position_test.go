package coding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/coord/errs"
)

func nonZero(x uint8) bool { return x != 0 }

// positionFixtures maps 12-element masks with 4 interesting slots to their
// lexicographic subset rank (the UD-slice coordinate layout).
var positionFixtures = []struct {
	data []uint8
	code uint64
}{
	{[]uint8{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1}, 0},
	{[]uint8{0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 1}, 1},
	{[]uint8{0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 1}, 2},
	{[]uint8{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1}, 8},
	{[]uint8{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 1, 1}, 9},
	{[]uint8{0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 1}, 62},
	{[]uint8{1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1}, 164},
	{[]uint8{0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0}, 165},
	{[]uint8{0, 1, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0}, 305},
	{[]uint8{1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0}, 494},
}

func TestEncodePosition(t *testing.T) {
	for _, fixture := range positionFixtures {
		code, err := EncodePosition[uint64](fixture.data, nonZero)
		require.NoError(t, err)
		require.Equal(t, fixture.code, code, "mask %v", fixture.data)
	}
}

func TestEncodePosition_RangeBound(t *testing.T) {
	// C(12,4) = 495 spans exactly uint16 territory but never reaches 495.
	for _, fixture := range positionFixtures {
		code, err := EncodePosition[uint16](fixture.data, nonZero)
		require.NoError(t, err)
		require.Less(t, code, uint16(495))
	}
}

func TestEncodePosition_TooSmallWidth(t *testing.T) {
	// Rank 494 does not fit a uint8.
	_, err := EncodePosition[uint8](positionFixtures[9].data, nonZero)
	require.ErrorIs(t, err, errs.ErrCodeOverflow)
}

func TestEncodePosition_NoInteresting(t *testing.T) {
	// With zero interesting elements nothing contributes: C(N,0) = 1.
	code, err := EncodePosition[uint64]([]uint8{0, 0, 0}, nonZero)
	require.NoError(t, err)
	require.Equal(t, uint64(0), code)
}

func TestEncodePosition_SequenceTooLong(t *testing.T) {
	_, err := EncodePosition[uint64](make([]uint8, MaxPositionLen+1), nonZero)
	require.ErrorIs(t, err, errs.ErrSequenceTooLong)
}

func TestDecodePosition(t *testing.T) {
	for _, fixture := range positionFixtures {
		expected := make([]bool, len(fixture.data))
		numInteresting := 0
		for i, x := range fixture.data {
			expected[i] = nonZero(x)
			if expected[i] {
				numInteresting++
			}
		}

		mask, err := DecodePosition(fixture.code, numInteresting, len(fixture.data))
		require.NoError(t, err)
		require.Equal(t, expected, mask, "code %d", fixture.code)
	}
}

func TestDecodePosition_RoundTripExhaustive(t *testing.T) {
	// Every rank in [0, C(8,3)) must decode to a distinct mask that encodes
	// back to the same rank.
	const n, k = 8, 3
	for code := uint64(0); code < 56; code++ {
		mask, err := DecodePosition(code, k, n)
		require.NoError(t, err)

		trues := 0
		for _, b := range mask {
			if b {
				trues++
			}
		}
		require.Equal(t, k, trues)

		got, err := EncodePosition[uint64](mask, func(b bool) bool { return b })
		require.NoError(t, err)
		require.Equal(t, code, got)
	}
}

func TestDecodePosition_Errors(t *testing.T) {
	_, err := DecodePosition(-1, 4, 12)
	require.ErrorIs(t, err, errs.ErrNegativeCode)

	_, err = DecodePosition(uint64(495), 4, 12)
	require.ErrorIs(t, err, errs.ErrCodeOutOfRange)

	_, err = DecodePosition(uint64(0), 13, 12)
	require.ErrorIs(t, err, errs.ErrInvalidCount)

	_, err = DecodePosition(uint64(0), -1, 12)
	require.ErrorIs(t, err, errs.ErrInvalidCount)

	_, err = DecodePosition(uint64(0), 0, MaxPositionLen+1)
	require.ErrorIs(t, err, errs.ErrSequenceTooLong)
}

func TestDecodePosition_Empty(t *testing.T) {
	mask, err := DecodePosition(uint64(0), 0, 0)
	require.NoError(t, err)
	require.Empty(t, mask)
}
