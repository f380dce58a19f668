// Package errs defines the sentinel errors shared across the coord packages.
//
// Callers should match errors with errors.Is; packages wrap these sentinels
// with fmt.Errorf("%w: detail", ...) to attach context while keeping the
// sentinel matchable.
package errs

import "errors"

// Coding errors, returned by the coders in the coding package.
var (
	// ErrCodeOverflow indicates the natural result of an encode operation
	// does not fit the caller-requested output width.
	ErrCodeOverflow = errors.New("code overflows requested width")

	// ErrNegativeCode indicates a decode operation received a negative code.
	ErrNegativeCode = errors.New("code is negative")

	// ErrCodeOutOfRange indicates a decode operation received a code outside
	// the coordinate space defined by its parameters.
	ErrCodeOutOfRange = errors.New("code out of coordinate range")

	// ErrSequenceTooLong indicates the input sequence exceeds the length the
	// uint64 working type can represent without overflow.
	ErrSequenceTooLong = errors.New("sequence too long for 64-bit working range")

	// ErrEmptySequence indicates an operation received an empty sequence
	// where at least one element is required.
	ErrEmptySequence = errors.New("sequence is empty")

	// ErrDigitOutOfRange indicates a property mapping produced a digit that
	// is not below the requested base.
	ErrDigitOutOfRange = errors.New("digit out of range for base")

	// ErrInvalidBase indicates a property coding base below 2.
	ErrInvalidBase = errors.New("base must be at least 2")

	// ErrInvalidLength indicates a decode operation received a non-positive
	// or otherwise unusable output length.
	ErrInvalidLength = errors.New("invalid output length")

	// ErrInvalidCount indicates a position decode received a num-interesting
	// count that cannot fit the requested length.
	ErrInvalidCount = errors.New("invalid interesting-element count")
)

// Table errors, returned by the table package.
var (
	// ErrInvalidMagic indicates serialized table data does not start with
	// the coord table magic bytes.
	ErrInvalidMagic = errors.New("invalid table magic")

	// ErrUnsupportedVersion indicates serialized table data uses a format
	// version this build does not understand.
	ErrUnsupportedVersion = errors.New("unsupported table format version")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// checksum recorded in the table header.
	ErrChecksumMismatch = errors.New("table checksum mismatch")

	// ErrPayloadTruncated indicates serialized table data is shorter than
	// its header claims.
	ErrPayloadTruncated = errors.New("table payload truncated")

	// ErrEntryOutOfRange indicates a table access with a coordinate outside
	// [0, Len).
	ErrEntryOutOfRange = errors.New("table entry out of range")

	// ErrInvalidTableSize indicates a table constructed with a non-positive
	// entry count.
	ErrInvalidTableSize = errors.New("invalid table size")

	// ErrInvalidCompressionType indicates an unknown compression type in an
	// option or a serialized header.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)
