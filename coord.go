// Package coord provides bijective combinatorial coordinate coding for
// search engines and puzzle-state representations.
//
// Three independent coding schemes each map a finite arrangement onto the
// smallest possible integer range and back, omitting every bit that is
// implied by the others:
//
//   - Permutation coding (factorial number system): a total ordering of N
//     distinct values <-> [0, N!)
//   - Position coding (combinatorial number system): the subset of positions
//     occupied by interesting elements <-> [0, C(N,K))
//   - Property coding (mixed radix with parity omission): per-element labels
//     over base B that sum to 0 mod B <-> [0, B^(N-1))
//
// The design is drawn from Rubik's-Cube-style coordinate systems: a cube
// state decomposes into a corner permutation coordinate, an edge-slice
// position coordinate and orientation property coordinates, whose product
// indexes pruning tables and transposition tables.
//
// # Basic Usage
//
// Encoding and decoding a permutation:
//
//	code, err := coord.EncodePermutation[uint16]([]uint8{3, 6, 5, 7, 0, 2, 1, 4})
//	// code == 21021
//
//	perm, err := coord.DecodePermutation(code, []uint8{0, 1, 2, 3, 4, 5, 6, 7})
//	// perm == [3 6 5 7 0 2 1 4]
//
// Composite state keys for transposition tables:
//
//	key := coord.StateKey(uint64(permCode), uint64(posCode), uint64(orientCode))
//
// Dense pruning tables over a coordinate space live in the table package;
// the coders themselves live in the coding package, re-exported here for
// convenience.
//
// All operations are pure functions without shared state and are safe for
// unsynchronized concurrent use.
package coord

import (
	"cmp"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/coord/coding"
	"github.com/arloliu/coord/endian"
)

// EncodePermutation maps the ordering of data onto an integer in [0, N!).
// See coding.EncodePermutation.
func EncodePermutation[E coding.Code, T cmp.Ordered](data []T) (E, error) {
	return coding.EncodePermutation[E](data)
}

// DecodePermutation reconstructs the ordering encoded by EncodePermutation
// against a reference set in arbitrary order. See coding.DecodePermutation.
func DecodePermutation[E coding.Integer, T cmp.Ordered](code E, ref []T) ([]T, error) {
	return coding.DecodePermutation(code, ref)
}

// EncodePosition maps the positions of interesting elements onto an integer
// in [0, C(N,K)). See coding.EncodePosition.
func EncodePosition[E coding.Code, T any](data []T, isInteresting func(T) bool) (E, error) {
	return coding.EncodePosition[E](data, isInteresting)
}

// DecodePosition reconstructs the interesting-position mask encoded by
// EncodePosition. See coding.DecodePosition.
func DecodePosition[E coding.Integer](code E, numInteresting, length int) ([]bool, error) {
	return coding.DecodePosition(code, numInteresting, length)
}

// EncodeProperty maps a per-element base-B property onto an integer in
// [0, B^(N-1)), relying on the caller-guaranteed parity of the digits.
// See coding.EncodeProperty.
func EncodeProperty[E coding.Code, T any](data []T, mapping func(T) uint8, base uint8) (E, error) {
	return coding.EncodeProperty[E](data, mapping, base)
}

// DecodeProperty reconstructs the digit sequence encoded by EncodeProperty,
// including the parity-omitted final digit. See coding.DecodeProperty.
func DecodeProperty[E coding.Integer](code E, base uint8, length int) ([]uint8, error) {
	return coding.DecodeProperty(code, base, length)
}

// StateKey condenses a composite coordinate tuple into a single 64-bit
// transposition-table key using xxHash64.
//
// Unlike the coders, StateKey is not bijective: it is a hash for table
// bucketing and duplicate detection, not a reversible coordinate. Callers
// needing exact keys should combine coordinates arithmetically instead
// (the coordinate spaces are published by the coders' range bounds).
func StateKey(coords ...uint64) uint64 {
	engine := endian.GetLittleEndianEngine()
	var digest xxhash.Digest
	digest.Reset()

	var buf [8]byte
	for _, c := range coords {
		engine.PutUint64(buf[:], c)
		_, _ = digest.Write(buf[:])
	}

	return digest.Sum64()
}
