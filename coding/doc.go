// Package coding implements the three bijective coordinate coders: permutation
// coding in the factorial number system, position coding in the combinatorial
// number system, and property coding in a mixed-radix system with a
// parity-omitted final digit.
//
// Each coder maps a finite arrangement to the smallest possible integer range
// and back:
//
//   - EncodePermutation / DecodePermutation: a total ordering of N distinct
//     values <-> [0, N!)
//   - EncodePosition / DecodePosition: the set of positions holding
//     "interesting" elements <-> [0, C(N,K))
//   - EncodeProperty / DecodeProperty: per-element base-B labels whose sum is
//     0 mod B <-> [0, B^(N-1))
//
// The coders are independent; callers compose them into composite state
// coordinates (the classic Rubik's-Cube-style coordinate decomposition) for
// use as array indices, hash keys, or transposition-table entries.
//
// All computation happens in a uint64 working type. The caller chooses the
// output width through the Code type parameter; a result that does not fit is
// reported as errs.ErrCodeOverflow, never truncated. Every operation is a
// pure function over its arguments and is safe for unsynchronized concurrent
// use.
package coding
