//go:build !datatypes_purego

package datatypes

import "math/bits"

// This file holds the default word arithmetic. Every helper maps to a
// math/bits intrinsic, which the compiler lowers to single instructions on
// 64-bit targets. Build with the 'datatypes_purego' tag to swap in the
// portable 32-bit-halves versions from arith_purego.go; both must agree.

const arithStrategy = "bits"

func mul64(u, v uint64) (hi, lo uint64) {
	return bits.Mul64(u, v)
}

func add64(x, y, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(x, y, carry)
}

func sub64(x, y, borrow uint64) (diff, borrowOut uint64) {
	return bits.Sub64(x, y, borrow)
}

// quorem128by64 divides the 128-bit value (u1, u0) by v. The caller must
// guarantee v != 0 and u1 < v so the quotient fits in 64 bits.
func quorem128by64(u1, u0, v uint64) (q, r uint64) {
	return bits.Div64(u1, u0, v)
}
