//go:build datatypes_purego

package datatypes

import "math/bits"

// Portable word arithmetic, selected with the 'datatypes_purego' build tag.
// Products are assembled from four 32x32->64 partial products and division
// uses the two-digit long division from Hacker's Delight; nothing here relies
// on a 64x64->128 multiply or a 128/64 divide instruction.

const arithStrategy = "purego"

func mul64(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}

func add64(x, y, carry uint64) (sum, carryOut uint64) {
	sum = x + y + carry
	if sum < x || (sum == x && carry != 0) {
		carryOut = 1
	}
	return sum, carryOut
}

func sub64(x, y, borrow uint64) (diff, borrowOut uint64) {
	diff = x - y - borrow
	if x < y || (x == y && borrow != 0) {
		borrowOut = 1
	}
	return diff, borrowOut
}

// quorem128by64 divides the 128-bit value (u1, u0) by v. The caller must
// guarantee v != 0 and u1 < v so the quotient fits in 64 bits.
//
// Hacker's delight 9-4, divlu:
func quorem128by64(u1, u0, v uint64) (q, r uint64) {
	var b uint64 = 1 << 32
	var un1, un0, vn1, vn0, q1, q0, un32, un21, un10, rhat, left, right uint64

	s := uint(bits.LeadingZeros64(v))
	v <<= s

	vn1 = v >> 32
	vn0 = v & 0xffffffff

	if s > 0 {
		un32 = (u1 << s) | (u0 >> (64 - s))
		un10 = u0 << s
	} else {
		un32 = u1
		un10 = u0
	}

	un1 = un10 >> 32
	un0 = un10 & 0xffffffff

	q1 = un32 / vn1
	rhat = un32 % vn1

	left = q1 * vn0
	right = (rhat << 32) + un1

again1:
	if (q1 >= b) || (left > right) {
		q1--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un1
			goto again1
		}
	}

	un21 = (un32 << 32) + (un1 - (q1 * v))

	q0 = un21 / vn1
	rhat = un21 % vn1

	left = q0 * vn0
	right = (rhat << 32) | un0

again2:
	if (q0 >= b) || (left > right) {
		q0--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un0
			goto again2
		}
	}

	return (q1 << 32) | q0, ((un21 << 32) + (un0 - (q0 * v))) >> s
}
