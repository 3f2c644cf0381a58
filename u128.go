package datatypes

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer. It is the magnitude type behind I128
// division and Decimal mantissas.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }

// U128FromBigInt creates a U128 from a big.Int. Negative values clamp to 0
// and values above MaxU128 clamp to MaxU128; accurate is false in both cases.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
		case 1:
			out.lo = uint64(words[0])
		case 2:
			out.hi = uint64(words[1])
			out.lo = uint64(words[0])
		default:
			return MaxU128, false
		}

	case 32:
		switch len(words) {
		case 0:
		case 1:
			out.lo = uint64(words[0])
		case 2:
			out.lo = (uint64(words[1]) << 32) | (uint64(words[0]))
		case 3:
			out.hi = uint64(words[2])
			out.lo = (uint64(words[1]) << 32) | (uint64(words[0]))
		case 4:
			out.hi = (uint64(words[3]) << 32) | (uint64(words[2]))
			out.lo = (uint64(words[1]) << 32) | (uint64(words[0]))
		default:
			return MaxU128, false
		}

	default:
		panic("datatypes: unsupported bit size")
	}

	return out, true
}

// RandU128 generates an unsigned 128-bit random integer from an external
// source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	var buf [i128MaxDigits]byte
	return string(buf[u.formatDigits(buf[:]):])
}

// formatDigits writes the decimal digits of u right-aligned into buf and
// returns the index of the first digit. buf must have room for every digit:
// 39 covers any U128.
func (u U128) formatDigits(buf []byte) int {
	pos := len(buf)
	for u.hi != 0 {
		var r uint64
		u, r = u.QuoRem64(10)
		pos--
		buf[pos] = byte('0' + r)
	}
	lo := u.lo
	for lo >= 10 {
		pos--
		buf[pos] = byte('0' + lo%10)
		lo /= 10
	}
	pos--
	buf[pos] = byte('0' + lo)
	return pos
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies this U128 into a big.Int, allowing you to retain and
// recycle memory.
func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		if u.hi > 0 {
			b.SetUint64(u.hi)
			b.Lsh(b, 64)
		}
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

// AsBigInt allocates a new big.Int and copies this U128 into it.
func (u U128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	u.IntoBigInt(b)
	return b
}

func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	return (float64(u.hi) * wrapUint64Float) + float64(u.lo)
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports whether i can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = add64(u.lo, n.lo, 0)
	v.hi, _ = add64(u.hi, n.hi, carry)
	return v
}

// Add64 adds a uint64 to u. Overflow wraps.
func (u U128) Add64(n uint64) (v U128) {
	var carry uint64
	v.lo, carry = add64(u.lo, n, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = sub64(u.lo, n.lo, 0)
	v.hi, _ = sub64(u.hi, n.hi, borrow)
	return v
}

// Cmp compares u to n and returns:
//
//	< 0 if u <  n
//	  0 if u == n
//	> 0 if u >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (u U128) Cmp(n U128) int {
	if u.hi == n.hi {
		if u.lo > n.lo {
			return 1
		} else if u.lo < n.lo {
			return -1
		}
	} else {
		if u.hi > n.hi {
			return 1
		} else if u.hi < n.hi {
			return -1
		}
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}
	return v
}

// Mul returns the low 128 bits of u * n. Overflow wraps.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = mul64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

// Mul64 returns the low 128 bits of u * n. Overflow wraps.
func (u U128) Mul64(n uint64) (dest U128) {
	dest.hi, dest.lo = mul64(u.lo, n)
	dest.hi += u.hi * n
	return dest
}

// Quo returns the quotient u/by for by != 0. If by == 0, QuoRem panics with
// an ErrDivisionByZero error.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, it
// panics with an ErrDivisionByZero error.
//
// There are three tiers, picked by operand width: both operands in 64 bits
// use the native division; a 64-bit divisor runs the 128/64 long division;
// anything wider falls back to binary long division.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi|by.lo == 0 {
		panic(ErrDivisionByZero.New("u128 quo"))
	}

	if u.hi|by.hi == 0 {
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}

	if by.hi == 0 {
		q, r.lo = u.QuoRem64(by.lo)
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	return quorem128bin(u, by, u.LeadingZeros(), by.LeadingZeros())
}

// QuoRem64 divides u by a non-zero uint64. The high word is divided first
// and its remainder carried into the 128/64 division of the low word.
func (u U128) QuoRem64(by uint64) (q U128, r uint64) {
	if by == 0 {
		panic(ErrDivisionByZero.New("u128 quo"))
	}
	if u.hi == 0 {
		return U128{lo: u.lo / by}, u.lo % by
	}
	q.hi = u.hi / by
	q.lo, r = quorem128by64(u.hi%by, u.lo, by)
	return q, r
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// quorem128bin is shift-subtract long division; u must be greater than by.
func quorem128bin(u, by U128, uLeading0, byLeading0 uint) (q, r U128) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		// {{{ Lsh(1)
		q.hi = (q.hi << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		// }}}

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(u.hi < by.hi || (u.hi == by.hi && u.lo < by.lo)) {
			u = u.Sub(by)
			q.lo |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	r = u
	return q, r
}

// fitsCoef reports whether u fits in a 96-bit decimal mantissa.
func (u U128) fitsCoef() bool {
	return u.hi <= maxUint32
}
