package datatypes

import (
	"math/big"
	"math/bits"
)

// U256 holds the intermediates of Decimal arithmetic that can exceed 128
// bits: scale-aligned operands, their sums and the exact 96x96-bit product.
type U256 struct {
	hi, hm, lm, lo uint64
}

func U256From128(v U128) U256  { return U256{lm: v.hi, lo: v.lo} }
func U256From64(v uint64) U256 { return U256{lo: v} }

// mul128to256 returns the full 256-bit product of n and by.
func mul128to256(n, by U128) (out U256) {
	h00, l00 := mul64(n.lo, by.lo)
	h01, l01 := mul64(n.lo, by.hi)
	h10, l10 := mul64(n.hi, by.lo)
	h11, l11 := mul64(n.hi, by.hi)

	var c1, c2, c3, c4 uint64
	out.lo = l00
	out.lm, c1 = add64(h00, l01, 0)
	out.lm, c2 = add64(out.lm, l10, 0)
	out.hm, c3 = add64(h01, h10, c1)
	out.hm, c4 = add64(out.hm, l11, c2)
	out.hi = h11 + c3 + c4
	return out
}

func (u U256) IsZero() bool { return u.hi|u.hm|u.lm|u.lo == 0 }

func (u U256) Add(n U256) (v U256) {
	var c uint64
	v.lo, c = add64(u.lo, n.lo, 0)
	v.lm, c = add64(u.lm, n.lm, c)
	v.hm, c = add64(u.hm, n.hm, c)
	v.hi, _ = add64(u.hi, n.hi, c)
	return v
}

func (u U256) Sub(n U256) (v U256) {
	var b uint64
	v.lo, b = sub64(u.lo, n.lo, 0)
	v.lm, b = sub64(u.lm, n.lm, b)
	v.hm, b = sub64(u.hm, n.hm, b)
	v.hi, _ = sub64(u.hi, n.hi, b)
	return v
}

func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Equal(v U256) bool       { return u == v }
func (u U256) GreaterThan(v U256) bool { return u.Cmp(v) > 0 }
func (u U256) LessThan(v U256) bool    { return u.Cmp(v) < 0 }

func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	} else if u.lo != 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 192
	}
	return 256
}

func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: (u.hi << n) | (u.hm >> (64 - n)),
			hm: (u.hm << n) | (u.lm >> (64 - n)),
			lm: (u.lm << n) | (u.lo >> (64 - n)),
			lo: u.lo << n,
		}

	} else if n == 64 {
		return U256{hi: u.hm, hm: u.lm, lm: u.lo}

	} else if n < 128 {
		n -= 64
		return U256{
			hi: (u.hm << n) | (u.lm >> (64 - n)),
			hm: (u.lm << n) | (u.lo >> (64 - n)),
			lm: u.lo << n,
		}

	} else if n == 128 {
		return U256{hi: u.lm, hm: u.lo}

	} else if n < 192 {
		n -= 128
		return U256{
			hi: (u.lm << n) | (u.lo >> (64 - n)),
			hm: u.lo << n,
		}

	} else if n == 192 {
		return U256{hi: u.lo}
	} else if n < 256 {
		return U256{hi: u.lo << (n - 192)}
	}
	return U256{}
}

func (u U256) Rsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: u.hi >> n,
			hm: (u.hm >> n) | (u.hi << (64 - n)),
			lm: (u.lm >> n) | (u.hm << (64 - n)),
			lo: (u.lo >> n) | (u.lm << (64 - n)),
		}

	} else if n == 64 {
		return U256{hm: u.hi, lm: u.hm, lo: u.lm}

	} else if n < 128 {
		n -= 64
		return U256{
			hm: u.hi >> n,
			lm: (u.hm >> n) | (u.hi << (64 - n)),
			lo: (u.lm >> n) | (u.hm << (64 - n)),
		}

	} else if n == 128 {
		return U256{lm: u.hi, lo: u.hm}

	} else if n < 192 {
		n -= 128
		return U256{
			lm: u.hi >> n,
			lo: (u.hm >> n) | (u.hi << (64 - n)),
		}

	} else if n == 192 {
		return U256{lo: u.hi}

	} else if n < 256 {
		return U256{lo: u.hi >> (n - 192)}
	}
	return U256{}
}

// QuoRem64 divides u by a non-zero uint64, one word at a time from the top,
// carrying each remainder into the next 128/64 division.
func (u U256) QuoRem64(by uint64) (q U256, r uint64) {
	if by == 0 {
		panic(ErrDivisionByZero.New("u256 quo"))
	}
	q.hi, r = quorem128by64(0, u.hi, by)
	q.hm, r = quorem128by64(r, u.hm, by)
	q.lm, r = quorem128by64(r, u.lm, by)
	q.lo, r = quorem128by64(r, u.lo, by)
	return q, r
}

// QuoRem returns the quotient and remainder of u / by for by != 0.
func (u U256) QuoRem(by U256) (q, r U256) {
	if by.IsZero() {
		panic(ErrDivisionByZero.New("u256 quo"))
	}

	if by.hi|by.hm|by.lm == 0 {
		q, r.lo = u.QuoRem64(by.lo)
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	return quorem256bin(u, by, u.LeadingZeros(), by.LeadingZeros())
}

func (u U256) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.lm)
		bits[2] = big.Word(u.hm)
		bits[3] = big.Word(u.hi)
		b.SetBits(bits)

	default:
		var w big.Int
		b.SetUint64(0)
		for _, word := range [...]uint64{u.hi, u.hm, u.lm, u.lo} {
			b.Lsh(b, 64)
			b.Add(b, w.SetUint64(word))
		}
	}
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U256) String() string {
	return u.AsBigInt().String()
}

func (u U256) AsU128() U128 { return U128{hi: u.lm, lo: u.lo} }

func (u U256) IsU128() bool { return u.hi == 0 && u.hm == 0 }

// fitsCoef reports whether u fits in a 96-bit decimal mantissa.
func (u U256) fitsCoef() bool {
	return u.hi == 0 && u.hm == 0 && u.lm <= maxUint32
}

func quorem256bin(u, by U256, uLeading0, byLeading0 uint) (q, r U256) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		if u.Cmp(by) >= 0 {
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
