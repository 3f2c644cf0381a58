package datatypes

import "math"

// Cmp compares d to e and returns:
//
//	-1 if d <  e
//	 0 if d == e
//	+1 if d >  e
//
// Operands of different scale are compared exactly; 1.0 and 1 are equal, as
// are zero and negative zero.
func (d Decimal) Cmp(e Decimal) int {
	dz, ez := d.IsZero(), e.IsZero()
	if dz && ez {
		return 0
	}

	dn, en := d.IsNegative() && !dz, e.IsNegative() && !ez
	if dn != en {
		if dn {
			return -1
		}
		return 1
	}

	l, r, _ := alignScale(d, e)
	c := l.Cmp(r)
	if dn {
		return -c
	}
	return c
}

func (d Decimal) Equal(e Decimal) bool            { return d.Cmp(e) == 0 }
func (d Decimal) GreaterThan(e Decimal) bool      { return d.Cmp(e) > 0 }
func (d Decimal) GreaterOrEqualTo(e Decimal) bool { return d.Cmp(e) >= 0 }
func (d Decimal) LessThan(e Decimal) bool         { return d.Cmp(e) < 0 }
func (d Decimal) LessOrEqualTo(e Decimal) bool    { return d.Cmp(e) <= 0 }

// CmpInt64 compares d to an integer. A fractional d is never equal to one.
func (d Decimal) CmpInt64(v int64) int {
	return d.Cmp(NewFromInt64(v))
}

// CmpUint64 compares d to an unsigned integer. Negative values of d are
// always less.
func (d Decimal) CmpUint64(v uint64) int {
	return d.Cmp(NewFromUint64(v))
}

// CmpFloat64 compares d to f after converting f with NewFromFloat64, so f is
// only considered to 15 fractional digits. ok is false when f is NaN, which
// is unordered against every Decimal. Floats of magnitude 2^96 or more,
// the infinities included, lie beyond every Decimal.
func (d Decimal) CmpFloat64(f float64) (result int, ok bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= 0x1p96: // +Inf included; NewFromFloat64 would clamp these.
		return -1, true
	case f <= -0x1p96:
		return 1, true
	}
	return d.Cmp(NewFromFloat64(f)), true
}

// CmpI128 compares d to an I128 exactly: i is scaled up to d's scale rather
// than d being truncated.
func (d Decimal) CmpI128(i I128) int {
	dn := d.IsNegative() && !d.IsZero()
	in := i.IsNegative()
	if dn != in {
		if dn {
			return -1
		}
		return 1
	}

	l := U256From128(d.coef())
	r := mul128to256(i.Abs().AsU128(), pow10U128(d.Scale()))
	c := l.Cmp(r)
	if dn {
		return -c
	}
	return c
}
