package datatypes

// Decimal is a 128-bit decimal floating point value: a 96-bit unsigned
// mantissa, a power-of-ten scale between 0 and 28 and a sign. Its value is
// (-1)^sign * mantissa / 10^scale.
//
// Decimal is an immutable value type; the zero value is 0. Arithmetic never
// wraps: results that do not fit lose low-order digits, and a value whose
// integer part exceeds 96 bits clamps to MaxDecimal or MinusMaxDecimal.
type Decimal struct {
	// flags holds the scale in bits 16-23 and the sign in bit 31. Every other
	// bit is zero.
	flags uint32

	// mant is the 96-bit mantissa, least significant word first.
	mant [3]uint32
}

var (
	Zero = Decimal{}
	One  = Decimal{mant: [3]uint32{1, 0, 0}}

	// MaxDecimal is 79,228,162,514,264,337,593,543,950,335.
	MaxDecimal = Decimal{mant: [3]uint32{maxUint32, maxUint32, maxUint32}}

	// MinusMaxDecimal is the most negative Decimal.
	MinusMaxDecimal = Decimal{flags: decimalSignMask, mant: [3]uint32{maxUint32, maxUint32, maxUint32}}

	// MinDecimal is the smallest positive Decimal, 1e-28.
	MinDecimal = Decimal{flags: decimalMaxScale << decimalScaleShift, mant: [3]uint32{1, 0, 0}}
)

// newDecimal assembles a Decimal. coef must fit in 96 bits and scale must be
// in [0, 28].
func newDecimal(neg bool, coef U128, scale int) Decimal {
	d := Decimal{
		flags: uint32(scale) << decimalScaleShift,
		mant:  [3]uint32{uint32(coef.lo), uint32(coef.lo >> 32), uint32(coef.hi)},
	}
	if neg {
		d.flags |= decimalSignMask
	}
	return d
}

// fitDecimal builds a normalized Decimal from an exact intermediate result.
// Digits are dropped from the right while the mantissa is wider than 96 bits
// or the scale is above 28; an integer part that still does not fit clamps
// to the largest mantissa. scale must not be negative.
func fitDecimal(neg bool, coef U256, scale int) Decimal {
	for scale > 0 && (scale > decimalMaxScale || !coef.fitsCoef()) {
		coef, _ = coef.QuoRem64(10)
		scale--
	}

	if !coef.fitsCoef() {
		return newDecimal(neg, maxCoef, 0)
	}
	if coef.IsZero() {
		return Decimal{}
	}
	return newDecimal(neg, coef.AsU128(), scale).normalize()
}

// normalize strips trailing zeros from the mantissa while the scale allows.
func (d Decimal) normalize() Decimal {
	coef, scale := d.coef(), d.Scale()
	if scale == 0 {
		return d
	}
	for scale > 0 {
		q, r := coef.QuoRem64(10)
		if r != 0 {
			break
		}
		coef = q
		scale--
	}
	return newDecimal(d.IsNegative(), coef, scale)
}

func (d Decimal) coef() U128 {
	return U128{
		hi: uint64(d.mant[2]),
		lo: uint64(d.mant[1])<<32 | uint64(d.mant[0]),
	}
}

// Scale returns the power of ten the mantissa is divided by, 0 to 28.
func (d Decimal) Scale() int {
	return int((d.flags & decimalScaleMask) >> decimalScaleShift)
}

// IsNegative reports whether the sign bit is set. A zero can carry the sign
// bit after Neg; it is still equal to Zero.
func (d Decimal) IsNegative() bool {
	return d.flags&decimalSignMask != 0
}

func (d Decimal) IsZero() bool {
	return d.mant == [3]uint32{}
}

// Sign returns -1, 0 or 1. Zero returns 0 whatever its sign bit.
func (d Decimal) Sign() int {
	if d.IsZero() {
		return 0
	} else if d.IsNegative() {
		return -1
	}
	return 1
}

// Flags returns the raw flags word: the scale in bits 16-23 and the sign in
// bit 31.
func (d Decimal) Flags() uint32 { return d.flags }

// Mantissa returns the three 32-bit mantissa words, least significant first.
func (d Decimal) Mantissa() [3]uint32 { return d.mant }

// DecimalPlaces returns the number of significant fractional digits: the
// scale less any trailing zeros.
func (d Decimal) DecimalPlaces() int {
	scale := d.Scale()
	if d.IsZero() {
		return 0
	}
	coef := d.coef()
	for scale > 0 {
		q, r := coef.QuoRem64(10)
		if r != 0 {
			break
		}
		coef = q
		scale--
	}
	return scale
}

// Neg flips the sign bit and nothing else.
func (d Decimal) Neg() Decimal {
	d.flags ^= decimalSignMask
	return d
}

// Abs clears the sign bit.
func (d Decimal) Abs() Decimal {
	d.flags &^= decimalSignMask
	return d
}

func NewFromInt64(v int64) Decimal {
	if v < 0 {
		// Two's complement negation of the uint64 is the magnitude, including
		// for math.MinInt64.
		return newDecimal(true, U128{lo: -uint64(v)}, 0)
	}
	return newDecimal(false, U128{lo: uint64(v)}, 0)
}

func NewFromInt32(v int32) Decimal   { return NewFromInt64(int64(v)) }
func NewFromUint64(v uint64) Decimal { return newDecimal(false, U128{lo: v}, 0) }
func NewFromUint32(v uint32) Decimal { return newDecimal(false, U128{lo: uint64(v)}, 0) }

// NewFromI128 converts an I128 to a Decimal at scale 0. Magnitudes wider
// than 96 bits, MinI128 included, clamp to the largest mantissa with the
// sign of v.
func NewFromI128(v I128) Decimal {
	neg := v.IsNegative()
	mag := v.Abs().AsU128()
	if !mag.fitsCoef() {
		return newDecimal(neg, maxCoef, 0)
	}
	return newDecimal(neg, mag, 0)
}

// NewFromBits is the complement to Decimal.Bits(). The flags word must have a
// scale in [0, 28] and no bits set outside the scale and sign fields.
func NewFromBits(b [4]int32) (Decimal, error) {
	flags := uint32(b[3])
	if flags&^(decimalScaleMask|decimalSignMask) != 0 {
		return Decimal{}, ErrInvalidFormat.New("decimal flags %#08x", flags)
	}
	d := Decimal{
		flags: flags,
		mant:  [3]uint32{uint32(b[0]), uint32(b[1]), uint32(b[2])},
	}
	if d.Scale() > decimalMaxScale {
		return Decimal{}, ErrInvalidFormat.New("decimal scale %d", d.Scale())
	}
	return d, nil
}

// Bits returns the mantissa words, least significant first, followed by the
// flags word.
func (d Decimal) Bits() [4]int32 {
	return [4]int32{int32(d.mant[0]), int32(d.mant[1]), int32(d.mant[2]), int32(d.flags)}
}
