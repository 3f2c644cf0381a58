package datatypes

// alignScale brings d and e to their common scale, the larger of the two.
// Both mantissas are at most 96 bits and the multiplier at most 10^28, so the
// aligned values always fit.
func alignScale(d, e Decimal) (l, r U256, scale int) {
	ls, rs := d.Scale(), e.Scale()
	switch {
	case ls < rs:
		return mul128to256(d.coef(), pow10U128(rs-ls)), U256From128(e.coef()), rs
	case ls > rs:
		return U256From128(d.coef()), mul128to256(e.coef(), pow10U128(ls-rs)), ls
	default:
		return U256From128(d.coef()), U256From128(e.coef()), ls
	}
}

// Add returns d + e. If either operand is zero the other is returned
// unchanged.
func (d Decimal) Add(e Decimal) Decimal {
	if d.IsZero() {
		return e
	}
	if e.IsZero() {
		return d
	}

	l, r, scale := alignScale(d, e)

	neg := d.IsNegative()
	var sum U256
	if d.IsNegative() == e.IsNegative() {
		sum = l.Add(r)
	} else if l.GreaterThan(r) {
		sum = l.Sub(r)
	} else {
		sum = r.Sub(l)
		neg = e.IsNegative()
	}
	return fitDecimal(neg, sum, scale)
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns d * e. The product is exact before low-order digits are dropped
// to fit.
func (d Decimal) Mul(e Decimal) Decimal {
	if d.IsZero() || e.IsZero() {
		return Decimal{}
	}
	prod := mul128to256(d.coef(), e.coef())
	return fitDecimal(d.IsNegative() != e.IsNegative(), prod, d.Scale()+e.Scale())
}

// Quo returns d / e, truncated after the dividend has been scaled up by as
// many as 18 extra digits. A zero divisor is an ErrDivisionByZero error.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero.New("decimal quo")
	}
	if d.IsZero() {
		return Decimal{}, nil
	}

	dividend := d.coef()
	scale := d.Scale() - e.Scale()

	for i := 0; i < decimalQuoExtraDigits && dividend.hi < mul10HiLimit; i++ {
		dividend = dividend.Mul64(10)
		scale++
	}
	for scale < 0 && dividend.hi < mul10HiLimit {
		dividend = dividend.Mul64(10)
		scale++
	}

	neg := d.IsNegative() != e.IsNegative()
	if scale < 0 {
		// The quotient is an integer too wide to scale into 128 bits; take it
		// exactly from the fully aligned dividend instead.
		num := mul128to256(d.coef(), pow10U128(e.Scale()-d.Scale()))
		q, _ := num.QuoRem(U256From128(e.coef()))
		return fitDecimal(neg, q, 0), nil
	}

	q := dividend.Quo(e.coef())
	return fitDecimal(neg, U256From128(q), scale), nil
}

// Rem returns the truncated remainder d - trunc(d/e)*e, which takes the sign
// of d. A zero divisor is an ErrDivisionByZero error.
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero.New("decimal rem")
	}
	if d.IsZero() {
		return Decimal{}, nil
	}

	l, r, scale := alignScale(d, e)
	_, rem := l.QuoRem(r)
	return fitDecimal(d.IsNegative(), rem, scale), nil
}

// QuoRem returns the truncated integer quotient and remainder of d / e, so
// that q*e + r == d.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	if e.IsZero() {
		return Decimal{}, Decimal{}, ErrDivisionByZero.New("decimal quo")
	}
	l, rr, scale := alignScale(d, e)
	qu, rem := l.QuoRem(rr)
	neg := d.IsNegative() != e.IsNegative()
	return fitDecimal(neg, qu, 0), fitDecimal(d.IsNegative(), rem, scale), nil
}
