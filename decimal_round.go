package datatypes

// RoundingMode selects how Decimal.Round resolves discarded digits.
type RoundingMode byte

const (
	// ToNearest rounds to the nearest value and breaks ties toward the even
	// neighbour (banker's rounding).
	ToNearest RoundingMode = iota

	// ToNearestTiesAway rounds to the nearest value and breaks ties away
	// from zero.
	ToNearestTiesAway

	// ToZero truncates.
	ToZero

	ToPositiveInfinity
	ToNegativeInfinity
)

// Round returns d rounded to the given number of fractional digits. It is a
// no-op when places is at least the current scale or d is zero. A negative
// places is treated as 0.
//
// The result keeps exactly places fractional digits, so rounding 1.96 to one
// place gives 2.0.
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}
	scale := d.Scale()
	if places >= scale || d.IsZero() {
		return d
	}

	remove := scale - places
	neg := d.IsNegative()

	// q is the truncated mantissa; rem holds the discarded digits, whose
	// leading digit decides the nearest modes.
	q, rem := d.coef().QuoRem(pow10U128(remove))
	digit, rest := rem.QuoRem(pow10U128(remove - 1))

	var up bool
	switch mode {
	case ToNearest:
		switch {
		case digit.lo > roundingThreshold:
			up = true
		case digit.lo == roundingThreshold:
			// Exactly half only when nothing follows the 5.
			up = !rest.IsZero() || q.lo&1 == 1
		}

	case ToNearestTiesAway:
		up = digit.lo >= roundingThreshold

	case ToZero:

	case ToPositiveInfinity:
		up = !neg && !rem.IsZero()

	case ToNegativeInfinity:
		up = neg && !rem.IsZero()
	}

	if up {
		// q is at most the mantissa / 10, so this cannot leave 96 bits.
		q = q.Inc()
	}
	return newDecimal(neg, q, places)
}

// Truncate drops every fractional digit, rounding toward zero.
func (d Decimal) Truncate() Decimal {
	return d.Round(0, ToZero)
}

// Floor rounds toward negative infinity.
func (d Decimal) Floor() Decimal {
	return d.Round(0, ToNegativeInfinity)
}

// Ceiling rounds toward positive infinity.
func (d Decimal) Ceiling() Decimal {
	return d.Round(0, ToPositiveInfinity)
}
