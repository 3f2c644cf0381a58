package datatypes

// RandSource is satisfied by *math/rand.Rand.
type RandSource interface {
	Uint64() uint64
}

// DifferenceU128 subtracts the smaller of a and b from the larger.
func DifferenceU128(a, b U128) U128 {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// DifferenceI128 subtracts the smaller of a and b from the larger. The result
// is returned as a U128 because the distance between MinI128 and MaxI128 does
// not fit in an I128.
func DifferenceI128(a, b I128) U128 {
	if a.GreaterThan(b) {
		return a.Sub(b).AsU128()
	}
	return b.Sub(a).AsU128()
}

// RandDecimal generates a random Decimal from an external source: a mantissa
// of up to 96 bits, a scale in [0, 28] and a random sign.
func RandDecimal(source RandSource) Decimal {
	bits := source.Uint64()
	coef := U128{hi: bits & maxUint32, lo: source.Uint64()}
	scale := int((bits >> 32) % (decimalMaxScale + 1))
	neg := bits&signBit != 0
	return newDecimal(neg, coef, scale)
}
