package datatypes

import (
	"math/big"
)

//go:generate go run ./misc/pow10 -out pow10_table.go
//go:generate stringer -type=RoundingMode

const (
	maxUint64 = 1<<64 - 1
	maxUint32 = 1<<32 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	wrapUint64Float = 0x1p64  // 1 << 64
	wrapI128Float   = 0x1p127 // 1 << 127, the first float above MaxI128

	intSize = 32 << (^uint(0) >> 63)
)

const (
	i128MaxDigits  = 39
	maxI128Digits  = "170141183460469231731687303715884105727"
	minI128Digits  = "170141183460469231731687303715884105728"
	minI128Literal = "-" + minI128Digits
)

const (
	decimalScaleMask  uint32 = 0x00FF0000
	decimalScaleShift        = 16
	decimalSignMask   uint32 = 0x80000000

	decimalMaxScale             = 28
	decimalMaxSignificantDigits = 28

	// Extra digits of precision the dividend is scaled up by before integer
	// division.
	decimalQuoExtraDigits = 18

	decimalFloatDigits  = 15
	decimalFloatEpsilon = 1e-15

	decimalMaxDigits = 29

	roundingThreshold = 5

	// A U128 whose high word is below this can be multiplied by 10 without
	// overflowing.
	mul10HiLimit = 0x1999999999999999
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	// maxCoef is the largest 96-bit decimal mantissa.
	maxCoef = U128{hi: maxUint32, lo: maxUint64}

	big1 = new(big.Int).SetInt64(1)

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	minBigI128, _ = new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
	maxBigI128, _ = new(big.Int).SetString("170141183460469231731687303715884105727", 10)
)

// pow10U128 returns 10^n for 0 <= n <= 28. Anything else panics.
func pow10U128(n int) U128 {
	if n < len(pow10Uint64) {
		return U128{lo: pow10Uint64[n]}
	}
	w := pow10Wide[n-len(pow10Uint64)]
	return U128{hi: w.hi, lo: w.lo}
}
