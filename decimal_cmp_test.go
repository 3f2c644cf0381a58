package datatypes

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDecimalCmp(t *testing.T) {
	type TC struct {
		A, B   Decimal
		Result int
		Mark   error
	}

	tcs := []TC{
		{A: One, B: newDecimal(false, u64(10), 1), Result: 0, Mark: oops.New("unexpected")},
		{A: MustParse("1.5"), B: newDecimal(false, u64(150000), 5), Result: 0, Mark: oops.New("unexpected")},
		{A: Zero, B: Zero.Neg(), Result: 0, Mark: oops.New("unexpected")},
		{A: Zero, B: newDecimal(true, u64(0), 12), Result: 0, Mark: oops.New("unexpected")},
		{A: MustParse("-1"), B: One, Result: -1, Mark: oops.New("unexpected")},
		{A: MustParse("-1"), B: Zero, Result: -1, Mark: oops.New("unexpected")},
		{A: Zero, B: MustParse("-0.0000000000000000000000000001"), Result: 1, Mark: oops.New("unexpected")},
		{A: MustParse("-2"), B: MustParse("-1.5"), Result: -1, Mark: oops.New("unexpected")},
		{A: MustParse("1.05"), B: MustParse("1.1"), Result: -1, Mark: oops.New("unexpected")},
		{A: MinDecimal, B: Zero, Result: 1, Mark: oops.New("unexpected")},
		{A: MaxDecimal, B: newDecimal(false, maxCoef, 28), Result: 1, Mark: oops.New("unexpected")},
		{A: MinusMaxDecimal, B: MaxDecimal, Result: -1, Mark: oops.New("unexpected")},
		{A: MinusMaxDecimal, B: MustParse("-79228162514264337593543950334.9"), Result: -1, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s<>%s", i, tc.A, tc.B), func(t *testing.T) {
			require.Equal(t, tc.Result, tc.A.Cmp(tc.B), tc.Mark)
			require.Equal(t, -tc.Result, tc.B.Cmp(tc.A), tc.Mark)

			require.Equal(t, tc.Result == 0, tc.A.Equal(tc.B), tc.Mark)
			require.Equal(t, tc.Result > 0, tc.A.GreaterThan(tc.B), tc.Mark)
			require.Equal(t, tc.Result >= 0, tc.A.GreaterOrEqualTo(tc.B), tc.Mark)
			require.Equal(t, tc.Result < 0, tc.A.LessThan(tc.B), tc.Mark)
			require.Equal(t, tc.Result <= 0, tc.A.LessOrEqualTo(tc.B), tc.Mark)
		})
	}
}

func TestDecimalCmpRandom(t *testing.T) {
	for i := 0; i < 5000; i++ {
		a, b := RandDecimal(globalRNG), RandDecimal(globalRNG)
		if i%7 == 0 {
			b = a.Neg()
		}
		expected := decimal.RequireFromString(a.String()).Cmp(decimal.RequireFromString(b.String()))
		require.Equal(t, expected, a.Cmp(b), "%s <> %s", a, b)
	}
}

func TestDecimalCmpInt(t *testing.T) {
	require.Equal(t, 0, MustParse("5").CmpInt64(5))
	require.Equal(t, 0, MustParse("5.000").CmpInt64(5))
	require.Equal(t, 1, MustParse("5.001").CmpInt64(5))
	require.Equal(t, -1, MustParse("-5.001").CmpInt64(-5))
	require.Equal(t, 1, MaxDecimal.CmpInt64(math.MaxInt64))
	require.Equal(t, 1, Zero.CmpInt64(math.MinInt64))
	require.Equal(t, 0, NewFromInt64(math.MinInt64).CmpInt64(math.MinInt64))

	require.Equal(t, 0, MustParse("18446744073709551615").CmpUint64(math.MaxUint64))
	require.Equal(t, -1, MustParse("-1").CmpUint64(0))
	require.Equal(t, 0, Zero.Neg().CmpUint64(0))
	require.Equal(t, -1, MustParse("0.5").CmpUint64(1))
}

func TestDecimalCmpFloat64(t *testing.T) {
	type TC struct {
		A      string
		F      float64
		Result int
		OK     bool
		Mark   error
	}

	tcs := []TC{
		{A: "0", F: math.NaN(), Result: 0, OK: false, Mark: oops.New("unexpected")},
		{A: "79228162514264337593543950335", F: math.Inf(1), Result: -1, OK: true, Mark: oops.New("unexpected")},
		{A: "-79228162514264337593543950335", F: math.Inf(-1), Result: 1, OK: true, Mark: oops.New("unexpected")},
		{A: "0.1", F: 0.1, Result: 0, OK: true, Mark: oops.New("unexpected")},
		{A: "0.1", F: 0.2, Result: -1, OK: true, Mark: oops.New("unexpected")},
		{A: "-2.5", F: -2.5, Result: 0, OK: true, Mark: oops.New("unexpected")},
		{A: "0", F: math.Copysign(0, -1), Result: 0, OK: true, Mark: oops.New("unexpected")},

		// Floats beyond the Decimal range are not clamped before comparing.
		{A: "79228162514264337593543950335", F: 1e30, Result: -1, OK: true, Mark: oops.New("unexpected")},
		{A: "79228162514264337593543950335", F: 0x1p96, Result: -1, OK: true, Mark: oops.New("unexpected")},
		{A: "-79228162514264337593543950335", F: -1e30, Result: 1, OK: true, Mark: oops.New("unexpected")},
		{A: "79228162514264337593543950335", F: 7.9e28, Result: 1, OK: true, Mark: oops.New("unexpected")},

		// Only 15 fractional digits of the float take part.
		{A: "0.333333333333333", F: 1.0 / 3, Result: 0, OK: true, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s<>%g", i, tc.A, tc.F), func(t *testing.T) {
			result, ok := MustParse(tc.A).CmpFloat64(tc.F)
			require.Equal(t, tc.OK, ok, tc.Mark)
			require.Equal(t, tc.Result, result, tc.Mark)
		})
	}
}

func TestDecimalCmpI128(t *testing.T) {
	type TC struct {
		A      Decimal
		B      I128
		Result int
		Mark   error
	}

	tcs := []TC{
		{A: MustParse("2.5"), B: I128From64(2), Result: 1, Mark: oops.New("unexpected")},
		{A: MustParse("2.5"), B: I128From64(3), Result: -1, Mark: oops.New("unexpected")},
		{A: MustParse("-2.5"), B: I128From64(-2), Result: -1, Mark: oops.New("unexpected")},
		{A: MustParse("-2.5"), B: I128From64(-3), Result: 1, Mark: oops.New("unexpected")},
		{A: newDecimal(false, u64(20), 1), B: I128From64(2), Result: 0, Mark: oops.New("unexpected")},
		{A: Zero.Neg(), B: I128{}, Result: 0, Mark: oops.New("unexpected")},
		{A: MinDecimal, B: I128{}, Result: 1, Mark: oops.New("unexpected")},
		{A: MinDecimal.Neg(), B: I128{}, Result: -1, Mark: oops.New("unexpected")},
		{A: Zero, B: I128From64(-1), Result: 1, Mark: oops.New("unexpected")},
		{A: MaxDecimal, B: MaxI128, Result: -1, Mark: oops.New("unexpected")},
		{A: MinusMaxDecimal, B: MinI128, Result: 1, Mark: oops.New("unexpected")},
		{A: MaxDecimal, B: I128FromDecimal(MaxDecimal), Result: 0, Mark: oops.New("unexpected")},
		{A: newDecimal(false, maxCoef, 28), B: I128From64(7), Result: 1, Mark: oops.New("unexpected")},
		{A: newDecimal(false, maxCoef, 28), B: I128From64(8), Result: -1, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s<>%s", i, tc.A, tc.B), func(t *testing.T) {
			require.Equal(t, tc.Result, tc.A.CmpI128(tc.B), tc.Mark)
			require.Equal(t, -tc.Result, tc.B.CmpDecimal(tc.A), tc.Mark)
		})
	}
}
