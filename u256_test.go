package datatypes

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var maxBigU256 = new(big.Int).Sub(new(big.Int).Lsh(big1, 256), big1)

func u256s(s string) U256 {
	b := bigs(s)
	if b == nil || b.Sign() < 0 || b.Cmp(maxBigU256) > 0 {
		panic(fmt.Errorf("datatypes: u256 string %q invalid", s))
	}
	var out U256
	words := [...]*uint64{&out.lo, &out.lm, &out.hm, &out.hi}
	for i, w := range words {
		*w = new(big.Int).Rsh(b, uint(i*64)).Uint64()
	}
	return out
}

func randU256() U256 {
	var u U256
	switch globalRNG.Intn(4) {
	case 0:
		u.hi = globalRNG.Uint64()
		fallthrough
	case 1:
		u.hm = globalRNG.Uint64()
		fallthrough
	case 2:
		u.lm = globalRNG.Uint64()
		fallthrough
	default:
		u.lo = globalRNG.Uint64()
	}
	return u
}

func TestU256AddSub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, sum U256
	}{
		{U256From64(1), U256From64(2), U256From64(3)},
		{U256From64(maxUint64), U256From64(1), U256{lm: 1}},
		{U256{lm: maxUint64, lo: maxUint64}, U256From64(1), U256{hm: 1}},
		{U256{hm: maxUint64, lm: maxUint64, lo: maxUint64}, U256From64(1), U256{hi: 1}},
		{U256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}, U256From64(1), U256{}}, // wraps
	} {
		t.Run(fmt.Sprintf("%d/%s+%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.sum, tc.a.Add(tc.b))
			tt.MustEqual(tc.a, tc.sum.Sub(tc.b))
			tt.MustEqual(tc.b, tc.sum.Sub(tc.a))
		})
	}
}

func TestU256AddSubRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		a, b := randU256(), randU256()
		if a.LessThan(b) {
			a, b = b, a
		}

		sum := new(big.Int).Add(a.AsBigInt(), b.AsBigInt())
		sum.And(sum, maxBigU256)
		tt.MustEqual(sum.String(), a.Add(b).String(), "%s + %s", a, b)

		diff := new(big.Int).Sub(a.AsBigInt(), b.AsBigInt())
		tt.MustEqual(diff.String(), a.Sub(b).String(), "%s - %s", a, b)
	}
}

func TestU256Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b   U256
		result int
	}{
		{U256{}, U256{}, 0},
		{U256From64(1), U256{}, 1},
		{U256{hi: 1}, U256{hm: maxUint64, lm: maxUint64, lo: maxUint64}, 1},
		{U256{hm: 1}, U256{hi: 1}, -1},
		{U256{lm: 1, lo: 2}, U256{lm: 1, lo: 3}, -1},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.result, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.result == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.result > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.result < 0, tc.a.LessThan(tc.b))
		})
	}
}

func TestU256Shift(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		u := randU256()
		n := uint(globalRNG.Intn(257))

		lb := new(big.Int).Lsh(u.AsBigInt(), n)
		lb.And(lb, maxBigU256)
		tt.MustEqual(lb.String(), u.Lsh(n).String(), "%s << %d", u, n)

		rb := new(big.Int).Rsh(u.AsBigInt(), n)
		tt.MustEqual(rb.String(), u.Rsh(n).String(), "%s >> %d", u, n)
	}
}

func TestU256LeadingZeros(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint(256), U256{}.LeadingZeros())
	tt.MustEqual(uint(255), U256From64(1).LeadingZeros())
	tt.MustEqual(uint(191), U256{lm: 1}.LeadingZeros())
	tt.MustEqual(uint(127), U256{hm: 1}.LeadingZeros())
	tt.MustEqual(uint(64), U256{hm: maxUint64}.LeadingZeros())
	tt.MustEqual(uint(0), U256{hi: 1 << 63}.LeadingZeros())
}

func TestMul128to256(t *testing.T) {
	for idx, tc := range []struct {
		a, b U128
		out  U256
	}{
		{u64(0), MaxU128, U256{}},
		{u64(1), MaxU128, U256From128(MaxU128)},
		{u64(maxUint64), u64(maxUint64), u256s("0xFFFFFFFFFFFFFFFE 0000000000000001")},
		{MaxU128, MaxU128, u256s("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE 0000000000000000 0000000000000001")},
		{maxCoef, pow10U128(28), u256s("792281625142643375935439503350000000000000000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, mul128to256(tc.a, tc.b))
			tt.MustEqual(tc.out, mul128to256(tc.b, tc.a))
		})
	}
}

func TestMul128to256Random(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		a, b := randU128(), randU128()
		rb := new(big.Int).Mul(a.AsBigInt(), b.AsBigInt())
		tt.MustEqual(rb.String(), mul128to256(a, b).String(), "%s * %s", a, b)
	}
}

func TestU256QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U256
	}{
		{U256From64(10), U256From64(3), U256From64(3), U256From64(1)},
		{U256From64(3), U256From64(10), U256{}, U256From64(3)},
		{U256{hi: 1}, U256{hi: 1}, U256From64(1), U256{}},
		{U256{hi: 1}, U256From64(2), U256{hm: 1 << 63}, U256{}},
		{U256{hi: 1, lo: 5}, U256{lm: 1}, U256{hm: 1}, U256From64(5)},
		{
			u256s("792281625142643375935439503350000000000000000000000000000"),
			U256From128(pow10U128(28)),
			U256From128(maxCoef),
			U256{},
		},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s", idx, tc.u, tc.by), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())
		})
	}
}

func TestU256QuoRemRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		u, by := randU256(), randU256()
		if by.IsZero() {
			continue
		}
		q, r := u.QuoRem(by)

		qb, rb := new(big.Int).QuoRem(u.AsBigInt(), by.AsBigInt(), new(big.Int))
		tt.MustEqual(qb.String(), q.String(), "%s / %s", u, by)
		tt.MustEqual(rb.String(), r.String(), "%s %% %s", u, by)

		d := globalRNG.Uint64() | 1
		q64, r64 := u.QuoRem64(d)
		qb.QuoRem(u.AsBigInt(), new(big.Int).SetUint64(d), rb)
		tt.MustEqual(qb.String(), q64.String())
		tt.MustEqual(rb.Uint64(), r64)
	}
}

func TestU256QuoByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(isDivisionByZero(catchPanic(func() { U256From64(1).QuoRem(U256{}) })))
	tt.MustAssert(isDivisionByZero(catchPanic(func() { U256From64(1).QuoRem64(0) })))
}

func TestU256AsU128(t *testing.T) {
	tt := assert.WrapTB(t)

	u := U256From128(MaxU128)
	tt.MustAssert(u.IsU128())
	tt.MustEqual(MaxU128, u.AsU128())
	tt.MustAssert(!u.fitsCoef())
	tt.MustAssert(U256From128(maxCoef).fitsCoef())
	tt.MustAssert(!U256{hm: 1}.IsU128())
}
