package datatypes

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// ParseI128 parses an optionally signed string of ASCII decimal digits.
// Anything else, including surrounding whitespace or a value outside
// [MinI128, MaxI128], is an ErrInvalidFormat error.
func ParseI128(s string) (out I128, err error) {
	var ok bool
	if out, ok = parseI128(s); !ok {
		return out, ErrInvalidFormat.New("i128 %q", s)
	}
	return out, nil
}

// TryParseI128 is ParseI128 without the error allocation.
func TryParseI128(s string) (I128, bool) {
	return parseI128(s)
}

func parseI128(s string) (out I128, ok bool) {
	neg := false
	digits := s
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if len(digits) == 0 || len(digits) > i128MaxDigits {
		return out, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return out, false
		}
	}

	// Equal-length digit strings compare like the numbers they spell.
	if len(digits) == i128MaxDigits {
		limit := maxI128Digits
		if neg {
			limit = minI128Digits
		}
		if digits > limit {
			return out, false
		}
	}

	var mag U128
	for i := 0; i < len(digits); i++ {
		mag = mag.Mul64(10).Add64(uint64(digits[i] - '0'))
	}

	out = mag.AsI128()
	if neg {
		// 1<<127 negates to MinI128.
		out = out.Neg()
	}
	return out, true
}

func (i I128) String() string {
	if i.hi == 0 {
		return strconv.FormatUint(i.lo, 10)
	}
	if i == MinI128 {
		return minI128Literal
	}

	var buf [i128MaxDigits + 1]byte
	neg := i.hi&signBit != 0
	pos := i.Abs().AsU128().formatDigits(buf[:])
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// Bits returns the value as four little-endian 32-bit words: the low word's
// low and high halves, then the high word's.
func (i I128) Bits() [4]int32 {
	return [4]int32{
		int32(uint32(i.lo)),
		int32(uint32(i.lo >> 32)),
		int32(uint32(i.hi)),
		int32(uint32(i.hi >> 32)),
	}
}

// I128FromBits is the complement to I128.Bits().
func I128FromBits(b [4]int32) I128 {
	return I128{
		lo: uint64(uint32(b[1]))<<32 | uint64(uint32(b[0])),
		hi: uint64(uint32(b[3]))<<32 | uint64(uint32(b[2])),
	}
}

func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	var u U128
	if neg {
		u, accurate = U128FromBigInt(new(big.Int).Neg(v))
	} else {
		u, accurate = U128FromBigInt(v)
	}

	if !neg {
		if cmp := u.Cmp(maxI128AsU128); cmp == 0 {
			out = MaxI128
		} else if cmp > 0 {
			out, accurate = MaxI128, false
		} else {
			out = u.AsI128()
		}

	} else {
		if cmp := u.Cmp(minI128AsAbsU128); cmp == 0 {
			out = MinI128
		} else if cmp > 0 {
			out, accurate = MinI128, false
		} else {
			out = u.AsI128().Neg()
		}
	}

	return out, accurate
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	i.Abs().AsU128().IntoBigInt(b)
	if neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

func I128FromFloat32(f float32) (out I128, inRange bool) {
	return I128FromFloat64(float64(f))
}

// I128FromFloat64 creates an I128 from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// Floats outside the bounds of an I128 are clamped to MaxI128 or MinI128 and
// inRange will be set to false. NaN and the infinities become 0, also with
// inRange set to false.
func I128FromFloat64(f float64) (out I128, inRange bool) {
	if f == 0 {
		return out, true
	} else if math.IsNaN(f) || math.IsInf(f, 0) {
		return out, false
	} else if f >= wrapI128Float {
		return MaxI128, false
	} else if f < -wrapI128Float {
		return MinI128, false
	}

	if f < 0 {
		// -(1<<127) has a magnitude of exactly 1<<127, which negates to
		// MinI128.
		return u128FromPositiveFloat(-f).AsI128().Neg(), true
	}
	return u128FromPositiveFloat(f).AsI128(), true
}

func (i I128) AsFloat64() float64 {
	if i.hi&signBit != 0 {
		return -i.Abs().AsU128().AsFloat64()
	}
	return i.AsU128().AsFloat64()
}

// CmpFloat64 compares i to f. ok is false when f is NaN, which is unordered
// against every I128. +Inf is greater than every I128 and -Inf is less.
//
// The comparison is exact: f is not rounded into an I128 first.
func (i I128) CmpFloat64(f float64) (result int, ok bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= wrapI128Float:
		return -1, true
	case f < -wrapI128Float:
		return 1, true
	}

	whole := math.Trunc(f)
	t, _ := I128FromFloat64(whole)
	if c := i.Cmp(t); c != 0 {
		return c, true
	}

	// Equal integer parts: a fractional remainder decides it.
	if frac := f - whole; frac > 0 {
		return -1, true
	} else if frac < 0 {
		return 1, true
	}
	return 0, true
}

// I128FromDecimal converts d to an I128, truncating any fractional digits
// toward zero. Every Decimal fits.
func I128FromDecimal(d Decimal) I128 {
	mag := d.coef()
	if scale := d.Scale(); scale > 0 {
		mag = mag.Quo(pow10U128(scale))
	}
	out := mag.AsI128()
	if d.IsNegative() {
		out = out.Neg()
	}
	return out
}

// CmpDecimal compares i to d exactly, aligning i to d's scale.
func (i I128) CmpDecimal(d Decimal) int {
	return -d.CmpI128(i)
}

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseI128(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON accepts both a JSON string and a bare JSON number.
func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return ErrInvalidFormat.New("i128 JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return i.UnmarshalText(bts)
}

// MarshalBinary encodes the four Bits() words little-endian, 16 bytes in all.
func (i I128) MarshalBinary() ([]byte, error) {
	out := make([]byte, 16)
	binary.LittleEndian.PutUint64(out[0:], i.lo)
	binary.LittleEndian.PutUint64(out[8:], i.hi)
	return out, nil
}

func (i *I128) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidFormat.New("i128 binary length %d", len(data))
	}
	i.lo = binary.LittleEndian.Uint64(data[0:])
	i.hi = binary.LittleEndian.Uint64(data[8:])
	return nil
}
