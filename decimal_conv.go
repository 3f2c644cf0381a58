package datatypes

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Parse parses an optionally signed decimal string such as "-123.4500". At
// least one digit and at most one '.' are required; exponents, whitespace
// and digit separators are rejected with an ErrInvalidFormat error.
//
// At most 28 fractional digits and 28 significant digits are kept; further
// fractional digits are truncated. An integer part wider than 96 bits clamps
// to MaxDecimal or MinusMaxDecimal.
func Parse(s string) (Decimal, error) {
	d, ok := parseDecimal(s)
	if !ok {
		return Decimal{}, ErrInvalidFormat.New("decimal %q", s)
	}
	return d, nil
}

// TryParse is Parse without the error allocation.
func TryParse(s string) (Decimal, bool) {
	return parseDecimal(s)
}

func parseDecimal(s string) (out Decimal, ok bool) {
	pos := 0
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		pos++
	}

	dot := -1
	for i := pos; i < len(s); i++ {
		if s[i] == '.' {
			if dot >= 0 {
				return out, false
			}
			dot = i
		}
	}

	var (
		coef      U128
		hasDigits bool
		overflow  bool
		sig       int
		scale     int
	)

	for i := pos; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			continue
		}
		if c < '0' || c > '9' {
			return out, false
		}
		hasDigits = true
		digit := uint64(c - '0')

		if dot >= 0 && i > dot {
			if overflow || sig >= decimalMaxSignificantDigits || scale >= decimalMaxScale {
				continue
			}
			scale++
		} else if overflow {
			continue
		} else if coef.hi >= mul10HiLimit {
			overflow = true
			continue
		}

		if digit != 0 || !coef.IsZero() || scale > 0 {
			sig++
		}
		coef = coef.Mul64(10).Add64(digit)
	}

	if !hasDigits {
		return out, false
	}

	for scale > 0 && !coef.fitsCoef() {
		coef, _ = coef.QuoRem64(10)
		scale--
	}
	if overflow || !coef.fitsCoef() {
		return newDecimal(neg, maxCoef, 0), true
	}
	if coef.IsZero() {
		return Decimal{}, true
	}
	return newDecimal(neg, coef, scale).normalize(), true
}

// String returns the exact value of d in plain notation, with a leading '-'
// when the sign bit is set on a non-zero value and one fractional digit per
// unit of scale.
func (d Decimal) String() string {
	if d.IsZero() {
		return "0"
	}

	var buf [decimalMaxDigits]byte
	digits := buf[d.coef().formatDigits(buf[:]):]
	scale := d.Scale()

	var sb strings.Builder
	sb.Grow(len(digits) + 3)
	if d.IsNegative() {
		sb.WriteByte('-')
	}
	switch {
	case scale == 0:
		sb.Write(digits)
	case scale >= len(digits):
		sb.WriteString("0.")
		for i := len(digits); i < scale; i++ {
			sb.WriteByte('0')
		}
		sb.Write(digits)
	default:
		point := len(digits) - scale
		sb.Write(digits[:point])
		sb.WriteByte('.')
		sb.Write(digits[point:])
	}
	return sb.String()
}

// StringFixed returns d with exactly places fractional digits, padding with
// zeros or truncating as needed. A negative places is treated as 0.
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	if places < d.Scale() {
		d = d.Round(places, ToZero)
	}

	s := d.String()
	if places == 0 {
		return s
	}
	have := 0
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		have = len(s) - dot - 1
	} else {
		s += "."
	}
	return s + strings.Repeat("0", places-have)
}

// Format implements fmt.Formatter. %v and %s print String(); %f prints
// StringFixed with the given precision, or String() without one; %q quotes.
// Width and the '-' flag are honoured.
func (d Decimal) Format(s fmt.State, c rune) {
	var str string
	switch c {
	case 'v', 's':
		str = d.String()
	case 'f', 'F':
		if prec, ok := s.Precision(); ok {
			str = d.StringFixed(prec)
		} else {
			str = d.String()
		}
	case 'q':
		str = strconv.Quote(d.String())
	default:
		fmt.Fprintf(s, "%%!%c(datatypes.Decimal=%s)", c, d.String())
		return
	}

	if s.Flag('+') && !d.IsNegative() && c != 'q' {
		str = "+" + str
	}
	if w, ok := s.Width(); ok && len(str) < w {
		pad := strings.Repeat(" ", w-len(str))
		if s.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}
	io.WriteString(s, str)
}

// Float64 returns the nearest float64 to d.
func (d Decimal) Float64() float64 {
	f := d.coef().AsFloat64() / pow10Float64[d.Scale()]
	if d.IsNegative() {
		return -f
	}
	return f
}

// NewFromFloat64 converts f to a Decimal. The integer part is taken exactly;
// up to 15 fractional digits are then generated, stopping early once what
// is left of the fraction is below 1e-15. NaN, the infinities and 0 all give
// Zero. Integer parts wider than 96 bits clamp.
func NewFromFloat64(f float64) Decimal {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}
	}

	neg := f < 0
	if neg {
		f = -f
	}

	whole, frac := math.Modf(f)
	if whole >= 0x1p96 {
		return newDecimal(neg, maxCoef, 0)
	}
	coef := u128FromPositiveFloat(whole)

	scale := 0
	for frac > 0 && scale < decimalFloatDigits {
		var digit float64
		digit, frac = math.Modf(frac * 10)
		next := coef.Mul64(10).Add64(uint64(digit))
		if !next.fitsCoef() {
			break
		}
		coef = next
		scale++
		if frac < decimalFloatEpsilon {
			break
		}
	}

	if coef.IsZero() {
		return Decimal{}
	}
	return newDecimal(neg, coef, scale).normalize()
}

func NewFromFloat32(f float32) Decimal {
	return NewFromFloat64(float64(f))
}

func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalText(bts []byte) error {
	v, err := Parse(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts both a JSON string and a bare JSON number.
func (d *Decimal) UnmarshalJSON(bts []byte) error {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return ErrInvalidFormat.New("decimal JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return d.UnmarshalText(bts)
}

// MarshalBinary encodes the four Bits() words little-endian, 16 bytes in all.
func (d Decimal) MarshalBinary() ([]byte, error) {
	out := make([]byte, 16)
	for i, w := range d.Bits() {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(w))
	}
	return out, nil
}

func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidFormat.New("decimal binary length %d", len(data))
	}
	var b [4]int32
	for i := range b {
		b[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
	}
	v, err := NewFromBits(b)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
