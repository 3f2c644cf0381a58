package datatypes

// I128 is a signed 128-bit two's complement integer. The sign lives in the
// top bit of hi. The zero value is 0.
//
// Addition, subtraction and multiplication wrap on overflow, exactly like
// Go's fixed-size integers. Division by zero panics with an
// ErrDivisionByZero error.
type I128 struct {
	hi uint64
	lo uint64
}

const signBit = 0x8000000000000000

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }
func I128FromU32(v uint32) I128 { return I128{lo: uint64(v)} }

var (
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

// RandI128 generates a positive signed 128-bit random integer from an external
// source.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64() & maxInt64, lo: source.Uint64()}
}

func (i I128) IsZero() bool { return i == zeroI128 }

func (i I128) IsNegative() bool { return i.hi&signBit != 0 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports wehether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() (v I128) {
	var carry uint64
	v.lo, carry = add64(i.lo, 1, 0)
	v.hi = i.hi + carry
	return v
}

func (i I128) Dec() (v I128) {
	var borrow uint64
	v.lo, borrow = sub64(i.lo, 1, 0)
	v.hi = i.hi - borrow
	return v
}

// Add returns i + n. The carry out of the low word propagates into the high
// word; overflow wraps.
func (i I128) Add(n I128) (v I128) {
	var carry uint64
	v.lo, carry = add64(i.lo, n.lo, 0)
	v.hi, _ = add64(i.hi, n.hi, carry)
	return v
}

// Sub returns i - n. Overflow wraps.
func (i I128) Sub(n I128) (v I128) {
	var borrow uint64
	v.lo, borrow = sub64(i.lo, n.lo, 0)
	v.hi, _ = sub64(i.hi, n.hi, borrow)
	return v
}

// Neg returns -i. MinI128 negates to itself.
func (i I128) Neg() (v I128) {
	var borrow uint64
	v.lo, borrow = sub64(0, i.lo, 0)
	v.hi, _ = sub64(0, i.hi, borrow)
	return v
}

// Abs returns |i|. Abs(MinI128) is MinI128; use AsU128 on the result to read
// it as the magnitude 1<<127.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) GreaterThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
	} else if i.hi&signBit == 0 {
		return true
	}
	return false
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	return !i.LessThan(n)
}

func (i I128) LessThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	} else if i.hi&signBit != 0 {
		return true
	}
	return false
}

func (i I128) LessOrEqualTo(n I128) bool {
	return !i.GreaterThan(n)
}

// CmpInt64 compares i to an int64 without converting i.
func (i I128) CmpInt64(n int64) int {
	return i.Cmp(I128From64(n))
}

// CmpUint64 compares i to a uint64. Negative values of i are always less.
func (i I128) CmpUint64(n uint64) int {
	return i.Cmp(I128FromU64(n))
}

// Mul returns the low 128 bits of the product of two I128s.
//
// Overflow wraps around, as with the built-in integer types. Two's
// complement makes the signed product the same bit pattern as the unsigned
// one, so no sign handling is needed.
func (i I128) Mul(n I128) (dest I128) {
	dest.hi, dest.lo = mul64(i.lo, n.lo)
	dest.hi += i.hi*n.lo + i.lo*n.hi
	return dest
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, it
// panics with an ErrDivisionByZero error.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The quotient's sign is the XOR of the operand signs and the remainder takes
// the dividend's sign, so (x/y)*y + x%y == x always holds. MinI128 / -1 wraps
// to MinI128.
func (i I128) QuoRem(by I128) (q, r I128) {
	if by.hi|by.lo == 0 {
		panic(ErrDivisionByZero.New("i128 quo"))
	}

	qNeg := i.hi&signBit != by.hi&signBit
	rNeg := i.hi&signBit != 0

	// Abs(MinI128) stays MinI128, which reads as 1<<127 once cast to U128.
	qu, ru := i.Abs().AsU128().QuoRem(by.Abs().AsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if qNeg {
		q = q.Neg()
	}
	if rNeg {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient i/by for by != 0. Quo implements truncated
// division (like Go); see QuoRem for more details.
func (i I128) Quo(by I128) (q I128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. Rem implements truncated
// modulus (like Go); see QuoRem for more details.
func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}
