/*
Package datatypes provides two exact numeric value types: I128, a signed
128-bit two's complement integer, and Decimal, a 128-bit decimal floating
point value with a 96-bit mantissa and a scale of 0 to 28 fractional digits.

Both are immutable value types; all operations return new values and the
zero value of each is 0. Neither allocates on the heap for arithmetic.

Simple example:

	a := datatypes.MustParse("0.1")
	b := datatypes.MustParse("0.2")
	fmt.Println(a.Add(b))
	// Output: 0.3

I128 overflow wraps like Go's fixed-size integers. Decimal never wraps:
results lose low-order digits to fit in 96 bits, and values whose integer
part cannot fit clamp to MaxDecimal or MinusMaxDecimal. Division by zero is
an ErrDivisionByZero error for Decimal and a panic for I128, matching the
built-in integer types.

I128 can be created from a variety of sources:

	I128FromRaw(hi, lo uint64) I128
	I128From64(v int64) I128
	I128FromU64(v uint64) I128
	I128FromBigInt(v *big.Int) (out I128, accurate bool)
	I128FromFloat64(f float64) (out I128, inRange bool)
	I128FromDecimal(d Decimal) I128
	ParseI128(s string) (I128, error)

Decimal values come from:

	NewFromInt64(v int64) Decimal
	NewFromUint64(v uint64) Decimal
	NewFromFloat64(f float64) Decimal
	NewFromI128(v I128) Decimal
	NewFromBits(b [4]int32) (Decimal, error)
	Parse(s string) (Decimal, error)

Decimal rounding takes one of five modes; ToNearest is banker's rounding:

	d := datatypes.MustParse("2.345")
	fmt.Println(d.Round(2, datatypes.ToNearest))         // 2.34
	fmt.Println(d.Round(2, datatypes.ToNearestTiesAway)) // 2.35

I128 and Decimal support the following formatting and marshalling
interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - encoding.BinaryMarshaler
  - encoding.BinaryUnmarshaler

The binary form of both types is the four 32-bit words returned by Bits(),
little-endian.

Word arithmetic uses math/bits intrinsics by default. Build with the
'datatypes_purego' tag to use portable 32-bit-halves routines instead.
*/
package datatypes
