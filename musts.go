package datatypes

import "fmt"

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustParseI128 is like ParseI128 but panics if the string cannot be parsed.
func MustParseI128(s string) I128 {
	i, err := ParseI128(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseI128(%q) failed: %v", s, err))
	}
	return i
}

// MustQuo is like Decimal.Quo but panics if e is zero.
func (d Decimal) MustQuo(e Decimal) Decimal {
	q, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", d, e, err))
	}
	return q
}

// MustRem is like Decimal.Rem but panics if e is zero.
func (d Decimal) MustRem(e Decimal) Decimal {
	r, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v, %v) failed: %v", d, e, err))
	}
	return r
}
