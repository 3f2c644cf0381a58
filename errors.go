package datatypes

import "github.com/zeebo/errs"

// Error classes returned (or panicked with) by this package. Use Has to test
// membership:
//
//	if datatypes.ErrInvalidFormat.Has(err) { ... }
//
// Overflow is never reported as an error: I128 addition, subtraction and
// multiplication wrap, and Decimal clamps or drops precision.
var (
	ErrInvalidFormat  = errs.Class("invalid format")
	ErrDivisionByZero = errs.Class("division by zero")
)
