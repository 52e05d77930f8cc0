package integer

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("integer")

// Failure kinds. Errors returned from this package wrap one of these and can
// be matched with errors.Is.
var (
	ErrInvalidDigit      = errs.New("invalid digit")
	ErrAllocationFailure = errs.New("allocation failure")
	ErrDivideByZero      = errs.New("divide by zero")
	ErrIndexOutOfRange   = errs.New("index out of range")
	ErrNegativeResult    = errs.New("negative result")
	ErrMalformed         = errs.New("malformed packed buffer")
)
