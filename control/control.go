package control

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a decoder method does not apply to
// the type of the current block.
var ErrInvalidOperation = Error.New("invalid operation")
