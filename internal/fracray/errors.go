package fracray

import "errors"

var (
	// ErrInvalidArgument reports malformed model or request input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDivisionByZero is returned by complex division by an exact zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNilReference reports a required model that was not supplied.
	ErrNilReference = errors.New("nil reference")
)
