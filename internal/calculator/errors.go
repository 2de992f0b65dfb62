package calculator

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed calculation.
type ErrorKind string

const (
	InvalidNumber        ErrorKind = "InvalidNumber"
	DivideByZero         ErrorKind = "DivideByZero"
	ModulusByZero        ErrorKind = "ModulusByZero"
	FloorDivideByZero    ErrorKind = "FloorDivideByZero"
	InsufficientOperands ErrorKind = "InsufficientOperands"
	TooManyOperands      ErrorKind = "TooManyOperands"
	UnknownOperation     ErrorKind = "UnknownOperation"
)

// Sentinels for errors.Is matching against an *OperationError.
var (
	ErrInvalidNumber        = errors.New("invalid number")
	ErrDivideByZero         = errors.New("divide by zero")
	ErrModulusByZero        = errors.New("modulus by zero")
	ErrFloorDivideByZero    = errors.New("floor divide by zero")
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrTooManyOperands      = errors.New("too many operands")
	ErrUnknownOperation     = errors.New("unknown operation")
)

var sentinels = map[ErrorKind]error{
	InvalidNumber:        ErrInvalidNumber,
	DivideByZero:         ErrDivideByZero,
	ModulusByZero:        ErrModulusByZero,
	FloorDivideByZero:    ErrFloorDivideByZero,
	InsufficientOperands: ErrInsufficientOperands,
	TooManyOperands:      ErrTooManyOperands,
	UnknownOperation:     ErrUnknownOperation,
}

// OperationError is returned by validation and dispatch.
type OperationError struct {
	Kind ErrorKind
	Op   OperationKind
	Msg  string
}

func newOperationError(kind ErrorKind, op OperationKind, format string, args ...any) *OperationError {
	return &OperationError{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func (e *OperationError) Error() string {
	return e.Msg
}

// Is matches the sentinel for e.Kind.
func (e *OperationError) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// KindOf extracts the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind, true
	}
	return "", false
}
