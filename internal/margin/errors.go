package margin

import (
	"errors"
	"fmt"
)

var (
	ErrNonPositive         = errors.New("invalid input, must be > 0")
	ErrLotSizeRange        = errors.New("lot size must be 0.01–500.00")
	ErrNumberFormat        = errors.New("invalid number format")
	ErrUnsupportedLeverage = errors.New("unsupported leverage")
	ErrUnknownOrderType    = errors.New("unknown order type")
)

// ValidationError is returned for inputs that parse but are out of range.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FormatError is returned when a numeric field holds non-numeric text.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %v: %q", e.Field, ErrNumberFormat, e.Value)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrNumberFormat
}
