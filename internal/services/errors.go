package services

import (
	"errors"
	"fmt"
)

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrSlotTaken = errors.New("time slot already booked")
)

// ValidationError marks bad user input, surfaced inline as a 400 and never
// forwarded to the store.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
