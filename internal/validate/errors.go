package validate

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat   = errors.New("not a valid integer")
	ErrOutOfRange      = errors.New("value below allowed minimum")
	ErrEmptyInput      = errors.New("input is empty")
	ErrBadDateFormat   = errors.New("date does not match MMM DD, YYYY")
	ErrDateNotInFuture = errors.New("date is not in the future")
	ErrBadTimeFormat   = errors.New("time does not match HH:MM AM/PM")
)

// InputError carries the rejected raw input alongside one of the sentinel
// errors above.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func inputError(raw string, err error) error {
	return &InputError{Input: raw, Err: err}
}
