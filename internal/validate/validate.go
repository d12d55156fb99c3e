// Package validate turns raw text typed at the menu into typed, domain-valid
// reservation fields.
package validate

import (
	"strconv"
	"strings"
	"time"
)

// Canonical layouts for stored and displayed values.
const (
	DateLayout = "Jan 02, 2006"
	TimeLayout = "03:04 PM"
)

// MaxInteger is the largest value ParseInteger accepts. A party at this size
// in both counts prices well inside a 32-bit int.
const MaxInteger = 1_000_000

// Validator normalizes raw input. It holds no state beyond its clock.
type Validator struct {
	clock Clock
}

// New creates a validator that judges "future" against clock
func New(clock Clock) *Validator {
	return &Validator{clock: clock}
}

// ParseInteger parses a base-10 integer in minimum..MaxInteger. With allowZero
// the minimum is 0, otherwise it is 1.
func (v *Validator) ParseInteger(raw string, allowZero bool) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, inputError(raw, ErrInvalidFormat)
	}

	minimum := 1
	if allowZero {
		minimum = 0
	}
	if n < minimum || n > MaxInteger {
		return 0, inputError(raw, ErrOutOfRange)
	}
	return n, nil
}

// ParseNonEmptyText accepts any text except the empty string. Whitespace-only
// input is accepted as is.
func (v *Validator) ParseNonEmptyText(raw string) (string, error) {
	if raw == "" {
		return "", inputError(raw, ErrEmptyInput)
	}
	return raw, nil
}

// ParseFutureDate parses a date such as "Oct 25, 2025" and requires its
// midnight to be strictly after the clock's current moment, so today is
// always rejected.
func (v *Validator) ParseFutureDate(raw string) (string, error) {
	now := v.clock.Now()

	date, err := time.ParseInLocation(DateLayout, raw, now.Location())
	if err != nil {
		return "", inputError(raw, ErrBadDateFormat)
	}

	if !date.After(now) {
		return "", inputError(raw, ErrDateNotInFuture)
	}
	return date.Format(DateLayout), nil
}

// ParseTimeOfDay parses a 12-hour wall-clock time such as "11:11 AM".
func (v *Validator) ParseTimeOfDay(raw string) (string, error) {
	// AM/PM is matched case-sensitively by the layout; nothing else in a
	// valid time has letters.
	t, err := time.Parse(TimeLayout, strings.ToUpper(raw))
	if err != nil {
		return "", inputError(raw, ErrBadTimeFormat)
	}

	// time.Parse lets a 12-hour clock read "00"
	if strings.HasPrefix(raw, "00") {
		return "", inputError(raw, ErrBadTimeFormat)
	}
	return t.Format(TimeLayout), nil
}
