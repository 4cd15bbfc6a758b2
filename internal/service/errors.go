package service

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingConflict rejects a rental whose dates overlap an existing
	// non-cancelled booking for the same car. It is surfaced to the user and
	// nothing is written.
	ErrBookingConflict = errors.New("car is already booked for the selected dates")

	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrMissingDates = errors.New("start and end dates are required")
)

// DuplicatePhoneError identifies the conflicting value. The check is a
// best-effort pre-write guard, not a database constraint; two concurrent
// writers can still race past it.
type DuplicatePhoneError struct {
	Phone string
}

func (e *DuplicatePhoneError) Error() string {
	return fmt.Sprintf("phone number %s is already registered", e.Phone)
}
