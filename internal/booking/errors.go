package booking

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across the engine and its HTTP surface.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrUnauthenticated = errors.New("please login first")
)

// ValidationError reports malformed or out-of-range request input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError builds a ValidationError with a printf-style message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConflictError rejects a creation request whose range contains at least one
// fully booked date. The date list is surfaced to the client so it can steer
// the guest toward open dates.
type ConflictError struct {
	FullyBookedDates []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("selected dates are fully booked: %s", strings.Join(e.FullyBookedDates, ", "))
}
