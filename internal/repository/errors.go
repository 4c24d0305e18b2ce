// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrUserNotFound maps to a 404 response, while a
// StateConflictError signals that a conditional status update matched
// a record that exists but is not in the required state.
package repository

import (
	"errors"
	"fmt"

	"github.com/iliyamo/tour-booking/internal/model"
)

// ErrEmailExists is returned when registering a user whose email is
// already present. Registration is idempotent, so handlers report this
// as a non-error outcome rather than a failure.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a user lookup or admin mutation
// targets an ID or email with no matching row.
var ErrUserNotFound = errors.New("user not found")

// ErrBookingNotFound is returned when a booking mutation targets an ID
// with no matching row. Handlers should translate this into HTTP 404.
var ErrBookingNotFound = errors.New("booking not found")

// ErrStateConflict is the target for errors.Is when a conditional
// update matched zero rows because the record is in the wrong state.
// The concrete error is a *StateConflictError carrying the current
// status; handlers should translate it into HTTP 409.
var ErrStateConflict = errors.New("state conflict")

// StateConflictError reports a conditional update that was a no-op
// because the booking exists but is not in the state the transition
// requires. Distinguishing this from "not found" lets callers tell
// "already processed" apart from "never existed".
type StateConflictError struct {
	Current model.BookingStatus // status the booking actually holds
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("state conflict: booking is %s", e.Current)
}

// Is makes errors.Is(err, ErrStateConflict) succeed for any state
// conflict regardless of the current status it carries.
func (e *StateConflictError) Is(target error) bool { return target == ErrStateConflict }
