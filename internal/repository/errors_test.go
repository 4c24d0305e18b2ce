package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/iliyamo/tour-booking/internal/model"
)

func TestStateConflictErrorMatching(t *testing.T) {
	var err error = &StateConflictError{Current: model.BookingAccepted}

	if !errors.Is(err, ErrStateConflict) {
		t.Fatalf("state conflict must match the sentinel")
	}
	if errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("state conflict must not match not-found")
	}

	var conflict *StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("errors.As should recover the concrete conflict")
	}
	if conflict.Current != model.BookingAccepted {
		t.Fatalf("conflict lost the current status: %q", conflict.Current)
	}

	// matching survives wrapping
	wrapped := fmt.Errorf("mark in review: %w", err)
	if !errors.Is(wrapped, ErrStateConflict) {
		t.Fatalf("wrapped conflict must still match the sentinel")
	}
}
