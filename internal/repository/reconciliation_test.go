package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/tour-booking/internal/model"
)

// A non-terminal target status is an invalid argument, rejected before
// the transaction starts, and must not read as a record-level state
// conflict.
func TestDecideRejectsNonTerminalStatus(t *testing.T) {
	r := NewReconciliationRepo(nil)
	for _, status := range []model.BookingStatus{model.BookingPending, model.BookingInReview} {
		_, err := r.Decide(context.Background(), "m-1", status)
		if err == nil {
			t.Fatalf("status %q must be rejected", status)
		}
		if errors.Is(err, ErrStateConflict) {
			t.Fatalf("status %q must not map to a state conflict, got %v", status, err)
		}
		var conflict *StateConflictError
		if errors.As(err, &conflict) {
			t.Fatalf("status %q must not produce a StateConflictError, got %v", status, err)
		}
	}
}
