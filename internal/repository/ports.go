package repository

import (
	"context"

	"github.com/iliyamo/tour-booking/internal/model"
)

// This file declares the store interfaces handlers and middleware depend
// on. The MySQL repositories in this package implement them; tests inject
// in-memory fakes. Constructing them once at process start and passing
// them explicitly keeps connection state out of globals.

// UserStore is the authoritative mapping from identity to role. The
// authorization middleware performs a lookup through it on every
// privileged call.
type UserStore interface {
	// RegisterIfAbsent inserts the user unless the email is already
	// registered. It reports whether a new row was created and fills in
	// the generated ID on insertion.
	RegisterIfAbsent(ctx context.Context, u *model.User) (bool, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// UpdateRole sets the role of the user with the given ID. The role
	// must already be validated against the closed set.
	UpdateRole(ctx context.Context, id uint64, role model.Role) error
	Delete(ctx context.Context, id uint64) error
}

// BookingStore owns booking records and their status field. Status
// transitions are conditional updates: a transition from the wrong state
// yields a *StateConflictError rather than silently matching zero rows.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (model.Booking, error)
	ListByTourist(ctx context.Context, email string) ([]model.Booking, error)
	ListByGuide(ctx context.Context, name string) ([]model.Booking, error)
	// MarkInReview advances a pending booking to in-review. Returns
	// ErrBookingNotFound when the ID does not exist and a
	// *StateConflictError when the booking is no longer pending.
	MarkInReview(ctx context.Context, id uint64) error
	// Delete removes a booking that is still pending. Bookings that have
	// advanced past pending yield a *StateConflictError.
	Delete(ctx context.Context, id uint64) error
}

// PaymentStore owns payment records. Status is settled exclusively by
// the reconciliation store, never through this interface.
type PaymentStore interface {
	Create(ctx context.Context, p *model.Payment) error
	List(ctx context.Context) ([]model.Payment, error)
}

// UpdateOutcome reports how many records a reconciliation step matched
// and how many it actually changed. Matched==0 on the payment side means
// no payment was ever created for the menu ID; the caller interprets it.
type UpdateOutcome struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}

// DecisionOutcome bundles the per-ledger outcomes of one reconciliation.
type DecisionOutcome struct {
	Booking UpdateOutcome `json:"bookingResult"`
	Payment UpdateOutcome `json:"paymentResult"`
}

// ReconciliationStore applies an accept/reject decision to the booking
// and payment sharing a menu ID inside a single transactional boundary.
type ReconciliationStore interface {
	// Decide moves the booking matching {menuID, in-review} to the given
	// terminal status and mirrors that status onto the payment with the
	// same menuID. Zero matches on either side are reported in the
	// outcome, not returned as errors.
	Decide(ctx context.Context, menuID string, status model.BookingStatus) (DecisionOutcome, error)
}
