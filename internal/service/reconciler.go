package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/queue"
	"github.com/iliyamo/tour-booking/internal/repository"
)

// Decision names an administrative or guide verdict on an in-review
// booking.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// status maps a decision onto the terminal booking status it produces.
func (d Decision) status() (model.BookingStatus, error) {
	switch d {
	case DecisionAccept:
		return model.BookingAccepted, nil
	case DecisionReject:
		return model.BookingRejected, nil
	}
	return "", fmt.Errorf("invalid decision %q", d)
}

// Publisher sends a decision event to the message broker.  It matches
// PublishBookingDecided; tests substitute a recording function.
type Publisher func(ctx context.Context, event queue.BookingDecidedEvent) error

// Reconciler coordinates the paired status update across the booking and
// payment ledgers when a guide or admin decides on an in-review booking.
// The store applies both updates inside one transaction; the reconciler
// interprets nothing, passing the per-ledger outcomes back to the caller,
// and publishes a decision event when the booking actually flipped.
type Reconciler struct {
	Store   repository.ReconciliationStore
	Publish Publisher // optional; nil disables event publishing
}

func NewReconciler(store repository.ReconciliationStore, publish Publisher) *Reconciler {
	return &Reconciler{Store: store, Publish: publish}
}

// Decide applies the decision to the booking and payment sharing menuID
// and returns the per-ledger outcomes.  actor is the email of the
// deciding guide or admin, recorded on the published event.  A booking
// outcome of zero matches (already decided, or never in-review) is not
// an error; no event is published for it.
func (r *Reconciler) Decide(ctx context.Context, menuID string, d Decision, actor string) (repository.DecisionOutcome, error) {
	status, err := d.status()
	if err != nil {
		return repository.DecisionOutcome{}, err
	}
	out, err := r.Store.Decide(ctx, menuID, status)
	if err != nil {
		return repository.DecisionOutcome{}, err
	}
	if r.Publish != nil && out.Booking.Modified > 0 {
		ev := queue.BookingDecidedEvent{
			EventID:         uuid.NewString(),
			MenuID:          menuID,
			Decision:        string(status),
			BookingMatched:  out.Booking.Matched,
			BookingModified: out.Booking.Modified,
			PaymentMatched:  out.Payment.Matched,
			PaymentModified: out.Payment.Modified,
			DecidedBy:       actor,
			DecidedAt:       time.Now().UTC().Format(time.RFC3339),
		}
		// best effort: a broker outage must not fail the decision
		_ = r.Publish(ctx, ev)
	}
	return out, nil
}
