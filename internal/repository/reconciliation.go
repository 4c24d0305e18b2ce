package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/tour-booking/internal/model"
)

// ReconciliationRepo applies accept/reject decisions to the booking and
// payment sharing a menu ID. Both tables live in the same database, so
// the pair of updates runs inside a single transaction: a failure on
// either side rolls back both. A zero-row match is not a failure; the
// matched/modified counts are returned for the caller to interpret, so
// a booking that was never in-review or a payment that was never created
// stays observable instead of crashing the request.
type ReconciliationRepo struct{ DB *sql.DB }

func NewReconciliationRepo(db *sql.DB) *ReconciliationRepo { return &ReconciliationRepo{DB: db} }

// Decide moves the booking matching {menuID, status=in-review} to the
// given terminal status and mirrors the status onto every payment with
// the same menuID. The booking update is conditional so concurrent
// decisions for one menuID cannot both flip the row; the payment update
// is unconditional, mirroring whatever the committed decision is.
func (r *ReconciliationRepo) Decide(ctx context.Context, menuID string, status model.BookingStatus) (DecisionOutcome, error) {
	if !status.Terminal() {
		return DecisionOutcome{}, fmt.Errorf("non-terminal status %q", status)
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return DecisionOutcome{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var out DecisionOutcome

	// Matched counts are read inside the transaction before each update;
	// RowsAffected alone only reports changed rows with this driver.
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE menu_id=? AND status=?",
		menuID, string(model.BookingInReview)).Scan(&out.Booking.Matched); err != nil {
		return DecisionOutcome{}, err
	}
	res, err := tx.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE menu_id=? AND status=?",
		string(status), menuID, string(model.BookingInReview))
	if err != nil {
		return DecisionOutcome{}, err
	}
	if out.Booking.Modified, err = res.RowsAffected(); err != nil {
		return DecisionOutcome{}, err
	}

	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM payments WHERE menu_id=?", menuID).Scan(&out.Payment.Matched); err != nil {
		return DecisionOutcome{}, err
	}
	res, err = tx.ExecContext(ctx,
		"UPDATE payments SET status=? WHERE menu_id=?", string(status), menuID)
	if err != nil {
		return DecisionOutcome{}, err
	}
	if out.Payment.Modified, err = res.RowsAffected(); err != nil {
		return DecisionOutcome{}, err
	}

	if err := tx.Commit(); err != nil {
		return DecisionOutcome{}, err
	}
	committed = true
	return out, nil
}

var _ ReconciliationStore = (*ReconciliationRepo)(nil)
