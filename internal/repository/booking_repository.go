package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/tour-booking/internal/model"
)

// BookingRepo persists bookings in the `bookings` table. Status
// transitions are implemented as conditional updates matching on the
// current status, so a booking already advanced by a concurrent request
// is left untouched and the caller observes a state conflict instead of
// a double transition.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingCols = "id,tourist_email,tour_guide_name,menu_id,package_name,price_cents,tour_date,status,created_at,updated_at"

func scanBooking(row interface{ Scan(...interface{}) error }) (model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.TouristEmail, &b.TourGuideName, &b.MenuID,
		&b.PackageName, &b.PriceCents, &b.TourDate, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// Create inserts a new booking. Status is forced to pending regardless
// of what the caller set; only transitions move it from there.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	b.TouristEmail = strings.ToLower(strings.TrimSpace(b.TouristEmail))
	b.Status = model.BookingPending
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (tourist_email, tour_guide_name, menu_id, package_name, price_cents, tour_date, status) VALUES (?,?,?,?,?,?,?)",
		b.TouristEmail, b.TourGuideName, b.MenuID, b.PackageName, b.PriceCents, b.TourDate, string(b.Status))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID fetches a booking by ID. Returns ErrBookingNotFound when no
// row matches.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	b, err := scanBooking(r.DB.QueryRowContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// ListByTourist returns all bookings made by the given tourist email,
// newest first.
func (r *BookingRepo) ListByTourist(ctx context.Context, email string) ([]model.Booking, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.list(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE tourist_email=? ORDER BY created_at DESC", email)
}

// ListByGuide returns all bookings assigned to the named tour guide,
// newest first.
func (r *BookingRepo) ListByGuide(ctx context.Context, name string) ([]model.Booking, error) {
	return r.list(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE tour_guide_name=? ORDER BY created_at DESC", name)
}

func (r *BookingRepo) list(ctx context.Context, query string, arg interface{}) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// MarkInReview advances a pending booking to in-review. The update
// matches on status='pending' as an optimistic guard against double
// processing: of several concurrent callers at most one flips the row.
// A zero-row match is re-read to tell "not found" from "wrong state".
func (r *BookingRepo) MarkInReview(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=? AND status=?",
		string(model.BookingInReview), id, string(model.BookingPending))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return r.conflictFor(ctx, id)
}

// Delete removes a booking that is still pending. The condition lives in
// the SQL so the guard holds under concurrent transitions.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM bookings WHERE id=? AND status=?", id, string(model.BookingPending))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return r.conflictFor(ctx, id)
}

// conflictFor resolves a zero-row conditional update into either
// ErrBookingNotFound or a StateConflictError with the current status.
func (r *BookingRepo) conflictFor(ctx context.Context, id uint64) error {
	var current model.BookingStatus
	err := r.DB.QueryRowContext(ctx,
		"SELECT status FROM bookings WHERE id=? LIMIT 1", id).Scan(&current)
	if err == sql.ErrNoRows {
		return ErrBookingNotFound
	}
	if err != nil {
		return err
	}
	return &StateConflictError{Current: current}
}
