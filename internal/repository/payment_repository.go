package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/tour-booking/internal/model"
)

// PaymentRepo persists payments in the `payments` table. It exposes no
// status mutation: payment status is settled only by the reconciliation
// store so the two ledgers cannot drift through this path.
type PaymentRepo struct{ DB *sql.DB }

func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

// Create inserts a payment record for a completed external charge with
// initial status pending. When the gateway supplied no transaction
// reference a UUID is generated so the row stays traceable.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	p.TouristEmail = strings.ToLower(strings.TrimSpace(p.TouristEmail))
	p.Status = model.PaymentPending
	if p.TransactionRef == "" {
		p.TransactionRef = uuid.NewString()
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO payments (menu_id, tourist_email, amount_cents, transaction_ref, status) VALUES (?,?,?,?,?)",
		p.MenuID, p.TouristEmail, p.AmountCents, p.TransactionRef, string(p.Status))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// List returns all payments, newest first. Admin view.
func (r *PaymentRepo) List(ctx context.Context) ([]model.Payment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,menu_id,tourist_email,amount_cents,transaction_ref,status,created_at FROM payments ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	payments := make([]model.Payment, 0)
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.MenuID, &p.TouristEmail, &p.AmountCents, &p.TransactionRef, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

var _ PaymentStore = (*PaymentRepo)(nil)
var _ UserStore = (*UserRepo)(nil)
var _ BookingStore = (*BookingRepo)(nil)
