package model

import "time"

// PaymentStatus mirrors the booking outcome for the same menu ID.  A
// payment starts pending and is moved to accepted or rejected exclusively
// by the reconciliation step; end users never set it directly.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentAccepted PaymentStatus = "accepted"
	PaymentRejected PaymentStatus = "rejected"
)

// Payment records a completed external charge for a booking.  One payment
// is created per charge, carrying the MenuID of the booking it pays for.
//
// Fields:
//  ID             – primary key identifier.
//  MenuID         – correlation key shared with the booking record.
//  TouristEmail   – email of the paying tourist.
//  AmountCents    – charged amount in minor currency units.
//  TransactionRef – gateway transaction reference (generated when absent).
//  Status         – pending until reconciliation settles it.
//  CreatedAt      – creation timestamp.
type Payment struct {
	ID             uint64        `json:"id"`              // payments.id
	MenuID         string        `json:"menu_id"`         // payments.menu_id
	TouristEmail   string        `json:"tourist_email"`   // payments.tourist_email
	AmountCents    int64         `json:"amount_cents"`    // payments.amount_cents
	TransactionRef string        `json:"transaction_ref"` // payments.transaction_ref
	Status         PaymentStatus `json:"status"`          // payments.status
	CreatedAt      time.Time     `json:"created_at"`      // payments.created_at
}
