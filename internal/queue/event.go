// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingDecidedEvent is published after a reconciliation commits a
// decision for a menu ID.  It carries the per-ledger match/modify counts
// so downstream consumers can log or alert on divergence (for example a
// decided booking with no payment record) without querying the primary
// database.
type BookingDecidedEvent struct {
	EventID         string `json:"event_id"`
	MenuID          string `json:"menu_id"`
	Decision        string `json:"decision"` // accepted | rejected
	BookingMatched  int64  `json:"booking_matched"`
	BookingModified int64  `json:"booking_modified"`
	PaymentMatched  int64  `json:"payment_matched"`
	PaymentModified int64  `json:"payment_modified"`
	DecidedBy       string `json:"decided_by"` // email of the guide/admin
	DecidedAt       string `json:"decided_at"`
}
