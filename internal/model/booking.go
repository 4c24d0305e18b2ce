package model

import "time"

// BookingStatus enumerates the booking state machine:
//
//	pending --(guide/admin marks in-review)--> in-review
//	in-review --(accept)--> accepted   [terminal]
//	in-review --(reject)--> rejected   [terminal]
//
// Transitions are enforced by conditional updates in the repository layer;
// no other edges are legal.
type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingInReview BookingStatus = "in-review"
	BookingAccepted BookingStatus = "accepted"
	BookingRejected BookingStatus = "rejected"
)

// Terminal reports whether no further transitions are legal from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingAccepted || s == BookingRejected
}

// Booking records a tourist's request for a tour offering.  The MenuID is
// the correlation key linking the booking to the payment made for the same
// offering instance; the storage layer does not enforce its uniqueness.
//
// Fields:
//  ID            – primary key identifier.
//  TouristEmail  – email of the tourist who booked.
//  TourGuideName – guide the tour is assigned to.
//  MenuID        – correlation key shared with the payment record.
//  PackageName   – name of the booked tour package.
//  PriceCents    – tour price in minor currency units.
//  TourDate      – requested tour date.
//  Status        – current state machine position.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Booking struct {
	ID            uint64        `json:"id"`              // bookings.id
	TouristEmail  string        `json:"tourist_email"`   // bookings.tourist_email
	TourGuideName string        `json:"tour_guide_name"` // bookings.tour_guide_name
	MenuID        string        `json:"menu_id"`         // bookings.menu_id
	PackageName   string        `json:"package_name"`    // bookings.package_name
	PriceCents    int64         `json:"price_cents"`     // bookings.price_cents
	TourDate      time.Time     `json:"tour_date"`       // bookings.tour_date
	Status        BookingStatus `json:"status"`          // bookings.status
	CreatedAt     time.Time     `json:"created_at"`      // bookings.created_at
	UpdatedAt     time.Time     `json:"updated_at"`      // bookings.updated_at
}
