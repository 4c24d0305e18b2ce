package handler

// In-memory fakes of the store interfaces. They reproduce the
// conditional-update semantics of the MySQL repositories (match on
// current status, report matched/modified counts) so handler tests can
// exercise the state machine, including concurrent transitions, without
// a database.

import (
	"context"
	"strings"
	"sync"

	"github.com/iliyamo/tour-booking/internal/gateway"
	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/repository"
)

type memUserStore struct {
	mu     sync.Mutex
	nextID uint64
	users  map[string]*model.User // keyed by email
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.User)}
}

func (s *memUserStore) RegisterIfAbsent(_ context.Context, u *model.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(strings.TrimSpace(u.Email))
	if _, ok := s.users[email]; ok {
		return false, nil
	}
	s.nextID++
	u.ID = s.nextID
	u.Email = email
	if u.Role == "" {
		u.Role = model.RoleTourist
	}
	cp := *u
	s.users[email] = &cp
	return true, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return *u, nil
}

func (s *memUserStore) List(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *memUserStore) UpdateRole(_ context.Context, id uint64, role model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (s *memUserStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, u := range s.users {
		if u.ID == id {
			delete(s.users, email)
			return nil
		}
	}
	return repository.ErrUserNotFound
}

type memBookingStore struct {
	mu       sync.Mutex
	nextID   uint64
	bookings map[uint64]*model.Booking
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{bookings: make(map[uint64]*model.Booking)}
}

func (s *memBookingStore) Create(_ context.Context, b *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b.ID = s.nextID
	b.Status = model.BookingPending
	cp := *b
	s.bookings[b.ID] = &cp
	return nil
}

func (s *memBookingStore) GetByID(_ context.Context, id uint64) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return model.Booking{}, repository.ErrBookingNotFound
	}
	return *b, nil
}

func (s *memBookingStore) ListByTourist(_ context.Context, email string) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, 0)
	for _, b := range s.bookings {
		if b.TouristEmail == strings.ToLower(email) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *memBookingStore) ListByGuide(_ context.Context, name string) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, 0)
	for _, b := range s.bookings {
		if b.TourGuideName == name {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *memBookingStore) MarkInReview(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	if b.Status != model.BookingPending {
		return &repository.StateConflictError{Current: b.Status}
	}
	b.Status = model.BookingInReview
	return nil
}

func (s *memBookingStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	if b.Status != model.BookingPending {
		return &repository.StateConflictError{Current: b.Status}
	}
	delete(s.bookings, id)
	return nil
}

// setStatus seeds a booking into an arbitrary state for tests.
func (s *memBookingStore) setStatus(id uint64, status model.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bookings[id]; ok {
		b.Status = status
	}
}

type memPaymentStore struct {
	mu       sync.Mutex
	nextID   uint64
	payments map[uint64]*model.Payment
}

func newMemPaymentStore() *memPaymentStore {
	return &memPaymentStore{payments: make(map[uint64]*model.Payment)}
}

func (s *memPaymentStore) Create(_ context.Context, p *model.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	p.Status = model.PaymentPending
	if p.TransactionRef == "" {
		p.TransactionRef = "txn-generated"
	}
	cp := *p
	s.payments[p.ID] = &cp
	return nil
}

func (s *memPaymentStore) List(_ context.Context) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, *p)
	}
	return out, nil
}

// memReconciliationStore applies decisions over the two fakes with the
// same conditional semantics as the SQL transaction: booking update
// matches on {menuID, in-review}, payment update matches on menuID only.
type memReconciliationStore struct {
	bookings *memBookingStore
	payments *memPaymentStore
}

func (s *memReconciliationStore) Decide(_ context.Context, menuID string, status model.BookingStatus) (repository.DecisionOutcome, error) {
	var out repository.DecisionOutcome
	s.bookings.mu.Lock()
	for _, b := range s.bookings.bookings {
		if b.MenuID == menuID && b.Status == model.BookingInReview {
			out.Booking.Matched++
			b.Status = status
			out.Booking.Modified++
		}
	}
	s.bookings.mu.Unlock()
	s.payments.mu.Lock()
	for _, p := range s.payments.payments {
		if p.MenuID == menuID {
			out.Payment.Matched++
			if p.Status != model.PaymentStatus(status) {
				p.Status = model.PaymentStatus(status)
				out.Payment.Modified++
			}
		}
	}
	s.payments.mu.Unlock()
	return out, nil
}

// stubIntents is a canned payment-gateway collaborator.
type stubIntents struct {
	intent gateway.Intent
	err    error
	gotAmt int64
}

func (s *stubIntents) CreateIntent(_ context.Context, amountCents int64) (gateway.Intent, error) {
	s.gotAmt = amountCents
	return s.intent, s.err
}

var (
	_ repository.UserStore           = (*memUserStore)(nil)
	_ repository.BookingStore        = (*memBookingStore)(nil)
	_ repository.PaymentStore        = (*memPaymentStore)(nil)
	_ repository.ReconciliationStore = (*memReconciliationStore)(nil)
)
