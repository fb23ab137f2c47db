// Package store holds the marketplace collections in memory. Every write
// builds a new slice and swaps the collection reference; reads hand out copies.
package store

import (
	"errors"
	"sync"

	"marhaba_app_echo/internal/models"
)

// ErrNotFound is returned when no record matches the given id
var ErrNotFound = errors.New("record not found")

// Store is the in-memory data store
type Store struct {
	mu        sync.RWMutex
	users     []models.User
	offers    []models.Offer
	bookings  []models.Booking
	inquiries []models.Inquiry
	sessions  []models.PaymentSession
}

// New returns an empty store
func New() *Store {
	return &Store{}
}

// NewSeeded returns a store loaded with the mock data set
func NewSeeded() *Store {
	s := New()
	s.users, s.offers, s.bookings, s.inquiries = seedData()
	return s
}

// Users

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) FindUserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// AddUserIf appends the user built by build, unless accept rejects the
// current collection. Both run under the write lock so the check and the
// append are atomic.
func (s *Store) AddUserIf(accept func(users []models.User) error, build func(users []models.User) models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := accept(s.users); err != nil {
		return models.User{}, err
	}
	u := build(s.users)
	next := make([]models.User, 0, len(s.users)+1)
	next = append(next, s.users...)
	s.users = append(next, u)
	return u, nil
}

// Offers

func (s *Store) Offers() []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Offer, len(s.offers))
	for i, o := range s.offers {
		out[i] = o.Clone()
	}
	return out
}

func (s *Store) FindOffer(id string) (models.Offer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.offers {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return models.Offer{}, false
}

// AddOffer puts the offer at the front of the collection
func (s *Store) AddOffer(offer models.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.Offer, 0, len(s.offers)+1)
	next = append(next, offer.Clone())
	s.offers = append(next, s.offers...)
}

// UpdateOffer replaces the offer with the same id
func (s *Store) UpdateOffer(offer models.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, o := range s.offers {
		if o.ID == offer.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	next := append([]models.Offer(nil), s.offers...)
	next[idx] = offer.Clone()
	s.offers = next
	return nil
}

// DeleteOffer removes the offer. Bookings and inquiries referencing it are
// left untouched.
func (s *Store) DeleteOffer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		if o.ID != id {
			next = append(next, o)
		}
	}
	if len(next) == len(s.offers) {
		return ErrNotFound
	}
	s.offers = next
	return nil
}

// Bookings

func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	for i, b := range s.bookings {
		out[i] = b.Clone()
	}
	return out
}

func (s *Store) FindBooking(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return models.Booking{}, false
}

// AddBooking puts the booking at the front of the collection
func (s *Store) AddBooking(booking models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.Booking, 0, len(s.bookings)+1)
	next = append(next, booking.Clone())
	s.bookings = append(next, s.bookings...)
}

// UpdateBooking applies fn to the booking with the given id and stores the
// result. fn runs under the write lock; returning an error aborts the update.
func (s *Store) UpdateBooking(id string, fn func(*models.Booking) error) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID != id {
			continue
		}
		updated := b.Clone()
		if err := fn(&updated); err != nil {
			return models.Booking{}, err
		}
		next := append([]models.Booking(nil), s.bookings...)
		next[i] = updated
		s.bookings = next
		return updated.Clone(), nil
	}
	return models.Booking{}, ErrNotFound
}

// Inquiries

func (s *Store) Inquiries() []models.Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Inquiry, len(s.inquiries))
	for i, q := range s.inquiries {
		out[i] = q.Clone()
	}
	return out
}

func (s *Store) FindInquiry(id string) (models.Inquiry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.inquiries {
		if q.ID == id {
			return q.Clone(), true
		}
	}
	return models.Inquiry{}, false
}

func (s *Store) AddInquiry(inquiry models.Inquiry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.Inquiry, 0, len(s.inquiries)+1)
	next = append(next, inquiry.Clone())
	s.inquiries = append(next, s.inquiries...)
}

// UpdateInquiry applies fn to the inquiry with the given id, see UpdateBooking
func (s *Store) UpdateInquiry(id string, fn func(*models.Inquiry) error) (models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, q := range s.inquiries {
		if q.ID != id {
			continue
		}
		updated := q.Clone()
		if err := fn(&updated); err != nil {
			return models.Inquiry{}, err
		}
		next := append([]models.Inquiry(nil), s.inquiries...)
		next[i] = updated
		s.inquiries = next
		return updated.Clone(), nil
	}
	return models.Inquiry{}, ErrNotFound
}

// Payment sessions

func (s *Store) AddPaymentSession(session models.PaymentSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.PaymentSession, 0, len(s.sessions)+1)
	next = append(next, s.sessions...)
	s.sessions = append(next, session)
}

func (s *Store) FindPaymentSession(orderID string) (models.PaymentSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ps := range s.sessions {
		if ps.OrderID == orderID {
			return ps, true
		}
	}
	return models.PaymentSession{}, false
}

func (s *Store) UpdatePaymentSession(session models.PaymentSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ps := range s.sessions {
		if ps.OrderID == session.OrderID {
			next := append([]models.PaymentSession(nil), s.sessions...)
			next[i] = session
			s.sessions = next
			return nil
		}
	}
	return ErrNotFound
}
