package client

import (
	"context"
	"errors"
)

// Client-side validation errors. These fire before any request leaves the
// device; the server re-checks the same three fields.
var (
	ErrMissingJobTitle   = errors.New("job title is required")
	ErrMissingStartDate  = errors.New("start date is required")
	ErrMissingAgreedRate = errors.New("agreed rate is required")
	ErrBadDecision       = errors.New("status must be accepted or rejected")
)

// BookingManager drives the booking lifecycle from the client side. After
// every successful mutation it refetches the affected lists and pushes them
// through the listeners, rather than speculatively editing local state.
type BookingManager struct {
	client  *Client
	session *Session

	// OnOffers and OnBookings receive the reconciled lists after a
	// mutation. Either may be nil.
	OnOffers   func([]JobOffer)
	OnBookings func([]Booking)
}

func NewBookingManager(client *Client, session *Session) *BookingManager {
	return &BookingManager{client: client, session: session}
}

// CreateBooking validates the three mandatory fields, posts the booking,
// then refetches the available-offer pool and the employer's bookings so
// local state reflects what the server actually recorded.
func (m *BookingManager) CreateBooking(ctx context.Context, params CreateBookingParams) (*Booking, error) {
	if params.JobTitle == "" {
		return nil, ErrMissingJobTitle
	}
	if params.StartDate == nil || params.StartDate.IsZero() {
		return nil, ErrMissingStartDate
	}
	if params.AgreedRate <= 0 {
		return nil, ErrMissingAgreedRate
	}

	booking, err := m.client.CreateBooking(ctx, m.session.FirebaseUID, params)
	if err != nil {
		return nil, err
	}

	m.reconcileOffers(ctx)
	m.reconcileEmployerBookings(ctx)
	return booking, nil
}

// UpdateBookingStatus applies the worker's decision. Only accepted and
// rejected are sendable; on success the worker's booking list is refetched.
func (m *BookingManager) UpdateBookingStatus(ctx context.Context, bookingID, status string) (*Booking, error) {
	if status != "accepted" && status != "rejected" {
		return nil, ErrBadDecision
	}

	booking, err := m.client.UpdateBookingStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}

	if m.OnBookings != nil {
		if bookings, err := m.client.WorkerBookings(ctx, m.session.FirebaseUID, ""); err == nil {
			m.OnBookings(bookings)
		}
	}
	return booking, nil
}

func (m *BookingManager) EmployerBookings(ctx context.Context, status string) ([]Booking, error) {
	return m.client.EmployerBookings(ctx, m.session.FirebaseUID, status)
}

func (m *BookingManager) WorkerBookings(ctx context.Context, status string) ([]Booking, error) {
	return m.client.WorkerBookings(ctx, m.session.FirebaseUID, status)
}

func (m *BookingManager) reconcileOffers(ctx context.Context) {
	if m.OnOffers == nil {
		return
	}
	if offers, err := m.client.ActiveWorkerOffers(ctx); err == nil {
		m.OnOffers(offers)
	}
}

func (m *BookingManager) reconcileEmployerBookings(ctx context.Context) {
	if m.OnBookings == nil {
		return
	}
	if bookings, err := m.client.EmployerBookings(ctx, m.session.FirebaseUID, ""); err == nil {
		m.OnBookings(bookings)
	}
}
