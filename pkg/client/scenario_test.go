package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An unverified employer taps "Book Now": the gate blocks, the warning
// shows, and nothing reaches the network.
func TestUnverifiedEmployerBookingIsFullyBlocked(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"user":{"firebaseUid":"emp-1","profileComplete":true,"isVerified":false}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	session := &Session{FirebaseUID: "emp-1", UserType: "employer"}
	cache := NewVerificationCache(c)
	cache.Refresh(context.Background(), session.FirebaseUID)

	var warnings []string
	gate := NewActionGate(cache, func(msg string) { warnings = append(warnings, msg) })
	manager := NewBookingManager(c, session)

	requestsBefore := atomic.LoadInt32(&requests)
	ran := gate.Guard(func() {
		now := time.Now()
		_, _ = manager.CreateBooking(context.Background(), CreateBookingParams{
			WorkerFirebaseUID: "wkr-1",
			WorkerJobOfferID:  "offer-1",
			JobTitle:          "Painter",
			StartDate:         &now,
			AgreedRate:        1200,
		})
	})

	assert.False(t, ran)
	assert.Equal(t, []string{AccountUnderReviewWarning}, warnings)
	assert.Equal(t, requestsBefore, atomic.LoadInt32(&requests), "blocked action must not produce requests")
}

// A verified employer books: the gate passes and the booking round trip
// happens.
func TestVerifiedEmployerBookingGoesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/profile/emp-1":
			w.Write([]byte(`{"success":true,"user":{"firebaseUid":"emp-1","profileComplete":true,"isVerified":true}}`))
		case "/api/employer/emp-1/bookings":
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"success":true,"booking":{"id":"bk-9","status":"pending"}}`))
				return
			}
			w.Write([]byte(`{"success":true,"bookings":[{"id":"bk-9","status":"pending"}]}`))
		case "/api/worker-job-offers/active":
			w.Write([]byte(`{"success":true,"jobOffers":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"not found"}`))
		}
	}))
	defer server.Close()

	c := NewClient(server.URL)
	session := &Session{FirebaseUID: "emp-1", UserType: "employer"}
	cache := NewVerificationCache(c)
	cache.Refresh(context.Background(), session.FirebaseUID)

	gate := NewActionGate(cache, nil)
	manager := NewBookingManager(c, session)

	var booking *Booking
	var bookErr error
	ran := gate.Guard(func() {
		now := time.Now()
		booking, bookErr = manager.CreateBooking(context.Background(), CreateBookingParams{
			WorkerFirebaseUID: "wkr-1",
			WorkerJobOfferID:  "offer-1",
			JobTitle:          "Painter",
			StartDate:         &now,
			AgreedRate:        1200,
		})
	})

	assert.True(t, ran)
	require.NoError(t, bookErr)
	require.NotNil(t, booking)
	assert.Equal(t, "bk-9", booking.ID)
	assert.Equal(t, "pending", booking.Status)
}
