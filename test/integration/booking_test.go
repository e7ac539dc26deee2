package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/test/helpers"
)

func TestBookingLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	employerToken, employer := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841200001", true)
	workerToken, worker := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841200002", true)
	offer := helpers.CreateWorkerOffer(t, ts.DB, worker.FirebaseUID, "Electrician")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/employer/"+employer.FirebaseUID+"/bookings", employerToken, map[string]interface{}{
		"workerFirebaseUid": worker.FirebaseUID,
		"workerJobOfferId":  offer.ID,
		"jobTitle":          "Rewire kitchen",
		"startDate":         time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"agreedRate":        1500,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		Booking struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"booking"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "pending", created.Booking.Status)

	// The worker sees the request and accepts it.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/worker/"+worker.FirebaseUID+"/bookings?status=pending", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, created.Booking.ID)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/bookings/"+created.Booking.ID+"/status", workerToken, map[string]interface{}{
		"status": "accepted",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "accepted")

	// A second decision on the same booking is rejected.
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/bookings/"+created.Booking.ID+"/status", workerToken, map[string]interface{}{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "INVALID_BOOKING_TRANSITION")
}

func TestUnverifiedEmployerCannotBook(t *testing.T) {
	ts := GetTestServer(t)
	employerToken, employer := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841200003", false)
	_, worker := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841200004", true)
	offer := helpers.CreateWorkerOffer(t, ts.DB, worker.FirebaseUID, "Carpentry")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/employer/"+employer.FirebaseUID+"/bookings", employerToken, map[string]interface{}{
		"workerFirebaseUid": worker.FirebaseUID,
		"workerJobOfferId":  offer.ID,
		"jobTitle":          "Build shelves",
		"startDate":         time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"agreedRate":        900,
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "ACCOUNT_UNDER_REVIEW")
}

func TestWorkerCannotDecideAnotherWorkersBooking(t *testing.T) {
	ts := GetTestServer(t)
	_, employer := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841200005", true)
	_, worker := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841200006", true)
	otherToken, _ := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841200007", true)
	offer := helpers.CreateWorkerOffer(t, ts.DB, worker.FirebaseUID, "Masonry")
	booking := helpers.CreateBooking(t, ts.DB, employer.FirebaseUID, worker.FirebaseUID, offer.ID, models.BookingStatusPending)

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/bookings/"+booking.ID+"/status", otherToken, map[string]interface{}{
		"status": "accepted",
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestAdminDrivesAcceptedBookingToCompletion(t *testing.T) {
	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeAdmin, "9841200008", true)
	_, employer := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841200009", true)
	_, worker := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841200010", true)
	offer := helpers.CreateWorkerOffer(t, ts.DB, worker.FirebaseUID, "Roofing")
	booking := helpers.CreateBooking(t, ts.DB, employer.FirebaseUID, worker.FirebaseUID, offer.ID, models.BookingStatusAccepted)

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/admin/bookings/"+booking.ID+"/status", adminToken, map[string]interface{}{
		"status": "in-progress",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/admin/bookings/"+booking.ID+"/status", adminToken, map[string]interface{}{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Completed is terminal, even for admins.
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/admin/bookings/"+booking.ID+"/status", adminToken, map[string]interface{}{
		"status": "in-progress",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestEmployerCanCancelOnlyPendingBookings(t *testing.T) {
	ts := GetTestServer(t)
	employerToken, employer := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeEmployer, "9841200011", true)
	_, worker := helpers.CreateUserWithToken(t, ts.DB, models.UserTypeWorker, "9841200012", true)
	offer := helpers.CreateWorkerOffer(t, ts.DB, worker.FirebaseUID, "Painting")

	pending := helpers.CreateBooking(t, ts.DB, employer.FirebaseUID, worker.FirebaseUID, offer.ID, models.BookingStatusPending)
	accepted := helpers.CreateBooking(t, ts.DB, employer.FirebaseUID, worker.FirebaseUID, offer.ID, models.BookingStatusAccepted)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/bookings/"+pending.ID, employerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/bookings/"+accepted.ID, employerToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}
