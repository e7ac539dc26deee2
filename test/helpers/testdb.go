package helpers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/auth"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
)

// CreateUser inserts a user row, hashing the password if a raw one was
// supplied. Unset fields fall back to an active, admin-verified account
// so tests exercise the happy path unless they say otherwise.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	if user.FirebaseUID == "" {
		user.FirebaseUID = uuid.NewString()
	}
	if user.PasswordHash == "" {
		hashed, err := auth.HashPassword("test-password-123")
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user.PasswordHash = hashed
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	user.PhoneNumber = auth.NormalizePhone(user.PhoneNumber)

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", user.PhoneNumber, err)
	}
	return user
}

// CreateUserWithToken creates a user and issues an access token for it,
// bypassing the OTP flow.
func CreateUserWithToken(t *testing.T, db *gorm.DB, userType models.UserType, phone string, verified bool) (string, *models.User) {
	user := CreateUser(t, db, &models.User{
		UserType:        userType,
		DisplayName:     "Test " + string(userType),
		PhoneNumber:     phone,
		ProfileComplete: true,
		IsVerified:      verified,
	})

	token, err := auth.GenerateToken(user.FirebaseUID, string(user.UserType))
	if err != nil {
		t.Fatalf("failed to issue token for %s: %v", user.FirebaseUID, err)
	}
	return token, user
}

// CreateWorkerOffer inserts an approved, active service posting owned by
// the given worker.
func CreateWorkerOffer(t *testing.T, db *gorm.DB, workerUID, title string) *models.JobOffer {
	offer := &models.JobOffer{
		OwnerFirebaseUID: workerUID,
		OwnerType:        models.JobOfferOwnerWorker,
		Title:            title,
		Description:      "Test service posting",
		Area:             "Baneshwor",
		District:         "Kathmandu",
		Rate:             800,
		RateType:         models.RateTypeDaily,
		IsApproved:       true,
		Status:           models.JobOfferStatusActive,
	}
	if err := db.Create(offer).Error; err != nil {
		t.Fatalf("failed to create test offer %q: %v", title, err)
	}
	return offer
}

// CreateBooking inserts a booking between the given employer and worker
// against the worker's posting.
func CreateBooking(t *testing.T, db *gorm.DB, employerUID, workerUID, offerID string, status models.BookingStatus) *models.Booking {
	booking := &models.Booking{
		EmployerFirebaseUID: employerUID,
		WorkerFirebaseUID:   workerUID,
		WorkerJobOfferID:    offerID,
		JobTitle:            "Test booking",
		StartDate:           time.Now().Add(24 * time.Hour),
		AgreedRate:          800,
		RateType:            models.RateTypeDaily,
		Status:              status,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("failed to create test booking: %v", err)
	}
	return booking
}
