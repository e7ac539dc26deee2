package dto

import (
	"time"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
)

// SendOTPRequest starts phone verification for a new or returning user.
type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,nepali-phone"`
}

// VerifyOTPRequest completes phone verification. UserType is required on the
// first verification only; it is ignored for existing accounts.
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,nepali-phone"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	UserType    string `json:"userType,omitempty" validate:"omitempty,is-user-type"`
	DisplayName string `json:"displayName,omitempty" validate:"omitempty,max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Password    string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// PhoneLoginRequest authenticates an existing account with phone and password.
type PhoneLoginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,nepali-phone"`
	Password    string `json:"password" validate:"required"`
}

// SaveUserRequest upserts the account-level fields the clients hold in
// their signup flow. Identity documents and marketplace data go through
// the profile endpoints instead.
type SaveUserRequest struct {
	FirebaseUID string `json:"firebaseUid" validate:"required"`
	UserType    string `json:"userType" validate:"required,is-user-type"`
	DisplayName string `json:"displayName" validate:"omitempty,max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,nepali-phone"`
}

// AuthResponse is the common payload for verify-otp and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the safe public view of an account.
type UserResponse struct {
	ID              string    `json:"id"`
	FirebaseUID     string    `json:"firebaseUid"`
	UserType        string    `json:"userType"`
	DisplayName     string    `json:"displayName"`
	Email           string    `json:"email,omitempty"`
	PhoneNumber     string    `json:"phoneNumber"`
	ProfileComplete bool      `json:"profileComplete"`
	IsVerified      bool      `json:"isVerified"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		FirebaseUID:     u.FirebaseUID,
		UserType:        string(u.UserType),
		DisplayName:     u.DisplayName,
		Email:           u.Email,
		PhoneNumber:     u.PhoneNumber,
		ProfileComplete: u.ProfileComplete,
		IsVerified:      u.IsVerified,
		Status:          string(u.Status),
		CreatedAt:       u.CreatedAt,
	}
}
