package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

// AppError is the application error carried from services up to handlers.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid phone number or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrInvalidOTP         = New(CodeInvalidOTP, "Invalid verification code", http.StatusBadRequest)
	ErrOTPExpired         = New(CodeOTPExpired, "Verification code has expired. Please request a new one.", http.StatusBadRequest)
	ErrTooManyAttempts    = New(CodeTooManyAttempts, "Too many attempts. Please request a new code.", http.StatusTooManyRequests)
	ErrProfileIncomplete  = New(CodeProfileIncomplete, "Profile registration is not complete", http.StatusForbidden)

	// Users
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrPhoneAlreadyExists = New(CodePhoneAlreadyExists, "An account with this phone number already exists", http.StatusConflict)
	ErrUserSuspended      = New(CodeUserSuspended, "User account suspended", http.StatusForbidden)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrInvalidUserType    = New(CodeInvalidUserType, "Invalid user type", http.StatusBadRequest)
	ErrInvalidPhone       = New(CodeInvalidPhone, "Invalid Nepali mobile number", http.StatusBadRequest)

	// Verification gate
	ErrAccountUnderReview = New(CodeAccountUnderReview,
		"Account Under Review. Please wait for admin approval before performing this action.",
		http.StatusForbidden)

	// Profiles
	ErrProfileNotFound = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)

	// Job offers
	ErrJobOfferNotFound         = New(CodeJobOfferNotFound, "Job offer not found", http.StatusNotFound)
	ErrApplicationAlreadyExists = New(CodeApplicationAlreadyExists, "You have already applied to this job", http.StatusConflict)

	// Bookings
	ErrBookingNotFound           = New(CodeBookingNotFound, "Booking not found", http.StatusNotFound)
	ErrInvalidBookingTransition  = New(CodeInvalidBookingTransition, "Booking status transition is not allowed", http.StatusConflict)
	ErrBookingMissingJobTitle    = New(CodeValidationFailed, "Job title is required", http.StatusBadRequest)
	ErrBookingMissingStartDate   = New(CodeValidationFailed, "Start date is required", http.StatusBadRequest)
	ErrBookingMissingAgreedRate  = New(CodeValidationFailed, "Agreed rate is required", http.StatusBadRequest)

	// Chat
	ErrChatNotFound     = New(CodeChatNotFound, "Chat not found", http.StatusNotFound)
	ErrNotAParticipant  = New(CodeChatParticipantsForbidden, "You are not a participant in this chat", http.StatusForbidden)
	ErrEmptyMessage     = New(CodeEmptyMessage, "Message text must not be empty", http.StatusBadRequest)
	ErrMessageTooLong   = New(CodeMessageTooLong, "Message text must be at most 1000 characters", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Uploads
	ErrFileTooLarge    = New(CodeFileTooLarge, "File too large", http.StatusBadRequest)
	ErrInvalidFileType = New(CodeInvalidFileType, "Invalid file type", http.StatusBadRequest)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "An error occurred. Please try again.", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeUserNotFound, message, http.StatusNotFound)
}

func NewConflictError(message string) *AppError {
	return New(CodePhoneAlreadyExists, message, http.StatusConflict)
}

func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message, http.StatusInternalServerError)
}
