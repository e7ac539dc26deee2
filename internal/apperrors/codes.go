package apperrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeInvalidOTP         ErrorCode = "INVALID_OTP"
	CodeOTPExpired         ErrorCode = "OTP_EXPIRED"
	CodeTooManyAttempts    ErrorCode = "TOO_MANY_ATTEMPTS"
	CodeProfileIncomplete  ErrorCode = "PROFILE_INCOMPLETE"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserType  ErrorCode = "INVALID_USER_TYPE"
	CodeInvalidPhone     ErrorCode = "INVALID_PHONE"

	// Resources
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound  ErrorCode = "PROFILE_NOT_FOUND"
	CodeJobOfferNotFound ErrorCode = "JOB_OFFER_NOT_FOUND"
	CodeBookingNotFound  ErrorCode = "BOOKING_NOT_FOUND"
	CodeChatNotFound     ErrorCode = "CHAT_NOT_FOUND"

	// Business rules
	CodePhoneAlreadyExists        ErrorCode = "PHONE_ALREADY_EXISTS"
	CodeAccountUnderReview        ErrorCode = "ACCOUNT_UNDER_REVIEW"
	CodeUserSuspended             ErrorCode = "USER_SUSPENDED"
	CodeInvalidBookingTransition  ErrorCode = "INVALID_BOOKING_TRANSITION"
	CodeApplicationAlreadyExists  ErrorCode = "APPLICATION_ALREADY_EXISTS"
	CodeChatParticipantsForbidden ErrorCode = "NOT_A_PARTICIPANT"
	CodeEmptyMessage              ErrorCode = "EMPTY_MESSAGE"
	CodeMessageTooLong            ErrorCode = "MESSAGE_TOO_LONG"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Uploads
	CodeFileTooLarge    ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"
)
