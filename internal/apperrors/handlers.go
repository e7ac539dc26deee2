package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of a failed request. The mobile and web
// clients branch on `success` and show `message` verbatim.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError writes an AppError as the standard error envelope.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		log.Printf("Server error: %v", err)
	}

	c.JSON(err.HTTPCode, ErrorResponse{
		Success: false,
		Message: err.Message,
		Code:    err.Code,
		Details: err.Details,
	})
}

// HandleValidationError converts gin binding errors to the error envelope.
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ErrValidationFailed.WithDetails(gin.H{"details": err.Error()}))
}
