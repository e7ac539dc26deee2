package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/auth"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/logger"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
)

// AuthMiddleware validates the bearer token and stores the caller's
// firebaseUid and user type in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Success: false,
				Message: "Authorization header missing or invalid",
				Code:    apperrors.CodeUnauthorized,
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Success: false,
				Message: "Invalid token",
				Code:    apperrors.CodeInvalidToken,
			})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", claims.UserID)
		c.Set("userType", claims.UserType)
		c.Next()
	}
}

// RequireUserTypes restricts a route group to the given user types.
func RequireUserTypes(types ...models.UserType) gin.HandlerFunc {
	typeSet := make(map[models.UserType]bool)
	for _, t := range types {
		typeSet[t] = true
	}

	return func(c *gin.Context) {
		typeVal, exists := c.Get("userType")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{
				Success: false,
				Message: "Access denied: no user type",
				Code:    apperrors.CodeForbidden,
			})
			return
		}

		userType, ok := typeVal.(string)
		if !ok || !typeSet[models.UserType(userType)] {
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{
				Success: false,
				Message: "Access denied: insufficient permissions",
				Code:    apperrors.CodeForbidden,
			})
			return
		}

		c.Next()
	}
}

// AdminMiddleware restricts a route group to admin users.
func AdminMiddleware() gin.HandlerFunc {
	return RequireUserTypes(models.UserTypeAdmin)
}

// RequireVerified is the server side of the verification gate: any
// state-changing worker/employer action is blocked until the account has a
// completed profile AND an admin has approved it. A lookup failure blocks
// too (fail closed).
func RequireVerified(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uidVal, exists := c.Get("userID")
		uid, _ := uidVal.(string)
		if !exists || uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Success: false,
				Message: "Authentication required",
				Code:    apperrors.CodeUnauthorized,
			})
			return
		}

		var user models.User
		err := db.First(&user, "firebase_uid = ?", uid).Error
		if err != nil || !user.ProfileComplete || !user.IsVerified {
			if user.UserType == models.UserTypeAdmin {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{
				Success: false,
				Message: apperrors.ErrAccountUnderReview.Message,
				Code:    apperrors.CodeAccountUnderReview,
			})
			return
		}

		c.Next()
	}
}

// GetUserID extracts the caller's firebaseUid from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
