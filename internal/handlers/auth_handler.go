package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/middleware"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/send-otp", h.SendOTP)
		auth.POST("/verify-otp", h.VerifyOTP)
		auth.POST("/phone-login", h.PhoneLogin)
	}

	authed := rg.Group("/auth")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/save-profile", h.SaveProfile)
		authed.GET("/profile/:firebaseUid", h.GetProfile)
		authed.PUT("/profile/:firebaseUid/complete", h.CompleteProfile)
	}
}

// SendOTP starts phone verification.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.SendOTP(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Verification code sent"})
}

// VerifyOTP completes phone verification, creating the account on first
// contact.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.VerifyOTP(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"token": resp.Token, "user": resp.User})
}

// PhoneLogin authenticates with phone number and password. The user payload
// carries profileComplete so the client knows whether to resume
// registration.
func (h *AuthHandler) PhoneLogin(c *gin.Context) {
	var req dto.PhoneLoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.PhoneLogin(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"token": resp.Token, "user": resp.User})
}

// SaveProfile upserts the account-level signup fields. Callers can only
// write their own record.
func (h *AuthHandler) SaveProfile(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	var req dto.SaveUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.FirebaseUID != uid {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	user, err := h.authService.SaveUser(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"user": dto.ToUserResponse(user)})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	uid := c.Param("firebaseUid")

	user, err := h.authService.GetUser(uid)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"user": dto.ToUserResponse(user)})
}

// CompleteProfile marks registration finished for the caller's own account.
func (h *AuthHandler) CompleteProfile(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}
	if c.Param("firebaseUid") != uid {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	if err := h.authService.CompleteProfile(uid); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Profile marked complete"})
}
