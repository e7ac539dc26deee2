package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/middleware"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

// AdminHandler is the review panel surface: account verification, offer
// approval, and the booking transitions neither marketplace side performs
// itself.
type AdminHandler struct {
	*BaseHandler
	adminService   services.AdminService
	bookingService services.BookingService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService, bookingService services.BookingService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    base,
		adminService:   adminService,
		bookingService: bookingService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
		admin.PATCH("/users/:uid/verify", h.VerifyUser)
		admin.PATCH("/job-offers/:id/approve", h.ApproveOffer)
		admin.PATCH("/bookings/:id/status", h.SetBookingStatus)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filter dto.AdminUserFilter
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	page, err := h.adminService.ListUsers(&filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{
		"users":    page.Users,
		"total":    page.Total,
		"page":     page.Page,
		"pageSize": page.PageSize,
	})
}

// VerifyUser flips the review flag that unlocks posting, booking and chat
// for the account.
func (h *AdminHandler) VerifyUser(c *gin.Context) {
	var req dto.SetVerifiedRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.adminService.SetVerified(c.Request.Context(), c.Param("uid"), req.IsVerified)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"user": dto.ToUserResponse(user)})
}

func (h *AdminHandler) ApproveOffer(c *gin.Context) {
	var req dto.SetApprovedRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	offer, err := h.adminService.SetOfferApproved(c.Request.Context(), c.Param("id"), req.IsApproved)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"jobOffer": offer})
}

// SetBookingStatus drives the externally-managed transitions, typically
// accepted to in-progress and in-progress to completed.
func (h *AdminHandler) SetBookingStatus(c *gin.Context) {
	var req dto.AdminBookingStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.AdminSetStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"booking": booking})
}
