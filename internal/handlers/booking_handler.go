package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/middleware"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup, gate gin.HandlerFunc) {
	employer := rg.Group("/employer/:uid/bookings")
	employer.Use(middleware.AuthMiddleware())
	{
		employer.POST("", gate, middleware.RequireUserTypes(models.UserTypeEmployer), h.CreateBooking)
		employer.GET("", h.ListEmployerBookings)
	}

	worker := rg.Group("/worker/:uid/bookings")
	worker.Use(middleware.AuthMiddleware())
	{
		worker.GET("", h.ListWorkerBookings)
	}

	bookings := rg.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.GET("/:id", h.GetBooking)
		bookings.PATCH("/:id/status", gate, middleware.RequireUserTypes(models.UserTypeWorker), h.DecideBooking)
		bookings.DELETE("/:id", gate, middleware.RequireUserTypes(models.UserTypeEmployer), h.DeleteBooking)
	}
}

// CreateBooking makes a hire request against a worker's offer. The path uid
// must be the caller.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}
	if c.Param("uid") != uid {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, gin.H{"booking": booking})
}

func (h *BookingHandler) ListEmployerBookings(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}
	if c.Param("uid") != uid {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	bookings, err := h.bookingService.ListForEmployer(uid, models.BookingStatus(c.Query("status")))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"bookings": bookings})
}

func (h *BookingHandler) ListWorkerBookings(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}
	if c.Param("uid") != uid {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	bookings, err := h.bookingService.ListForWorker(uid, models.BookingStatus(c.Query("status")))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"bookings": bookings})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(uid, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"booking": booking})
}

// DecideBooking applies the worker's accept or reject to a pending booking.
func (h *BookingHandler) DecideBooking(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Decide(c.Request.Context(), uid, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"booking": booking})
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Booking deleted"})
}
