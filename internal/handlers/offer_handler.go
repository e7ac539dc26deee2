package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/middleware"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

type OfferHandler struct {
	*BaseHandler
	offerService services.OfferService
}

func NewOfferHandler(base *BaseHandler, offerService services.OfferService) *OfferHandler {
	return &OfferHandler{
		BaseHandler:  base,
		offerService: offerService,
	}
}

// RegisterRoutes mounts both route families over the same offer table.
// gate is the verification middleware; browsing works for anyone logged
// in, posting and applying only for verified accounts.
func (h *OfferHandler) RegisterRoutes(rg *gin.RouterGroup, gate gin.HandlerFunc) {
	worker := rg.Group("/worker-job-offers")
	worker.Use(middleware.AuthMiddleware())
	{
		worker.GET("/active", h.ListActiveWorkerOffers)
		worker.GET("/worker/:uid", h.ListWorkerOffersByOwner)
		worker.GET("/:id", h.GetOffer)

		worker.POST("/create", gate, middleware.RequireUserTypes(models.UserTypeWorker), h.CreateWorkerOffer)
		worker.PUT("/:id", gate, middleware.RequireUserTypes(models.UserTypeWorker), h.UpdateOffer)
		worker.DELETE("/:id", gate, middleware.RequireUserTypes(models.UserTypeWorker), h.CloseOffer)
	}

	employer := rg.Group("/employer-job-offers")
	employer.Use(middleware.AuthMiddleware())
	{
		employer.GET("/active", h.ListActiveEmployerOffers)
		employer.GET("/employer/:uid", h.ListEmployerOffersByOwner)
		employer.GET("/:id", h.GetOffer)
		employer.GET("/:id/applications", h.ListApplications)

		employer.POST("/create", gate, middleware.RequireUserTypes(models.UserTypeEmployer), h.CreateEmployerOffer)
		employer.PUT("/:id", gate, middleware.RequireUserTypes(models.UserTypeEmployer), h.UpdateOffer)
		employer.DELETE("/:id", gate, middleware.RequireUserTypes(models.UserTypeEmployer), h.CloseOffer)
		employer.POST("/:id/apply", gate, middleware.RequireUserTypes(models.UserTypeWorker), h.Apply)
	}
}

func (h *OfferHandler) CreateWorkerOffer(c *gin.Context) {
	h.createOffer(c, models.JobOfferOwnerWorker)
}

func (h *OfferHandler) CreateEmployerOffer(c *gin.Context) {
	h.createOffer(c, models.JobOfferOwnerEmployer)
}

func (h *OfferHandler) createOffer(c *gin.Context, ownerType models.JobOfferOwnerType) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	var req dto.CreateJobOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	offer, err := h.offerService.Create(uid, ownerType, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, gin.H{"jobOffer": offer})
}

func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	offer, err := h.offerService.Update(uid, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"jobOffer": offer})
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	offer, err := h.offerService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"jobOffer": offer})
}

// ListActiveWorkerOffers is the public pool: approved, active worker
// service listings.
func (h *OfferHandler) ListActiveWorkerOffers(c *gin.Context) {
	h.listActive(c, models.JobOfferOwnerWorker)
}

func (h *OfferHandler) ListActiveEmployerOffers(c *gin.Context) {
	h.listActive(c, models.JobOfferOwnerEmployer)
}

func (h *OfferHandler) listActive(c *gin.Context, ownerType models.JobOfferOwnerType) {
	limit, offset := h.ParsePagination(c)

	offers, err := h.offerService.ListActive(ownerType, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"jobOffers": offers})
}

func (h *OfferHandler) ListWorkerOffersByOwner(c *gin.Context) {
	h.listByOwner(c, models.JobOfferOwnerWorker)
}

func (h *OfferHandler) ListEmployerOffersByOwner(c *gin.Context) {
	h.listByOwner(c, models.JobOfferOwnerEmployer)
}

func (h *OfferHandler) listByOwner(c *gin.Context, ownerType models.JobOfferOwnerType) {
	offers, err := h.offerService.ListOwn(c.Param("uid"), ownerType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"jobOffers": offers})
}

func (h *OfferHandler) CloseOffer(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	if err := h.offerService.Close(uid, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Job offer closed"})
}

func (h *OfferHandler) Apply(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	var req dto.ApplyToJobOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.offerService.Apply(uid, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, gin.H{"application": app})
}

func (h *OfferHandler) ListApplications(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	apps, err := h.offerService.ListApplications(uid, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"applications": apps})
}
