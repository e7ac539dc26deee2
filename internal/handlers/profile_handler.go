package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/middleware"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	worker := rg.Group("/worker-profile")
	worker.Use(middleware.AuthMiddleware())
	{
		worker.POST("/save", h.SaveWorkerProfile)
		worker.GET("", h.ListWorkerProfiles)
		worker.GET("/:uid", h.GetWorkerProfile)
	}

	employer := rg.Group("/employer-profile")
	employer.Use(middleware.AuthMiddleware())
	{
		employer.POST("/save", h.SaveEmployerProfile)
		employer.GET("", h.ListEmployerProfiles)
		employer.GET("/:uid", h.GetEmployerProfile)
	}
}

// SaveWorkerProfile upserts the caller's worker registration data. Saving
// marks the account profile-complete and queues it for admin review.
func (h *ProfileHandler) SaveWorkerProfile(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	var req dto.SaveWorkerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.SaveWorkerProfile(uid, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"workerProfile": profile})
}

func (h *ProfileHandler) GetWorkerProfile(c *gin.Context) {
	profile, err := h.profileService.GetWorkerProfile(c.Param("uid"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"workerProfile": profile})
}

// ListWorkerProfiles returns the browsable worker pool, verified workers
// first.
func (h *ProfileHandler) ListWorkerProfiles(c *gin.Context) {
	limit, offset := h.ParsePagination(c)

	profiles, err := h.profileService.ListWorkerProfiles(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"workerProfiles": profiles})
}

func (h *ProfileHandler) SaveEmployerProfile(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	var req dto.SaveEmployerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.SaveEmployerProfile(uid, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"employerProfile": profile})
}

func (h *ProfileHandler) GetEmployerProfile(c *gin.Context) {
	profile, err := h.profileService.GetEmployerProfile(c.Param("uid"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"employerProfile": profile})
}

func (h *ProfileHandler) ListEmployerProfiles(c *gin.Context) {
	limit, offset := h.ParsePagination(c)

	profiles, err := h.profileService.ListEmployerProfiles(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"employerProfiles": profiles})
}
