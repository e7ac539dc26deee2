package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/middleware"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	upload := rg.Group("/upload")
	upload.Use(middleware.AuthMiddleware())
	{
		upload.POST("/profile-photo", h.UploadProfilePhoto)
		upload.POST("/nid-photos", h.UploadNIDPhotos)
		upload.GET("", h.ListOwn)
		upload.DELETE("/:id", h.Delete)
	}
}

// UploadProfilePhoto accepts one image under the "file" form field.
func (h *UploadHandler) UploadProfilePhoto(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}

	upload, err := h.uploadService.SavePhoto(c.Request.Context(), uid, models.UploadKindProfilePhoto, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, gin.H{"upload": upload, "url": upload.URL})
}

// UploadNIDPhotos accepts up to both sides of the national identity card
// under the "files" form field.
func (h *UploadHandler) UploadNIDPhotos(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form"))
		return
	}
	files := form.File["files"]
	if len(files) == 0 || len(files) > 2 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Provide one or two NID photos"))
		return
	}

	uploads := make([]*models.Upload, 0, len(files))
	urls := make([]string, 0, len(files))
	for _, file := range files {
		upload, err := h.uploadService.SavePhoto(c.Request.Context(), uid, models.UploadKindNIDPhoto, file)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		uploads = append(uploads, upload)
		urls = append(urls, upload.URL)
	}

	h.Created(c, gin.H{"uploads": uploads, "urls": urls})
}

func (h *UploadHandler) ListOwn(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	uploads, err := h.uploadService.ListOwn(uid)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"uploads": uploads})
}

func (h *UploadHandler) Delete(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	if err := h.uploadService.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Upload deleted"})
}
