package routes

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/config"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/handlers"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/middleware"
)

// RegisterRoutes mounts the full API surface under /api plus the static
// file route local storage serves uploads from.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, db *gorm.DB, cfg *config.Config) {
	// Verified-accounts-only gate shared by the mutating marketplace routes.
	gate := middleware.RequireVerified(db)

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.OfferHandler.RegisterRoutes(api, gate)
		appHandlers.BookingHandler.RegisterRoutes(api, gate)
		appHandlers.ChatHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
	}

	basePath := cfg.Storage.BasePath
	if basePath == "" {
		basePath = "./uploads"
	}
	// Uploads are served from the same prefix LocalStorage builds URLs
	// with, otherwise every stored URL would 404. An absolute base URL
	// (a CDN in front) is served remotely, not from this process.
	mount := cfg.Storage.BaseURL
	if !strings.HasPrefix(mount, "/") {
		mount = ""
	}
	if mount != "" {
		ginRouter.Static(mount, basePath)
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "status": "ok"})
	})
}
