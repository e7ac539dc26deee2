package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/auth"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/config"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/handlers"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/logger"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/middleware"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models/chat"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/routes"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/validator"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/workers"

	"github.com/google/uuid"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	workers.NewOTPWorker(gormDB).Start(context.Background())

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer, err := services.NewServiceContainer(gormDB, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", "error", err)
	}

	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, gormDB, cfg)
	return ginRouter
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// Migrate creates the chat schema and auto-migrates every model.
func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE SCHEMA IF NOT EXISTS chat").Error; err != nil {
		return fmt.Errorf("failed to create chat schema: %w", err)
	}
	return db.AutoMigrate(
		&models.User{},
		&models.OTPCode{},
		&models.WorkerProfile{},
		&models.EmployerProfile{},
		&models.JobOffer{},
		&models.JobApplication{},
		&models.Booking{},
		&models.Upload{},
		&chat.Chat{},
		&chat.Message{},
	)
}

// seedFirstAdmin makes sure at least one admin account exists so the
// review panel is reachable on a fresh install.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminPhone := cfg.FirstAdminPhone
	adminPassword := cfg.FirstAdminPassword

	if adminPhone == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_PHONE or FIRST_ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}
	adminPhone = auth.NormalizePhone(adminPhone)

	var adminUser models.User
	result := db.Where("phone_number = ?", adminPhone).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "phone", adminPhone)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin.", "phone", adminPhone)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		FirebaseUID:     uuid.NewString(),
		UserType:        models.UserTypeAdmin,
		DisplayName:     "Administrator",
		PhoneNumber:     adminPhone,
		PasswordHash:    hashedPassword,
		ProfileComplete: true,
		IsVerified:      true,
		Status:          models.UserStatusActive,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "firebase_uid", newAdmin.FirebaseUID)
	return nil
}
