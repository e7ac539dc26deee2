package services

import (
	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/config"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/email"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/imageprocessor"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/repositories"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/sms"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/storage"
)

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
	OfferService   OfferService
	BookingService BookingService
	ChatService    ChatService
	UploadService  UploadService
	AdminService   AdminService
}

// NewServiceContainer wires repositories, providers and services together.
func NewServiceContainer(db *gorm.DB, cfg *config.Config) (*ServiceContainer, error) {
	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	offerRepo := repositories.NewJobOfferRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	uploadRepo := repositories.NewUploadRepository(db)

	smsProvider := sms.NewProvider(cfg)
	emailProvider := email.NewProvider(cfg)

	store, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	images := imageprocessor.NewProcessor(85)

	return &ServiceContainer{
		AuthService:    NewAuthService(userRepo, otpRepo, smsProvider),
		ProfileService: NewProfileService(userRepo, profileRepo),
		OfferService:   NewOfferService(offerRepo),
		BookingService: NewBookingService(bookingRepo, offerRepo, userRepo),
		ChatService:    NewChatService(chatRepo, userRepo),
		UploadService:  NewUploadService(uploadRepo, store, images),
		AdminService:   NewAdminService(userRepo, offerRepo, emailProvider),
	}, nil
}
