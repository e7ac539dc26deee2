package handlers

import (
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/validator"
)

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	OfferHandler   *OfferHandler
	BookingHandler *BookingHandler
	ChatHandler    *ChatHandler
	UploadHandler  *UploadHandler
	AdminHandler   *AdminHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, sc.AuthService),
		ProfileHandler: NewProfileHandler(base, sc.ProfileService),
		OfferHandler:   NewOfferHandler(base, sc.OfferService),
		BookingHandler: NewBookingHandler(base, sc.BookingService),
		ChatHandler:    NewChatHandler(base, sc.ChatService),
		UploadHandler:  NewUploadHandler(base, sc.UploadService),
		AdminHandler:   NewAdminHandler(base, sc.AdminService, sc.BookingService),
	}
}
