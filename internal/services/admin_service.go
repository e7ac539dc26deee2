package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/email"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/logger"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/repositories"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

type AdminService interface {
	ListUsers(filter *dto.AdminUserFilter) (*dto.PagedUsers, error)
	SetVerified(ctx context.Context, uid string, verified bool) (*models.User, error)
	SetOfferApproved(ctx context.Context, offerID string, approved bool) (*models.JobOffer, error)
}

type AdminServiceImpl struct {
	userRepo      repositories.UserRepository
	offerRepo     repositories.JobOfferRepository
	emailProvider email.Provider
}

func NewAdminService(
	userRepo repositories.UserRepository,
	offerRepo repositories.JobOfferRepository,
	emailProvider email.Provider,
) AdminService {
	return &AdminServiceImpl{
		userRepo:      userRepo,
		offerRepo:     offerRepo,
		emailProvider: emailProvider,
	}
}

func (s *AdminServiceImpl) ListUsers(filter *dto.AdminUserFilter) (*dto.PagedUsers, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		UserType:   models.UserType(filter.UserType),
		IsVerified: filter.IsVerified,
		Search:     filter.Search,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.PagedUsers{
		Users:    make([]dto.UserResponse, 0, len(users)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.ToUserResponse(&users[i]))
	}
	return resp, nil
}

// SetVerified flips the admin review flag. Verification also activates the
// account; users with an email on file get told.
func (s *AdminServiceImpl) SetVerified(ctx context.Context, uid string, verified bool) (*models.User, error) {
	user, err := s.userRepo.FindByFirebaseUID(uid)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.SetVerified(uid, verified); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.IsVerified = verified
	if verified {
		user.Status = models.UserStatusActive
	}

	logger.CtxInfo(ctx, "user verification updated", "firebase_uid", uid, "verified", verified)

	if verified && user.Email != "" {
		body := fmt.Sprintf("<p>Namaste %s,</p><p>Your HaatBazar Jobs account has been verified. You can now post, book and chat on the platform.</p>", user.DisplayName)
		if err := s.emailProvider.Send(user.Email, "Your account is verified", body); err != nil {
			logger.CtxWithError(ctx, "failed to send verification email", err, "firebase_uid", uid)
		}
	}
	return user, nil
}

func (s *AdminServiceImpl) SetOfferApproved(ctx context.Context, offerID string, approved bool) (*models.JobOffer, error) {
	offer, err := s.offerRepo.FindByID(offerID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobOfferNotFound) {
			return nil, apperrors.ErrJobOfferNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.offerRepo.SetApproved(offerID, approved); err != nil {
		return nil, apperrors.InternalError(err)
	}
	offer.IsApproved = approved

	logger.CtxInfo(ctx, "offer approval updated", "offer_id", offerID, "approved", approved)
	return offer, nil
}
