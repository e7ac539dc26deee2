package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/repositories"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

type ProfileService interface {
	SaveWorkerProfile(uid string, req *dto.SaveWorkerProfileRequest) (*models.WorkerProfile, error)
	SaveEmployerProfile(uid string, req *dto.SaveEmployerProfileRequest) (*models.EmployerProfile, error)
	GetProfile(uid string) (*dto.ProfileResponse, error)
	GetWorkerProfile(uid string) (*models.WorkerProfile, error)
	GetEmployerProfile(uid string) (*models.EmployerProfile, error)
	ListWorkerProfiles(limit, offset int) ([]models.WorkerProfile, error)
	ListEmployerProfiles(limit, offset int) ([]models.EmployerProfile, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo, profileRepo: profileRepo}
}

func toJSONB(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

// SaveWorkerProfile upserts the worker's registration data and marks the
// account profile-complete. Admin verification stays untouched: completing
// the profile only queues the account for review.
func (s *ProfileServiceImpl) SaveWorkerProfile(uid string, req *dto.SaveWorkerProfileRequest) (*models.WorkerProfile, error) {
	user, err := s.userRepo.FindByFirebaseUID(uid)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if user.UserType != models.UserTypeWorker {
		return nil, apperrors.ErrForbidden
	}

	profile := &models.WorkerProfile{
		FirebaseUID:  uid,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Skills:       toJSONB(req.Skills),
		Area:         req.Area,
		District:     req.District,
		Rate:         req.Rate,
		RateType:     models.RateType(req.RateType),
		Availability: req.Availability,
		Experience:   req.Experience,

		ProfilePhotoURL: req.ProfilePhotoURL,
		NIDPhotoURLs:    toJSONB(req.NIDPhotoURLs),
	}
	if profile.PhoneNumber == "" {
		profile.PhoneNumber = user.PhoneNumber
	}

	if err := s.profileRepo.SaveWorkerProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.userRepo.SetProfileComplete(uid); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) SaveEmployerProfile(uid string, req *dto.SaveEmployerProfileRequest) (*models.EmployerProfile, error) {
	user, err := s.userRepo.FindByFirebaseUID(uid)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if user.UserType != models.UserTypeEmployer {
		return nil, apperrors.ErrForbidden
	}

	profile := &models.EmployerProfile{
		FirebaseUID: uid,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		CompanyName: req.CompanyName,
		Area:        req.Area,
		District:    req.District,
		Description: req.Description,

		ProfilePhotoURL: req.ProfilePhotoURL,
		NIDPhotoURLs:    toJSONB(req.NIDPhotoURLs),
	}
	if profile.PhoneNumber == "" {
		profile.PhoneNumber = user.PhoneNumber
	}

	if err := s.profileRepo.SaveEmployerProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.userRepo.SetProfileComplete(uid); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// GetProfile returns the account with whichever profile side it carries.
// A user without a saved profile still resolves; the profile slot is nil
// and profileComplete tells the client to route into registration.
func (s *ProfileServiceImpl) GetProfile(uid string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByFirebaseUID(uid)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ProfileResponse{User: dto.ToUserResponse(user)}
	if user.WorkerProfile != nil {
		resp.WorkerProfile = user.WorkerProfile
	}
	if user.EmployerProfile != nil {
		resp.EmployerProfile = user.EmployerProfile
	}
	return resp, nil
}

func (s *ProfileServiceImpl) GetWorkerProfile(uid string) (*models.WorkerProfile, error) {
	profile, err := s.profileRepo.FindWorkerProfile(uid)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetEmployerProfile(uid string) (*models.EmployerProfile, error) {
	profile, err := s.profileRepo.FindEmployerProfile(uid)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) ListWorkerProfiles(limit, offset int) ([]models.WorkerProfile, error) {
	profiles, err := s.profileRepo.ListWorkerProfiles(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profiles, nil
}

func (s *ProfileServiceImpl) ListEmployerProfiles(limit, offset int) ([]models.EmployerProfile, error) {
	profiles, err := s.profileRepo.ListEmployerProfiles(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profiles, nil
}
