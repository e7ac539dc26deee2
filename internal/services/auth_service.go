package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/auth"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/config"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/logger"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/repositories"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/sms"
)

type AuthService interface {
	SendOTP(ctx context.Context, req *dto.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.AuthResponse, error)
	PhoneLogin(ctx context.Context, req *dto.PhoneLoginRequest) (*dto.AuthResponse, error)
	GetUser(uid string) (*models.User, error)
	SaveUser(ctx context.Context, req *dto.SaveUserRequest) (*models.User, error)
	CompleteProfile(uid string) error
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	otpRepo     repositories.OTPRepository
	smsProvider sms.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	otpRepo repositories.OTPRepository,
	smsProvider sms.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		smsProvider: smsProvider,
	}
}

// SendOTP generates a fresh code for the phone, replacing any outstanding
// one, and hands the plaintext to the SMS provider. Only the bcrypt hash is
// stored.
func (s *AuthServiceImpl) SendOTP(ctx context.Context, req *dto.SendOTPRequest) error {
	phone := auth.NormalizePhone(req.PhoneNumber)
	if !auth.ValidNepaliMobile(phone) {
		return apperrors.ErrInvalidPhone
	}

	cfg := config.GetConfig()
	code, err := auth.GenerateOTP(cfg.OTP.Length)
	if err != nil {
		return apperrors.InternalError(err)
	}
	hash, err := auth.HashPassword(code)
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Outstanding codes for the phone are invalidated when a new one is
	// requested.
	if err := s.otpRepo.DeleteForPhone(phone); err != nil {
		return apperrors.InternalError(err)
	}

	record := &models.OTPCode{
		PhoneNumber: phone,
		CodeHash:    hash,
		ExpiresAt:   time.Now().Add(time.Duration(cfg.OTP.TTLMinutes) * time.Minute),
	}
	if err := s.otpRepo.Create(record); err != nil {
		return apperrors.InternalError(err)
	}

	text := fmt.Sprintf("Your HaatBazar Jobs verification code is %s. Valid for %d minutes.", code, cfg.OTP.TTLMinutes)
	if err := s.smsProvider.Send(ctx, phone, text); err != nil {
		logger.CtxWithError(ctx, "failed to send otp sms", err, "phone", phone)
		return apperrors.InternalError(err)
	}
	return nil
}

// VerifyOTP checks the code and either logs in the existing account or
// creates a new one. New accounts need a userType and password in the same
// request.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.AuthResponse, error) {
	phone := auth.NormalizePhone(req.PhoneNumber)

	record, err := s.otpRepo.FindLatestByPhone(phone)
	if err != nil {
		if errors.Is(err, repositories.ErrOTPNotFound) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	if record.Attempts >= cfg.OTP.MaxAttempts {
		return nil, apperrors.ErrTooManyAttempts
	}
	if time.Now().After(record.ExpiresAt) {
		return nil, apperrors.ErrOTPExpired
	}

	if !auth.CheckPasswordHash(req.OTP, record.CodeHash) {
		if err := s.otpRepo.IncrementAttempts(record.ID); err != nil {
			logger.CtxWithError(ctx, "failed to count otp attempt", err)
		}
		return nil, apperrors.ErrInvalidOTP
	}

	if err := s.otpRepo.MarkVerified(record.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByPhone(phone)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		user, err = s.registerFromOTP(ctx, phone, req)
		if err != nil {
			return nil, err
		}
	}

	token, err := auth.GenerateToken(user.FirebaseUID, string(user.UserType))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}

func (s *AuthServiceImpl) registerFromOTP(ctx context.Context, phone string, req *dto.VerifyOTPRequest) (*models.User, error) {
	if req.UserType == "" {
		return nil, apperrors.ErrInvalidUserType
	}
	userType := models.UserType(req.UserType)
	if userType != models.UserTypeWorker && userType != models.UserTypeEmployer {
		return nil, apperrors.ErrInvalidUserType
	}
	if req.Password == "" {
		return nil, apperrors.ErrWeakPassword
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirebaseUID:  uuid.NewString(),
		UserType:     userType,
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Status:       models.UserStatusPending,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrPhoneAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "new account registered", "firebase_uid", user.FirebaseUID, "user_type", user.UserType)
	return user, nil
}

// PhoneLogin authenticates with phone and password. Incomplete profiles get
// a token anyway; the verification gate decides what they can do with it.
func (s *AuthServiceImpl) PhoneLogin(ctx context.Context, req *dto.PhoneLoginRequest) (*dto.AuthResponse, error) {
	phone := auth.NormalizePhone(req.PhoneNumber)

	user, err := s.userRepo.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	token, err := auth.GenerateToken(user.FirebaseUID, string(user.UserType))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "login", "firebase_uid", user.FirebaseUID)
	return &dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}

// SaveUser upserts the account-level signup fields keyed by firebaseUid.
// The user type is fixed at creation; later saves cannot flip a worker
// into an employer.
func (s *AuthServiceImpl) SaveUser(ctx context.Context, req *dto.SaveUserRequest) (*models.User, error) {
	userType := models.UserType(req.UserType)
	if userType != models.UserTypeWorker && userType != models.UserTypeEmployer {
		return nil, apperrors.ErrInvalidUserType
	}

	user, err := s.userRepo.FindByFirebaseUID(req.FirebaseUID)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		user = &models.User{
			FirebaseUID: req.FirebaseUID,
			UserType:    userType,
			DisplayName: req.DisplayName,
			Email:       req.Email,
			PhoneNumber: auth.NormalizePhone(req.PhoneNumber),
			Status:      models.UserStatusPending,
		}
		if err := s.userRepo.Create(user); err != nil {
			if errors.Is(err, repositories.ErrUserAlreadyExists) {
				return nil, apperrors.ErrPhoneAlreadyExists
			}
			return nil, apperrors.InternalError(err)
		}
		logger.CtxInfo(ctx, "account saved", "firebase_uid", user.FirebaseUID)
		return user, nil
	}

	user.DisplayName = req.DisplayName
	if req.Email != "" {
		user.Email = req.Email
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// CompleteProfile flags the account as done with registration. Admin
// verification is a separate, later step.
func (s *AuthServiceImpl) CompleteProfile(uid string) error {
	if err := s.userRepo.SetProfileComplete(uid); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) GetUser(uid string) (*models.User, error) {
	user, err := s.userRepo.FindByFirebaseUID(uid)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
