package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
)

var ErrOTPNotFound = errors.New("otp not found")

type OTPRepository interface {
	Create(code *models.OTPCode) error
	FindLatestByPhone(phone string) (*models.OTPCode, error)
	IncrementAttempts(id string) error
	MarkVerified(id string) error
	DeleteForPhone(phone string) error
	CleanExpired() error
}

type OTPRepositoryImpl struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &OTPRepositoryImpl{db: db}
}

func (r *OTPRepositoryImpl) Create(code *models.OTPCode) error {
	return r.db.Create(code).Error
}

func (r *OTPRepositoryImpl) FindLatestByPhone(phone string) (*models.OTPCode, error) {
	var code models.OTPCode
	err := r.db.Where("phone_number = ?", phone).
		Order("created_at DESC").First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOTPNotFound
		}
		return nil, err
	}
	return &code, nil
}

func (r *OTPRepositoryImpl) IncrementAttempts(id string) error {
	return r.db.Model(&models.OTPCode{}).Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
}

func (r *OTPRepositoryImpl) MarkVerified(id string) error {
	return r.db.Model(&models.OTPCode{}).Where("id = ?", id).
		Update("verified", true).Error
}

func (r *OTPRepositoryImpl) DeleteForPhone(phone string) error {
	return r.db.Where("phone_number = ?", phone).Delete(&models.OTPCode{}).Error
}

func (r *OTPRepositoryImpl) CleanExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.OTPCode{}).Error
}
