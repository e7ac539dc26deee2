package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByFirebaseUID(uid string) (*models.User, error)
	FindByPhone(phone string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	SetProfileComplete(uid string) error
	SetVerified(uid string, verified bool) error
	Delete(uid string) error
	FindWithFilter(criteria UserFilter) ([]models.User, int64, error)
}

type UserFilter struct {
	UserType   models.UserType
	IsVerified *bool
	Search     string
	Page       int
	PageSize   int
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByFirebaseUID(uid string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("WorkerProfile").Preload("EmployerProfile").
		First(&user, "firebase_uid = ?", uid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "phone_number = ?", phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	query := r.db.Where("firebase_uid = ?", user.FirebaseUID)
	if user.PhoneNumber != "" {
		query = query.Or("phone_number = ?", user.PhoneNumber)
	}
	if err := query.First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(&models.User{}).Where("firebase_uid = ?", user.FirebaseUID).
		Updates(map[string]interface{}{
			"display_name":     user.DisplayName,
			"email":            user.Email,
			"user_type":        user.UserType,
			"profile_complete": user.ProfileComplete,
			"status":           user.Status,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetProfileComplete(uid string) error {
	result := r.db.Model(&models.User{}).Where("firebase_uid = ?", uid).
		Updates(map[string]interface{}{
			"profile_complete": true,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetVerified(uid string, verified bool) error {
	updates := map[string]interface{}{
		"is_verified": verified,
		"updated_at":  time.Now(),
	}
	if verified {
		updates["status"] = models.UserStatusActive
	}
	result := r.db.Model(&models.User{}).Where("firebase_uid = ?", uid).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(uid string) error {
	result := r.db.Where("firebase_uid = ?", uid).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindWithFilter(criteria UserFilter) ([]models.User, int64, error) {
	var users []models.User
	query := r.db.Model(&models.User{})

	if criteria.UserType != "" {
		query = query.Where("user_type = ?", criteria.UserType)
	}
	if criteria.IsVerified != nil {
		query = query.Where("is_verified = ?", *criteria.IsVerified)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("display_name ILIKE ? OR phone_number ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	if limit <= 0 {
		limit = 20
	}
	page := criteria.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	err := query.Preload("WorkerProfile").Preload("EmployerProfile").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error

	return users, total, err
}
