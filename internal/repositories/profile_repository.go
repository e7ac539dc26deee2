package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	SaveWorkerProfile(profile *models.WorkerProfile) error
	FindWorkerProfile(uid string) (*models.WorkerProfile, error)
	ListWorkerProfiles(limit, offset int) ([]models.WorkerProfile, error)

	SaveEmployerProfile(profile *models.EmployerProfile) error
	FindEmployerProfile(uid string) (*models.EmployerProfile, error)
	ListEmployerProfiles(limit, offset int) ([]models.EmployerProfile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// SaveWorkerProfile upserts on firebase uid: profile-save is re-run on each
// registration step, so the same call both creates and updates.
func (r *ProfileRepositoryImpl) SaveWorkerProfile(profile *models.WorkerProfile) error {
	var existing models.WorkerProfile
	err := r.db.Where("firebase_uid = ?", profile.FirebaseUID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) FindWorkerProfile(uid string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := r.db.Where("firebase_uid = ?", uid).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ListWorkerProfiles returns the browsable worker pool, verified accounts
// first.
func (r *ProfileRepositoryImpl) ListWorkerProfiles(limit, offset int) ([]models.WorkerProfile, error) {
	var profiles []models.WorkerProfile
	err := r.db.
		Joins("JOIN users ON users.firebase_uid = worker_profiles.firebase_uid").
		Order("users.is_verified DESC, worker_profiles.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) SaveEmployerProfile(profile *models.EmployerProfile) error {
	var existing models.EmployerProfile
	err := r.db.Where("firebase_uid = ?", profile.FirebaseUID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) FindEmployerProfile(uid string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.Where("firebase_uid = ?", uid).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) ListEmployerProfiles(limit, offset int) ([]models.EmployerProfile, error) {
	var profiles []models.EmployerProfile
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, err
}
