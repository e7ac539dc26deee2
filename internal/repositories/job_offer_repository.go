package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
)

var (
	ErrJobOfferNotFound    = errors.New("job offer not found")
	ErrApplicationExists   = errors.New("application already exists")
)

type JobOfferRepository interface {
	Create(offer *models.JobOffer) error
	Update(offer *models.JobOffer) error
	FindByID(id string) (*models.JobOffer, error)
	FindByOwner(uid string, ownerType models.JobOfferOwnerType) ([]models.JobOffer, error)
	FindActive(ownerType models.JobOfferOwnerType, limit, offset int) ([]models.JobOffer, error)
	SetApproved(id string, approved bool) error
	Close(id string) error
	CreateApplication(app *models.JobApplication) error
	FindApplications(offerID string) ([]models.JobApplication, error)
}

type JobOfferRepositoryImpl struct {
	db *gorm.DB
}

func NewJobOfferRepository(db *gorm.DB) JobOfferRepository {
	return &JobOfferRepositoryImpl{db: db}
}

func (r *JobOfferRepositoryImpl) Create(offer *models.JobOffer) error {
	return r.db.Create(offer).Error
}

func (r *JobOfferRepositoryImpl) Update(offer *models.JobOffer) error {
	result := r.db.Model(&models.JobOffer{}).Where("id = ?", offer.ID).
		Select("title", "description", "skills", "area", "district",
			"rate", "rate_type", "payment_type", "availability",
			"is_approved", "updated_at").
		Updates(offer)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobOfferNotFound
	}
	return nil
}

func (r *JobOfferRepositoryImpl) FindByID(id string) (*models.JobOffer, error) {
	var offer models.JobOffer
	err := r.db.First(&offer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *JobOfferRepositoryImpl) FindByOwner(uid string, ownerType models.JobOfferOwnerType) ([]models.JobOffer, error) {
	var offers []models.JobOffer
	err := r.db.Where("owner_firebase_uid = ? AND owner_type = ?", uid, ownerType).
		Order("created_at DESC").Find(&offers).Error
	return offers, err
}

// FindActive returns the public pool: admin-approved, still-active offers.
func (r *JobOfferRepositoryImpl) FindActive(ownerType models.JobOfferOwnerType, limit, offset int) ([]models.JobOffer, error) {
	var offers []models.JobOffer
	err := r.db.Where("owner_type = ? AND is_approved = ? AND status = ?",
		ownerType, true, models.JobOfferStatusActive).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&offers).Error
	return offers, err
}

func (r *JobOfferRepositoryImpl) SetApproved(id string, approved bool) error {
	result := r.db.Model(&models.JobOffer{}).Where("id = ?", id).
		Update("is_approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobOfferNotFound
	}
	return nil
}

func (r *JobOfferRepositoryImpl) Close(id string) error {
	result := r.db.Model(&models.JobOffer{}).Where("id = ?", id).
		Update("status", models.JobOfferStatusClosed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobOfferNotFound
	}
	return nil
}

func (r *JobOfferRepositoryImpl) CreateApplication(app *models.JobApplication) error {
	var existing models.JobApplication
	err := r.db.Where("job_offer_id = ? AND worker_firebase_uid = ?",
		app.JobOfferID, app.WorkerFirebaseUID).First(&existing).Error
	if err == nil {
		return ErrApplicationExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(app).Error
}

func (r *JobOfferRepositoryImpl) FindApplications(offerID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.Where("job_offer_id = ?", offerID).
		Order("created_at DESC").Find(&apps).Error
	return apps, err
}
