package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	// ErrBookingConflict is returned when a guarded status update matches no
	// row: either the booking is gone or another caller changed it first.
	ErrBookingConflict = errors.New("booking status changed concurrently")
)

type BookingRepository interface {
	Create(booking *models.Booking) error
	FindByID(id string) (*models.Booking, error)
	FindByEmployer(uid string, status models.BookingStatus) ([]models.Booking, error)
	FindByWorker(uid string, status models.BookingStatus) ([]models.Booking, error)
	UpdateStatus(id string, from, to models.BookingStatus) error
	Delete(id string) error
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByEmployer(uid string, status models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	query := r.db.Where("employer_firebase_uid = ?", uid)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindByWorker(uid string, status models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	query := r.db.Where("worker_firebase_uid = ?", uid)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// UpdateStatus performs a guarded transition: the row is only updated while
// it still holds the expected `from` status, so two racing decisions cannot
// both land.
func (r *BookingRepositoryImpl) UpdateStatus(id string, from, to models.BookingStatus) error {
	result := r.db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var booking models.Booking
		if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
			return ErrBookingNotFound
		}
		return ErrBookingConflict
	}
	return nil
}

func (r *BookingRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Booking{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
