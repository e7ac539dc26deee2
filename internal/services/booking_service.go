package services

import (
	"context"
	"errors"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/logger"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/repositories"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

type BookingService interface {
	Create(ctx context.Context, employerUID string, req *dto.CreateBookingRequest) (*models.Booking, error)
	Get(uid, bookingID string) (*models.Booking, error)
	ListForEmployer(uid string, status models.BookingStatus) ([]models.Booking, error)
	ListForWorker(uid string, status models.BookingStatus) ([]models.Booking, error)
	Decide(ctx context.Context, workerUID, bookingID string, req *dto.UpdateBookingStatusRequest) (*models.Booking, error)
	AdminSetStatus(ctx context.Context, bookingID string, req *dto.AdminBookingStatusRequest) (*models.Booking, error)
	Delete(ctx context.Context, uid, bookingID string) error
}

type BookingServiceImpl struct {
	bookingRepo repositories.BookingRepository
	offerRepo   repositories.JobOfferRepository
	userRepo    repositories.UserRepository
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	offerRepo repositories.JobOfferRepository,
	userRepo repositories.UserRepository,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo: bookingRepo,
		offerRepo:   offerRepo,
		userRepo:    userRepo,
	}
}

// Create books a worker against one of their offers. Job title, start date
// and agreed rate are re-checked here even though the clients validate them
// first; the server never trusts the device.
func (s *BookingServiceImpl) Create(ctx context.Context, employerUID string, req *dto.CreateBookingRequest) (*models.Booking, error) {
	if req.JobTitle == "" {
		return nil, apperrors.ErrBookingMissingJobTitle
	}
	if req.StartDate == nil || req.StartDate.IsZero() {
		return nil, apperrors.ErrBookingMissingStartDate
	}
	if req.AgreedRate <= 0 {
		return nil, apperrors.ErrBookingMissingAgreedRate
	}

	offer, err := s.offerRepo.FindByID(req.WorkerJobOfferID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobOfferNotFound) {
			return nil, apperrors.ErrJobOfferNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if offer.OwnerFirebaseUID != req.WorkerFirebaseUID || offer.OwnerType != models.JobOfferOwnerWorker {
		return nil, apperrors.NewBadRequestError("Offer does not belong to this worker")
	}

	if _, err := s.userRepo.FindByFirebaseUID(req.WorkerFirebaseUID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	booking := &models.Booking{
		EmployerFirebaseUID: employerUID,
		WorkerFirebaseUID:   req.WorkerFirebaseUID,
		WorkerJobOfferID:    req.WorkerJobOfferID,
		JobTitle:            req.JobTitle,
		JobDescription:      req.JobDescription,
		StartDate:           *req.StartDate,
		EndDate:             req.EndDate,
		WorkDuration:        req.WorkDuration,
		AgreedRate:          req.AgreedRate,
		RateType:            models.RateType(req.RateType),
		TotalAmount:         req.TotalAmount,
		Area:                req.Area,
		District:            req.District,
		Notes:               req.Notes,
		PaymentMethod:       models.PaymentMethod(req.PaymentMethod),
		Status:              models.BookingStatusPending,
	}
	if booking.RateType == "" {
		booking.RateType = offer.RateType
	}
	if booking.Area == "" {
		booking.Area = offer.Area
	}
	if booking.District == "" {
		booking.District = offer.District
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "booking created",
		"booking_id", booking.ID,
		"employer", employerUID,
		"worker", req.WorkerFirebaseUID)
	return booking, nil
}

// Get returns a booking visible to the caller: either side of the booking
// can read it, nobody else.
func (s *BookingServiceImpl) Get(uid, bookingID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if booking.EmployerFirebaseUID != uid && booking.WorkerFirebaseUID != uid {
		return nil, apperrors.ErrForbidden
	}
	return booking, nil
}

func (s *BookingServiceImpl) ListForEmployer(uid string, status models.BookingStatus) ([]models.Booking, error) {
	if status != "" && !models.ValidBookingStatus(status) {
		return nil, apperrors.NewBadRequestError("Unknown booking status filter")
	}
	bookings, err := s.bookingRepo.FindByEmployer(uid, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

func (s *BookingServiceImpl) ListForWorker(uid string, status models.BookingStatus) ([]models.Booking, error) {
	if status != "" && !models.ValidBookingStatus(status) {
		return nil, apperrors.NewBadRequestError("Unknown booking status filter")
	}
	bookings, err := s.bookingRepo.FindByWorker(uid, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

// Decide applies the worker's accept or reject to a pending booking. Any
// other current status, or any other target status, is refused. The guarded
// repository update means a double-tap cannot apply twice.
func (s *BookingServiceImpl) Decide(ctx context.Context, workerUID, bookingID string, req *dto.UpdateBookingStatusRequest) (*models.Booking, error) {
	target := models.BookingStatus(req.Status)
	if !models.IsWorkerDecision(target) {
		return nil, apperrors.ErrInvalidBookingTransition
	}

	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if booking.WorkerFirebaseUID != workerUID {
		return nil, apperrors.ErrForbidden
	}
	if booking.Status != models.BookingStatusPending {
		return nil, apperrors.ErrInvalidBookingTransition
	}

	if err := s.bookingRepo.UpdateStatus(bookingID, models.BookingStatusPending, target); err != nil {
		switch {
		case errors.Is(err, repositories.ErrBookingConflict):
			return nil, apperrors.ErrInvalidBookingTransition
		case errors.Is(err, repositories.ErrBookingNotFound):
			return nil, apperrors.ErrBookingNotFound
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	booking.Status = target
	logger.CtxInfo(ctx, "booking decided", "booking_id", bookingID, "status", target)
	return booking, nil
}

// Delete withdraws a booking request. Only the employer who made it can
// delete, and only while the worker has not decided yet.
func (s *BookingServiceImpl) Delete(ctx context.Context, uid, bookingID string) error {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return apperrors.ErrBookingNotFound
		}
		return apperrors.InternalError(err)
	}
	if booking.EmployerFirebaseUID != uid {
		return apperrors.ErrForbidden
	}
	if booking.Status != models.BookingStatusPending {
		return apperrors.ErrInvalidBookingTransition
	}

	if err := s.bookingRepo.Delete(bookingID); err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return apperrors.ErrBookingNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "booking withdrawn", "booking_id", bookingID)
	return nil
}

// AdminSetStatus walks a booking through the rest of its lifecycle. The
// transition graph still applies; the admin cannot, say, complete a
// rejected booking.
func (s *BookingServiceImpl) AdminSetStatus(ctx context.Context, bookingID string, req *dto.AdminBookingStatusRequest) (*models.Booking, error) {
	target := models.BookingStatus(req.Status)

	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !models.CanTransition(booking.Status, target) {
		return nil, apperrors.ErrInvalidBookingTransition
	}

	if err := s.bookingRepo.UpdateStatus(bookingID, booking.Status, target); err != nil {
		switch {
		case errors.Is(err, repositories.ErrBookingConflict):
			return nil, apperrors.ErrInvalidBookingTransition
		case errors.Is(err, repositories.ErrBookingNotFound):
			return nil, apperrors.ErrBookingNotFound
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	booking.Status = target
	logger.CtxInfo(ctx, "booking status set", "booking_id", bookingID, "status", target)
	return booking, nil
}
