package services

import (
	"errors"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/repositories"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

type OfferService interface {
	Create(ownerUID string, ownerType models.JobOfferOwnerType, req *dto.CreateJobOfferRequest) (*models.JobOffer, error)
	Update(ownerUID, offerID string, req *dto.UpdateJobOfferRequest) (*models.JobOffer, error)
	Get(offerID string) (*models.JobOffer, error)
	ListOwn(ownerUID string, ownerType models.JobOfferOwnerType) ([]models.JobOffer, error)
	ListActive(ownerType models.JobOfferOwnerType, limit, offset int) ([]models.JobOffer, error)
	Close(ownerUID, offerID string) error
	Apply(workerUID, offerID string, req *dto.ApplyToJobOfferRequest) (*models.JobApplication, error)
	ListApplications(ownerUID, offerID string) ([]models.JobApplication, error)
}

type OfferServiceImpl struct {
	offerRepo repositories.JobOfferRepository
}

func NewOfferService(offerRepo repositories.JobOfferRepository) OfferService {
	return &OfferServiceImpl{offerRepo: offerRepo}
}

func (s *OfferServiceImpl) Create(ownerUID string, ownerType models.JobOfferOwnerType, req *dto.CreateJobOfferRequest) (*models.JobOffer, error) {
	offer := &models.JobOffer{
		OwnerFirebaseUID: ownerUID,
		OwnerType:        ownerType,
		Title:            req.Title,
		Description:      req.Description,
		Skills:           toJSONB(req.Skills),
		Area:             req.Area,
		District:         req.District,
		Rate:             req.Rate,
		RateType:         models.RateType(req.RateType),
		PaymentType:      models.PaymentMethod(req.PaymentType),
		Availability:     req.Availability,
		Status:           models.JobOfferStatusActive,
	}
	if err := s.offerRepo.Create(offer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return offer, nil
}

func (s *OfferServiceImpl) Update(ownerUID, offerID string, req *dto.UpdateJobOfferRequest) (*models.JobOffer, error) {
	offer, err := s.findOwned(ownerUID, offerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.Skills != nil {
		offer.Skills = toJSONB(*req.Skills)
	}
	if req.Area != nil {
		offer.Area = *req.Area
	}
	if req.District != nil {
		offer.District = *req.District
	}
	if req.Rate != nil {
		offer.Rate = *req.Rate
	}
	if req.RateType != nil {
		offer.RateType = models.RateType(*req.RateType)
	}
	if req.PaymentType != nil {
		offer.PaymentType = models.PaymentMethod(*req.PaymentType)
	}
	if req.Availability != nil {
		offer.Availability = *req.Availability
	}

	// Edits drop the offer back out of the approved pool for re-review.
	offer.IsApproved = false

	if err := s.offerRepo.Update(offer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return offer, nil
}

func (s *OfferServiceImpl) Get(offerID string) (*models.JobOffer, error) {
	offer, err := s.offerRepo.FindByID(offerID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobOfferNotFound) {
			return nil, apperrors.ErrJobOfferNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return offer, nil
}

func (s *OfferServiceImpl) ListOwn(ownerUID string, ownerType models.JobOfferOwnerType) ([]models.JobOffer, error) {
	offers, err := s.offerRepo.FindByOwner(ownerUID, ownerType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return offers, nil
}

func (s *OfferServiceImpl) ListActive(ownerType models.JobOfferOwnerType, limit, offset int) ([]models.JobOffer, error) {
	offers, err := s.offerRepo.FindActive(ownerType, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return offers, nil
}

func (s *OfferServiceImpl) Close(ownerUID, offerID string) error {
	if _, err := s.findOwned(ownerUID, offerID); err != nil {
		return err
	}
	if err := s.offerRepo.Close(offerID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *OfferServiceImpl) Apply(workerUID, offerID string, req *dto.ApplyToJobOfferRequest) (*models.JobApplication, error) {
	offer, err := s.Get(offerID)
	if err != nil {
		return nil, err
	}
	if offer.OwnerType != models.JobOfferOwnerEmployer {
		return nil, apperrors.NewBadRequestError("Applications are for employer job postings only")
	}
	if offer.Status != models.JobOfferStatusActive || !offer.IsApproved {
		return nil, apperrors.ErrJobOfferNotFound
	}

	app := &models.JobApplication{
		JobOfferID:        offerID,
		WorkerFirebaseUID: workerUID,
		Message:           req.Message,
	}
	if err := s.offerRepo.CreateApplication(app); err != nil {
		if errors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrApplicationAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *OfferServiceImpl) ListApplications(ownerUID, offerID string) ([]models.JobApplication, error) {
	if _, err := s.findOwned(ownerUID, offerID); err != nil {
		return nil, err
	}
	apps, err := s.offerRepo.FindApplications(offerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

func (s *OfferServiceImpl) findOwned(ownerUID, offerID string) (*models.JobOffer, error) {
	offer, err := s.Get(offerID)
	if err != nil {
		return nil, err
	}
	if offer.OwnerFirebaseUID != ownerUID {
		return nil, apperrors.ErrForbidden
	}
	return offer, nil
}
