package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/config"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/imageprocessor"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/repositories"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/storage"
)

type UploadService interface {
	SavePhoto(ctx context.Context, ownerUID string, kind models.UploadKind, file *multipart.FileHeader) (*models.Upload, error)
	ListOwn(ownerUID string) ([]models.Upload, error)
	Delete(ctx context.Context, ownerUID, uploadID string) error
}

type UploadServiceImpl struct {
	uploadRepo repositories.UploadRepository
	store      storage.Storage
	images     *imageprocessor.Processor
}

func NewUploadService(uploadRepo repositories.UploadRepository, store storage.Storage, images *imageprocessor.Processor) UploadService {
	return &UploadServiceImpl{uploadRepo: uploadRepo, store: store, images: images}
}

// SavePhoto validates size and content type against config, downscales the
// image to the bounds for its kind, writes it to storage under a per-user
// prefix, and records it.
func (s *UploadServiceImpl) SavePhoto(ctx context.Context, ownerUID string, kind models.UploadKind, file *multipart.FileHeader) (*models.Upload, error) {
	cfg := config.GetConfig()

	if file.Size > cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedType(contentType, cfg.Upload.AllowedTypes) {
		return nil, apperrors.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	var payload io.Reader = src
	size := file.Size
	// webp is stored as uploaded; the processor handles jpeg and png.
	if contentType == "image/jpeg" || contentType == "image/png" {
		bounds := imageprocessor.BoundsDocument
		if kind == models.UploadKindProfilePhoto {
			bounds = imageprocessor.BoundsProfilePhoto
		}
		fitted, err := s.images.Fit(src, bounds)
		if err != nil {
			// Claimed to be an image but does not decode as one.
			return nil, apperrors.ErrInvalidFileType
		}
		payload = bytes.NewReader(fitted)
		size = int64(len(fitted))
	}

	ext := filepath.Ext(file.Filename)
	path := fmt.Sprintf("%s/%s/%d-%s%s", ownerUID, kind, time.Now().Unix(), uuid.NewString()[:8], ext)

	if err := s.store.Save(ctx, path, payload, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	upload := &models.Upload{
		OwnerFirebaseUID: ownerUID,
		Kind:             kind,
		Path:             path,
		URL:              url,
		ContentType:      contentType,
		Size:             size,
	}
	if err := s.uploadRepo.Create(upload); err != nil {
		// Orphaned file, best effort removal.
		_ = s.store.Delete(ctx, path)
		return nil, apperrors.InternalError(err)
	}
	return upload, nil
}

func (s *UploadServiceImpl) ListOwn(ownerUID string) ([]models.Upload, error) {
	uploads, err := s.uploadRepo.FindByOwner(ownerUID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return uploads, nil
}

func (s *UploadServiceImpl) Delete(ctx context.Context, ownerUID, uploadID string) error {
	upload, err := s.uploadRepo.FindByID(uploadID)
	if err != nil {
		return apperrors.NewNotFoundError("Upload not found")
	}
	if upload.OwnerFirebaseUID != ownerUID {
		return apperrors.ErrForbidden
	}

	if err := s.store.Delete(ctx, upload.Path); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.uploadRepo.Delete(uploadID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func allowedType(contentType string, allowed []string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	for _, t := range allowed {
		if contentType == strings.ToLower(t) {
			return true
		}
	}
	return false
}
