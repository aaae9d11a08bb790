package services

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"pawmatch_backend/internal/config"
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/services/dto"
	"pawmatch_backend/internal/storage"
	"pawmatch_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UploadService interface {
	Presign(ctx context.Context, userID string, req *dto.PresignUploadRequest) (*dto.PresignUploadResponse, error)
	Complete(ctx context.Context, userID, uploadID string) (*dto.UploadResponse, error)
	ListByUser(userID string) ([]*dto.UploadResponse, error)
	Delete(ctx context.Context, userID, uploadID string) error
}

type UploadServiceImpl struct {
	uploadRepo repositories.UploadRepository
	store      storage.Storage
}

func NewUploadService(uploadRepo repositories.UploadRepository, store storage.Storage) UploadService {
	return &UploadServiceImpl{
		uploadRepo: uploadRepo,
		store:      store,
	}
}

// Presign validates the declared file against the upload limits, issues a
// temporary PUT URL for direct upload to object storage, and records the
// upload as pending until the client confirms it.
func (s *UploadServiceImpl) Presign(ctx context.Context, userID string, req *dto.PresignUploadRequest) (*dto.PresignUploadResponse, error) {
	cfg := config.GetConfig()

	if req.Size > cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !isAllowedType(req.ContentType, cfg.Upload.AllowedTypes) {
		return nil, apperrors.ErrInvalidFileType
	}

	ext := strings.ToLower(filepath.Ext(req.FileName))
	path := fmt.Sprintf("uploads/%s/%s%s", userID, uuid.NewString(), ext)

	expiry := time.Duration(cfg.Upload.URLExpiry) * time.Minute
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	presignedURL, err := s.store.SignedUploadURL(ctx, path, req.ContentType, expiry)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage",
			"Failed to create upload URL", http.StatusBadGateway)
	}

	publicURL, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	upload := &models.Upload{
		UserID:          userID,
		OriginalName:    req.FileName,
		Path:            path,
		MimeType:        req.ContentType,
		Size:            req.Size,
		Status:          models.UploadStatusPending,
		URL:             publicURL,
		StorageProvider: cfg.Storage.Type,
	}
	if err := s.uploadRepo.Create(upload); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PresignUploadResponse{
		UploadID:     upload.ID,
		PresignedURL: presignedURL,
		PublicURL:    publicURL,
		FileName:     req.FileName,
	}, nil
}

// Complete confirms that the client finished the direct upload. The object
// must actually exist in storage before the row flips to uploaded.
func (s *UploadServiceImpl) Complete(ctx context.Context, userID, uploadID string) (*dto.UploadResponse, error) {
	upload, err := s.findOwned(userID, uploadID)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.Exists(ctx, upload.Path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage",
			"Failed to verify uploaded file", http.StatusBadGateway)
	}
	if !exists {
		return nil, apperrors.ErrInvalidOperation("upload", "File has not been uploaded yet")
	}

	if err := s.uploadRepo.UpdateStatus(upload.ID, models.UploadStatusUploaded); err != nil {
		return nil, apperrors.InternalError(err)
	}
	upload.Status = models.UploadStatusUploaded

	return toUploadResponse(upload), nil
}

func (s *UploadServiceImpl) ListByUser(userID string) ([]*dto.UploadResponse, error) {
	uploads, err := s.uploadRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]*dto.UploadResponse, 0, len(uploads))
	for i := range uploads {
		resp = append(resp, toUploadResponse(&uploads[i]))
	}
	return resp, nil
}

// Delete removes both the stored object and the tracking row.
func (s *UploadServiceImpl) Delete(ctx context.Context, userID, uploadID string) error {
	upload, err := s.findOwned(userID, uploadID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, upload.Path); err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage",
			"Failed to delete stored file", http.StatusBadGateway)
	}

	if err := s.uploadRepo.Delete(upload.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UploadServiceImpl) findOwned(userID, uploadID string) (*models.Upload, error) {
	upload, err := s.uploadRepo.FindByID(uploadID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUploadNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if upload.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return upload, nil
}

func isAllowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

func toUploadResponse(u *models.Upload) *dto.UploadResponse {
	return &dto.UploadResponse{
		ID:           u.ID,
		OriginalName: u.OriginalName,
		URL:          u.URL,
		MimeType:     u.MimeType,
		Size:         u.Size,
		Status:       string(u.Status),
	}
}
