package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/repository"
	"github.com/campusconnect/campus-events-backend/pkg/storage"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

const uploadURLTTL = 15 * time.Minute

type PhotoService struct {
	photoRepo repository.PhotoRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	storage   storage.Storage
	logger    *zap.Logger
}

func NewPhotoService(photoRepo repository.PhotoRepository, eventRepo repository.EventRepository, userRepo repository.UserRepository, store storage.Storage, logger *zap.Logger) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		storage:   store,
		logger:    logger,
	}
}

// GenerateUploadURL hands the client a presigned URL to PUT the bytes to;
// the server never touches the file itself.
func (s *PhotoService) GenerateUploadURL(contentType string) (*models.UploadURLResponse, error) {
	key := fmt.Sprintf("photos/%d-%s", time.Now().UnixNano(), utils.GenerateRandomString(12))

	url, err := s.storage.PresignUpload(context.Background(), key, contentType, uploadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &models.UploadURLResponse{UploadURL: url, StorageKey: key}, nil
}

func (s *PhotoService) SavePhoto(userID uint, req models.CreatePhotoRequest) (*models.Photos, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperror.Unauthorized("Unknown user")
	}

	if _, err := s.eventRepo.GetByID(req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Event not found")
		}
		return nil, fmt.Errorf("load event: %w", err)
	}

	photo := &models.Photos{
		EventID:          req.EventID,
		UploadedByUserID: userID,
		UploadedByName:   user.Name,
		StorageKey:       req.StorageKey,
		Caption:          req.Caption,
		UploadedAt:       time.Now(),
	}
	if err := s.photoRepo.Create(photo); err != nil {
		return nil, fmt.Errorf("save photo: %w", err)
	}

	s.logger.Info("photo uploaded",
		zap.Uint("event_id", req.EventID),
		zap.Uint("photo_id", photo.ID),
	)

	return photo, nil
}

func (s *PhotoService) GetEventPhotos(eventID uint) ([]models.PhotoResponse, error) {
	photos, err := s.photoRepo.GetByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("load photos: %w", err)
	}

	responses := make([]models.PhotoResponse, len(photos))
	for i, p := range photos {
		responses[i] = models.PhotoResponse{
			ID:               p.ID,
			EventID:          p.EventID,
			UploadedByUserID: p.UploadedByUserID,
			UploadedByName:   p.UploadedByName,
			URL:              s.storage.PublicURL(p.StorageKey),
			Caption:          p.Caption,
			Likes:            p.Likes,
			UploadedAt:       p.UploadedAt,
		}
	}

	return responses, nil
}

func (s *PhotoService) ToggleLike(photoID, userID uint) (*models.ToggleLikeResponse, error) {
	liked, likes, err := s.photoRepo.ToggleLike(photoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Photo not found")
		}
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	return &models.ToggleLikeResponse{Liked: liked, Likes: likes}, nil
}

func (s *PhotoService) HasLiked(photoID, userID uint) (bool, error) {
	return s.photoRepo.HasLiked(photoID, userID)
}

func (s *PhotoService) Delete(photoID, callerID uint) error {
	photo, err := s.photoRepo.GetByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Photo not found")
		}
		return fmt.Errorf("load photo: %w", err)
	}

	if photo.UploadedByUserID != callerID {
		user, err := s.userRepo.GetByID(callerID)
		if err != nil || user.Role != models.RoleOrganizer {
			return apperror.Unauthorized("You can only delete your own photos")
		}
	}

	if err := s.photoRepo.DeleteWithLikes(photoID); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}

	if err := s.storage.Delete(context.Background(), photo.StorageKey); err != nil {
		s.logger.Warn("failed to delete photo blob", zap.String("key", photo.StorageKey), zap.Error(err))
	}

	return nil
}
