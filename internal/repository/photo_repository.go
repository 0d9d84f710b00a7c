package repository

import (
	"errors"
	"time"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository interface {
	Create(photo *models.Photos) error
	GetByID(id uint) (*models.Photos, error)
	GetByEvent(eventID uint) ([]models.Photos, error)
	// DeleteWithLikes removes the photo row and its likes; blob cleanup is
	// the caller's job.
	DeleteWithLikes(id uint) error

	HasLiked(photoID, userID uint) (bool, error)
	// ToggleLike flips the user's like and adjusts the denormalized
	// counter in the same transaction. Returns the new liked state and
	// like count.
	ToggleLike(photoID, userID uint) (bool, int, error)
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(photo *models.Photos) error {
	return r.db.Create(photo).Error
}

func (r *photoRepository) GetByID(id uint) (*models.Photos, error) {
	var photo models.Photos
	if err := r.db.First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) GetByEvent(eventID uint) ([]models.Photos, error) {
	var photos []models.Photos
	err := r.db.Where("event_id = ?", eventID).Order("uploaded_at desc").Find(&photos).Error
	return photos, err
}

func (r *photoRepository) DeleteWithLikes(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", id).Delete(&models.PhotoLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Photos{}, id).Error
	})
}

func (r *photoRepository) HasLiked(photoID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PhotoLike{}).
		Where("photo_id = ? AND user_id = ?", photoID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *photoRepository) ToggleLike(photoID, userID uint) (bool, int, error) {
	var liked bool
	var likes int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var photo models.Photos
		if err := tx.First(&photo, photoID).Error; err != nil {
			return err
		}

		var existing models.PhotoLike
		err := tx.Where("photo_id = ? AND user_id = ?", photoID, userID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			likes = photo.Likes - 1
			if likes < 0 {
				likes = 0
			}
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := models.PhotoLike{PhotoID: photoID, UserID: userID, LikedAt: time.Now()}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			likes = photo.Likes + 1
			liked = true
		default:
			return err
		}

		return tx.Model(&models.Photos{}).Where("id = ?", photoID).Update("likes", likes).Error
	})
	if err != nil {
		return false, 0, err
	}

	return liked, likes, nil
}
