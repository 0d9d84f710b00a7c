package repository

import (
	"github.com/campusconnect/campus-events-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	GetAll() ([]models.Event, error)
	GetByOrganizer(organizerID uint) ([]models.Event, error)
	Update(event *models.Event) error
	// DeleteCascade removes the event and everything scoped to it in one
	// transaction, and returns the blob keys of deleted photos so the
	// caller can clean up storage afterwards.
	DeleteCascade(id uint) ([]string, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("date asc, time asc").Find(&events).Error
	return events, err
}

func (r *eventRepository) GetByOrganizer(organizerID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("organizer_id = ?", organizerID).Find(&events).Error
	return events, err
}

func (r *eventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) DeleteCascade(id uint) ([]string, error) {
	var storageKeys []string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var photos []models.Photos
		if err := tx.Where("event_id = ?", id).Find(&photos).Error; err != nil {
			return err
		}
		for _, p := range photos {
			storageKeys = append(storageKeys, p.StorageKey)
		}

		var photoIDs []uint
		for _, p := range photos {
			photoIDs = append(photoIDs, p.ID)
		}
		if len(photoIDs) > 0 {
			if err := tx.Where("photo_id IN ?", photoIDs).Delete(&models.PhotoLike{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Photos{}).Error; err != nil {
			return err
		}

		var discussionIDs []uint
		if err := tx.Model(&models.Discussion{}).Where("event_id = ?", id).Pluck("id", &discussionIDs).Error; err != nil {
			return err
		}
		if len(discussionIDs) > 0 {
			if err := tx.Where("discussion_id IN ?", discussionIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Discussion{}).Error; err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&models.Announcement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Registration{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Event{}, id).Error
	})
	if err != nil {
		return nil, err
	}

	return storageKeys, nil
}
