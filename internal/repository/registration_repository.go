package repository

import (
	"errors"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"gorm.io/gorm"
)

// ErrEventAtCapacity is returned when the capacity re-check inside the
// insert transaction fails.
var ErrEventAtCapacity = errors.New("event at capacity")

type RegistrationRepository interface {
	GetByID(id uint) (*models.Registration, error)
	GetByCode(code string) (*models.Registration, error)
	GetByEventAndUser(eventID, userID uint) (*models.Registration, error)
	GetByEvent(eventID uint) ([]models.Registration, error)
	GetByEvents(eventIDs []uint) ([]models.Registration, error)
	GetByUser(userID uint) ([]models.Registration, error)
	GetByTeam(teamID string) ([]models.Registration, error)
	CountByEvent(eventID uint) (int64, error)
	CodeExists(code string) (bool, error)
	// CreateGroup inserts all rows atomically, re-checking the event's
	// capacity inside the same transaction. Solo registration is a group
	// of one.
	CreateGroup(registrations []*models.Registration, maxParticipants int) error
	Delete(id uint) error
	DeleteByTeam(teamID string) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) GetByID(id uint) (*models.Registration, error) {
	var reg models.Registration
	if err := r.db.First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) GetByCode(code string) (*models.Registration, error) {
	var reg models.Registration
	if err := r.db.Where("code = ?", code).First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) GetByEventAndUser(eventID, userID uint) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) GetByEvent(eventID uint) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.Where("event_id = ?", eventID).Find(&regs).Error
	return regs, err
}

func (r *registrationRepository) GetByEvents(eventIDs []uint) ([]models.Registration, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}
	var regs []models.Registration
	err := r.db.Where("event_id IN ?", eventIDs).Find(&regs).Error
	return regs, err
}

func (r *registrationRepository) GetByUser(userID uint) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.Where("user_id = ?", userID).Find(&regs).Error
	return regs, err
}

func (r *registrationRepository) GetByTeam(teamID string) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.Where("team_id = ?", teamID).Find(&regs).Error
	return regs, err
}

func (r *registrationRepository) CountByEvent(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

func (r *registrationRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *registrationRepository) CreateGroup(registrations []*models.Registration, maxParticipants int) error {
	if len(registrations) == 0 {
		return nil
	}
	eventID := registrations[0].EventID

	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Registration{}).Where("event_id = ?", eventID).Count(&count).Error; err != nil {
			return err
		}
		if int(count)+len(registrations) > maxParticipants {
			return ErrEventAtCapacity
		}

		for _, reg := range registrations {
			if err := tx.Create(reg).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *registrationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Registration{}, id).Error
}

func (r *registrationRepository) DeleteByTeam(teamID string) error {
	return r.db.Where("team_id = ?", teamID).Delete(&models.Registration{}).Error
}
