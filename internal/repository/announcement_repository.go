package repository

import (
	"github.com/campusconnect/campus-events-backend/internal/models"
	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	Create(announcement *models.Announcement) error
	GetByID(id uint) (*models.Announcement, error)
	GetGeneral(limit int) ([]models.Announcement, error)
	GetByEvent(eventID uint) ([]models.Announcement, error)
	GetByOrganizer(organizerID uint) ([]models.Announcement, error)
	GetAll() ([]models.Announcement, error)
	Delete(id uint) error
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

func (r *announcementRepository) GetByID(id uint) (*models.Announcement, error) {
	var a models.Announcement
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepository) GetGeneral(limit int) ([]models.Announcement, error) {
	var as []models.Announcement
	err := r.db.Where("event_id IS NULL").Order("created_at desc").Limit(limit).Find(&as).Error
	return as, err
}

func (r *announcementRepository) GetByEvent(eventID uint) ([]models.Announcement, error) {
	var as []models.Announcement
	err := r.db.Where("event_id = ?", eventID).Order("created_at desc").Find(&as).Error
	return as, err
}

func (r *announcementRepository) GetByOrganizer(organizerID uint) ([]models.Announcement, error) {
	var as []models.Announcement
	err := r.db.Where("organizer_id = ?", organizerID).Order("created_at desc").Find(&as).Error
	return as, err
}

func (r *announcementRepository) GetAll() ([]models.Announcement, error) {
	var as []models.Announcement
	err := r.db.Order("created_at desc").Find(&as).Error
	return as, err
}

func (r *announcementRepository) Delete(id uint) error {
	return r.db.Delete(&models.Announcement{}, id).Error
}
