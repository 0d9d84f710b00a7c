package repository

import (
	"github.com/campusconnect/campus-events-backend/internal/models"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	// Create relies on the unique index on registration_id; a duplicate
	// insert surfaces as gorm.ErrDuplicatedKey.
	Create(attendance *models.Attendance) error
	GetByRegistration(registrationID uint) (*models.Attendance, error)
	GetByEvent(eventID uint) ([]models.Attendance, error)
	CountByEvent(eventID uint) (int64, error)
	GetByRegistrations(registrationIDs []uint) ([]models.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(attendance *models.Attendance) error {
	return r.db.Create(attendance).Error
}

func (r *attendanceRepository) GetByRegistration(registrationID uint) (*models.Attendance, error) {
	var att models.Attendance
	err := r.db.Where("registration_id = ?", registrationID).First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) GetByEvent(eventID uint) ([]models.Attendance, error) {
	var atts []models.Attendance
	err := r.db.Where("event_id = ?", eventID).Find(&atts).Error
	return atts, err
}

func (r *attendanceRepository) CountByEvent(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

func (r *attendanceRepository) GetByRegistrations(registrationIDs []uint) ([]models.Attendance, error) {
	if len(registrationIDs) == 0 {
		return nil, nil
	}
	var atts []models.Attendance
	err := r.db.Where("registration_id IN ?", registrationIDs).Find(&atts).Error
	return atts, err
}
