package repository

import (
	"github.com/campusconnect/campus-events-backend/internal/models"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *models.Report) error
	GetByID(id uint) (*models.Report, error)
	ExistsForContentByUser(contentType, contentID string, userID uint) (bool, error)
	GetAll(status string) ([]models.Report, error)
	Update(report *models.Report) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) ExistsForContentByUser(contentType, contentID string, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Report{}).
		Where("content_type = ? AND content_id = ? AND reported_by_user_id = ?", contentType, contentID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *reportRepository) GetAll(status string) ([]models.Report, error) {
	var reports []models.Report
	q := r.db.Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&reports).Error
	return reports, err
}

func (r *reportRepository) Update(report *models.Report) error {
	return r.db.Save(report).Error
}
