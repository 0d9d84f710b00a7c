package repository

import (
	"github.com/campusconnect/campus-events-backend/internal/models"
	"gorm.io/gorm"
)

type DiscussionRepository interface {
	Create(discussion *models.Discussion) error
	GetByID(id uint) (*models.Discussion, error)
	GetByEvent(eventID uint) ([]models.Discussion, error)
	Update(discussion *models.Discussion) error
	// DeleteWithComments removes the discussion and its comments together.
	DeleteWithComments(id uint) error

	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetComments(discussionID uint) ([]models.Comment, error)
	DeleteComment(id uint) error
}

type discussionRepository struct {
	db *gorm.DB
}

func NewDiscussionRepository(db *gorm.DB) DiscussionRepository {
	return &discussionRepository{db: db}
}

func (r *discussionRepository) Create(discussion *models.Discussion) error {
	return r.db.Create(discussion).Error
}

func (r *discussionRepository) GetByID(id uint) (*models.Discussion, error) {
	var d models.Discussion
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *discussionRepository) GetByEvent(eventID uint) ([]models.Discussion, error) {
	var ds []models.Discussion
	err := r.db.Where("event_id = ?", eventID).Find(&ds).Error
	return ds, err
}

func (r *discussionRepository) Update(discussion *models.Discussion) error {
	return r.db.Save(discussion).Error
}

func (r *discussionRepository) DeleteWithComments(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("discussion_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Discussion{}, id).Error
	})
}

func (r *discussionRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *discussionRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var c models.Comment
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *discussionRepository) GetComments(discussionID uint) ([]models.Comment, error) {
	var cs []models.Comment
	err := r.db.Where("discussion_id = ?", discussionID).Order("created_at asc").Find(&cs).Error
	return cs, err
}

func (r *discussionRepository) DeleteComment(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
