package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
)

type mockAnnouncementRepo struct {
	createFn         func(announcement *models.Announcement) error
	getByIDFn        func(id uint) (*models.Announcement, error)
	getGeneralFn     func(limit int) ([]models.Announcement, error)
	getByEventFn     func(eventID uint) ([]models.Announcement, error)
	getByOrganizerFn func(organizerID uint) ([]models.Announcement, error)
	getAllFn         func() ([]models.Announcement, error)
	deleteFn         func(id uint) error
}

func (m *mockAnnouncementRepo) Create(announcement *models.Announcement) error {
	if m.createFn != nil {
		return m.createFn(announcement)
	}
	return nil
}

func (m *mockAnnouncementRepo) GetByID(id uint) (*models.Announcement, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) GetGeneral(limit int) ([]models.Announcement, error) {
	if m.getGeneralFn != nil {
		return m.getGeneralFn(limit)
	}
	return nil, nil
}

func (m *mockAnnouncementRepo) GetByEvent(eventID uint) ([]models.Announcement, error) {
	if m.getByEventFn != nil {
		return m.getByEventFn(eventID)
	}
	return nil, nil
}

func (m *mockAnnouncementRepo) GetByOrganizer(organizerID uint) ([]models.Announcement, error) {
	if m.getByOrganizerFn != nil {
		return m.getByOrganizerFn(organizerID)
	}
	return nil, nil
}

func (m *mockAnnouncementRepo) GetAll() ([]models.Announcement, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return nil, nil
}

func (m *mockAnnouncementRepo) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func TestCreateGeneralAnnouncement(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return organizerUser(id), nil },
	}
	svc := NewAnnouncementService(&mockAnnouncementRepo{}, &mockEventRepo{}, userRepo)

	ann, err := svc.Create(1, models.AnnouncementRequest{
		Title:    "Library hours extended",
		Message:  "Open until midnight during exams.",
		Priority: models.PriorityNormal,
	})

	assert.NoError(t, err)
	assert.Nil(t, ann.EventID)
	assert.Equal(t, uint(1), ann.OrganizerID)
}

func TestCreateAnnouncementRequiresOrganizer(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return participantUser(id), nil },
	}
	svc := NewAnnouncementService(&mockAnnouncementRepo{}, &mockEventRepo{}, userRepo)

	_, err := svc.Create(7, models.AnnouncementRequest{Title: "x", Message: "y", Priority: models.PriorityNormal})

	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestCreateEventAnnouncementRequiresOwnership(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return organizerUser(id), nil },
	}
	eventRepo := &mockEventRepo{
		getByIDFn: func(id uint) (*models.Event, error) {
			return &models.Event{ID: id, OrganizerID: 99}, nil
		},
	}
	svc := NewAnnouncementService(&mockAnnouncementRepo{}, eventRepo, userRepo)

	eventID := uint(4)
	_, err := svc.Create(1, models.AnnouncementRequest{
		Title:    "Venue change",
		Message:  "Moved to Hall B.",
		EventID:  &eventID,
		Priority: models.PriorityImportant,
	})

	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.EqualError(t, err, "You can only create announcements for your own events")
}

func TestGetGeneralIsCapped(t *testing.T) {
	requestedLimit := 0
	annRepo := &mockAnnouncementRepo{
		getGeneralFn: func(limit int) ([]models.Announcement, error) {
			requestedLimit = limit
			return []models.Announcement{}, nil
		},
	}
	svc := NewAnnouncementService(annRepo, &mockEventRepo{}, &mockUserRepo{})

	_, err := svc.GetGeneral()

	assert.NoError(t, err)
	assert.Equal(t, generalAnnouncementLimit, requestedLimit)
}

func TestDeleteAnnouncementOwnerOnly(t *testing.T) {
	annRepo := &mockAnnouncementRepo{
		getByIDFn: func(id uint) (*models.Announcement, error) {
			return &models.Announcement{ID: id, OrganizerID: 1}, nil
		},
	}
	svc := NewAnnouncementService(annRepo, &mockEventRepo{}, &mockUserRepo{})

	assert.NoError(t, svc.Delete(5, 1))

	err := svc.Delete(5, 2)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
