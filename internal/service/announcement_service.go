package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/repository"
)

// generalAnnouncementLimit caps the landing-page feed.
const generalAnnouncementLimit = 5

type AnnouncementService struct {
	annRepo   repository.AnnouncementRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

func NewAnnouncementService(annRepo repository.AnnouncementRepository, eventRepo repository.EventRepository, userRepo repository.UserRepository) *AnnouncementService {
	return &AnnouncementService{
		annRepo:   annRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

func (s *AnnouncementService) Create(organizerID uint, req models.AnnouncementRequest) (*models.Announcement, error) {
	user, err := s.userRepo.GetByID(organizerID)
	if err != nil || user.Role != models.RoleOrganizer {
		return nil, apperror.Unauthorized("Only organizers can create announcements")
	}

	// Event-scoped announcements require owning the event.
	if req.EventID != nil {
		event, err := s.eventRepo.GetByID(*req.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NotFound("Event not found")
			}
			return nil, fmt.Errorf("load event: %w", err)
		}
		if event.OrganizerID != organizerID {
			return nil, apperror.Unauthorized("You can only create announcements for your own events")
		}
	}

	announcement := &models.Announcement{
		Title:       req.Title,
		Message:     req.Message,
		EventID:     req.EventID,
		Priority:    req.Priority,
		OrganizerID: organizerID,
	}
	if err := s.annRepo.Create(announcement); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	return announcement, nil
}

func (s *AnnouncementService) GetGeneral() ([]models.Announcement, error) {
	return s.annRepo.GetGeneral(generalAnnouncementLimit)
}

func (s *AnnouncementService) GetByEvent(eventID uint) ([]models.Announcement, error) {
	return s.annRepo.GetByEvent(eventID)
}

func (s *AnnouncementService) GetByOrganizer(organizerID uint) ([]models.Announcement, error) {
	return s.annRepo.GetByOrganizer(organizerID)
}

func (s *AnnouncementService) GetAll() ([]models.Announcement, error) {
	return s.annRepo.GetAll()
}

func (s *AnnouncementService) Delete(announcementID, callerID uint) error {
	announcement, err := s.annRepo.GetByID(announcementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Announcement not found")
		}
		return fmt.Errorf("load announcement: %w", err)
	}

	if announcement.OrganizerID != callerID {
		return apperror.Unauthorized("You can only delete your own announcements")
	}

	return s.annRepo.Delete(announcementID)
}
