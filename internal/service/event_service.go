package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/repository"
	"github.com/campusconnect/campus-events-backend/pkg/storage"
)

type EventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	storage   storage.Storage
	logger    *zap.Logger
}

func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository, store storage.Storage, logger *zap.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		storage:   store,
		logger:    logger,
	}
}

func (s *EventService) Create(organizerID uint, req models.EventRequest) (*models.Event, error) {
	user, err := s.userRepo.GetByID(organizerID)
	if err != nil || user.Role != models.RoleOrganizer {
		return nil, apperror.Unauthorized("Only organizers can create events")
	}

	teamSize, err := normalizeTeamSize(req.IsTeamEvent, req.TeamSize)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		OrganizerID:     organizerID,
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Category:        req.Category,
		MaxParticipants: req.MaxParticipants,
		IsTeamEvent:     req.IsTeamEvent,
		TeamSize:        teamSize,
		Requirements:    req.Requirements,
		OrganizerName:   req.OrganizerName,
		OrganizerEmail:  req.OrganizerEmail,
		OrganizerPhone:  req.OrganizerPhone,
		OrganizerRole:   req.OrganizerRole,
		ShowContactInfo: req.ShowContactInfo,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		zap.Uint("event_id", event.ID),
		zap.Uint("organizer_id", organizerID),
		zap.Bool("is_team_event", event.IsTeamEvent),
	)

	return event, nil
}

func (s *EventService) Update(eventID, callerID uint, req models.EventRequest) (*models.Event, error) {
	event, err := s.getOwned(eventID, callerID)
	if err != nil {
		return nil, err
	}

	teamSize, err := normalizeTeamSize(req.IsTeamEvent, req.TeamSize)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Date = req.Date
	event.Time = req.Time
	event.Location = req.Location
	event.Category = req.Category
	event.MaxParticipants = req.MaxParticipants
	event.IsTeamEvent = req.IsTeamEvent
	event.TeamSize = teamSize
	event.Requirements = req.Requirements
	event.OrganizerName = req.OrganizerName
	event.OrganizerEmail = req.OrganizerEmail
	event.OrganizerPhone = req.OrganizerPhone
	event.OrganizerRole = req.OrganizerRole
	event.ShowContactInfo = req.ShowContactInfo

	if err := s.eventRepo.Update(event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// Delete removes the event and everything scoped to it, including photo
// blobs in storage.
func (s *EventService) Delete(eventID, callerID uint) error {
	if _, err := s.getOwned(eventID, callerID); err != nil {
		return err
	}

	storageKeys, err := s.eventRepo.DeleteCascade(eventID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	for _, key := range storageKeys {
		if err := s.storage.Delete(context.Background(), key); err != nil {
			// The DB rows are gone; an orphaned blob is only wasted space.
			s.logger.Warn("failed to delete photo blob", zap.String("key", key), zap.Error(err))
		}
	}

	s.logger.Info("event deleted", zap.Uint("event_id", eventID), zap.Uint("organizer_id", callerID))
	return nil
}

func (s *EventService) GetByID(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Event not found")
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetAll() ([]models.Event, error) {
	return s.eventRepo.GetAll()
}

func (s *EventService) GetByOrganizer(organizerID uint) ([]models.Event, error) {
	return s.eventRepo.GetByOrganizer(organizerID)
}

// Reassign hands an event to another organizer. Only the current owner can
// give an event away.
func (s *EventService) Reassign(eventID, callerID, newOrganizerID uint) error {
	event, err := s.getOwned(eventID, callerID)
	if err != nil {
		return err
	}

	newOwner, err := s.userRepo.GetByID(newOrganizerID)
	if err != nil || newOwner.Role != models.RoleOrganizer {
		return apperror.Validation("New owner must be an organizer")
	}

	event.OrganizerID = newOrganizerID
	if err := s.eventRepo.Update(event); err != nil {
		return fmt.Errorf("reassign event: %w", err)
	}

	s.logger.Info("event reassigned",
		zap.Uint("event_id", eventID),
		zap.Uint("from", callerID),
		zap.Uint("to", newOrganizerID),
	)
	return nil
}

func (s *EventService) getOwned(eventID, callerID uint) (*models.Event, error) {
	event, err := s.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != callerID {
		return nil, apperror.Unauthorized("You can only manage your own events")
	}
	return event, nil
}

func normalizeTeamSize(isTeamEvent bool, teamSize *int) (*int, error) {
	if !isTeamEvent {
		// Solo events never carry a team size.
		return nil, nil
	}
	if teamSize == nil || *teamSize < 2 {
		return nil, apperror.Validation("Team events must have a team size of at least 2")
	}
	return teamSize, nil
}
