package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/repository"
	"github.com/campusconnect/campus-events-backend/pkg/qrcode"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

// codeAttempts bounds the random draws for a unique registration code.
// The alphabet gives 32^6 possible codes, so exhausting this means the
// table is pathologically full or the RNG is broken; we fail rather than
// accept a duplicate.
const codeAttempts = 10

type RegistrationService struct {
	regRepo   repository.RegistrationRepository
	attRepo   repository.AttendanceRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	logger    *zap.Logger
}

func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	attRepo repository.AttendanceRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:   regRepo,
		attRepo:   attRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (s *RegistrationService) Register(userID uint, req models.RegisterRequest) (*models.RegisterResponse, error) {
	if _, err := s.regRepo.GetByEventAndUser(req.EventID, userID); err == nil {
		return nil, apperror.Conflict("Already registered for this event")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}

	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Event not found")
		}
		return nil, fmt.Errorf("load event: %w", err)
	}

	hasTeamData := (req.TeamName != nil && *req.TeamName != "") || len(req.TeamMembers) > 0
	if !event.IsTeamEvent && hasTeamData {
		return nil, apperror.Validation("This event does not support team registration")
	}

	count, err := s.regRepo.CountByEvent(event.ID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	if event.IsTeamEvent {
		return s.registerTeam(userID, event, req, int(count))
	}
	return s.registerSolo(userID, event, req, int(count))
}

func (s *RegistrationService) registerSolo(userID uint, event *models.Event, req models.RegisterRequest, current int) (*models.RegisterResponse, error) {
	if current >= event.MaxParticipants {
		return nil, apperror.Validation("Event is full")
	}

	code, err := s.uniqueCode()
	if err != nil {
		return nil, err
	}

	reg := &models.Registration{
		EventID:          event.ID,
		UserID:           &userID,
		ParticipantName:  req.ParticipantName,
		ParticipantEmail: req.ParticipantEmail,
		ParticipantPhone: req.ParticipantPhone,
		College:          req.College,
		Year:             req.Year,
		Code:             code,
	}

	if err := s.createGroup([]*models.Registration{reg}, event); err != nil {
		return nil, err
	}

	s.logger.Info("registration created",
		zap.Uint("event_id", event.ID),
		zap.Uint("registration_id", reg.ID),
	)

	return &models.RegisterResponse{
		RegistrationID: reg.ID,
		Code:           reg.Code,
		Codes: []models.MemberCode{
			{RegistrationID: reg.ID, Name: reg.ParticipantName, Code: reg.Code},
		},
	}, nil
}

func (s *RegistrationService) registerTeam(userID uint, event *models.Event, req models.RegisterRequest, current int) (*models.RegisterResponse, error) {
	if event.TeamSize == nil || *event.TeamSize < 2 {
		return nil, apperror.Validation("This event is not configured with a valid team size")
	}
	requiredSize := *event.TeamSize

	totalPeople := 1 + len(req.TeamMembers) // leader + members
	if totalPeople != requiredSize {
		return nil, apperror.Validation("This event requires teams of exactly %d participants", requiredSize)
	}
	if req.TeamName == nil || *req.TeamName == "" {
		return nil, apperror.Validation("Team name is required for team events")
	}
	if current+totalPeople > event.MaxParticipants {
		return nil, apperror.Validation("Not enough space left for a team of %d", totalPeople)
	}

	teamID := xid.New().String()

	leaderCode, err := s.uniqueCode()
	if err != nil {
		return nil, err
	}

	regs := make([]*models.Registration, 0, totalPeople)
	regs = append(regs, &models.Registration{
		EventID:          event.ID,
		UserID:           &userID,
		ParticipantName:  req.ParticipantName,
		ParticipantEmail: req.ParticipantEmail,
		ParticipantPhone: req.ParticipantPhone,
		College:          req.College,
		Year:             req.Year,
		TeamID:           &teamID,
		TeamName:         req.TeamName,
		IsTeamLeader:     true,
		Code:             leaderCode,
	})

	for _, member := range req.TeamMembers {
		code, err := s.uniqueCode()
		if err != nil {
			return nil, err
		}
		regs = append(regs, &models.Registration{
			EventID:          event.ID,
			ParticipantName:  member.Name,
			ParticipantEmail: member.Email,
			College:          req.College,
			Year:             req.Year,
			TeamID:           &teamID,
			TeamName:         req.TeamName,
			Code:             code,
		})
	}

	if err := s.createGroup(regs, event); err != nil {
		return nil, err
	}

	s.logger.Info("team registration created",
		zap.Uint("event_id", event.ID),
		zap.String("team_id", teamID),
		zap.Int("team_size", totalPeople),
	)

	codes := make([]models.MemberCode, len(regs))
	for i, reg := range regs {
		codes[i] = models.MemberCode{
			RegistrationID: reg.ID,
			Name:           reg.ParticipantName,
			Code:           reg.Code,
		}
	}

	return &models.RegisterResponse{
		RegistrationID: regs[0].ID,
		Code:           regs[0].Code,
		TeamID:         &teamID,
		TeamName:       req.TeamName,
		Codes:          codes,
	}, nil
}

func (s *RegistrationService) createGroup(regs []*models.Registration, event *models.Event) error {
	err := s.regRepo.CreateGroup(regs, event.MaxParticipants)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrEventAtCapacity):
		if len(regs) > 1 {
			return apperror.Validation("Not enough space left for a team of %d", len(regs))
		}
		return apperror.Validation("Event is full")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// Either a concurrent registration by the same user or a code
		// collision that slipped past the pre-check.
		return apperror.Conflict("Already registered for this event")
	default:
		return fmt.Errorf("insert registrations: %w", err)
	}
}

func (s *RegistrationService) uniqueCode() (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := utils.GenerateRegistrationCode()
		exists, err := s.regRepo.CodeExists(code)
		if err != nil {
			return "", fmt.Errorf("check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", apperror.Conflict("Could not allocate a unique registration code")
}

func (s *RegistrationService) Cancel(eventID, userID uint) error {
	reg, err := s.regRepo.GetByEventAndUser(eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Registration not found")
		}
		return fmt.Errorf("load registration: %w", err)
	}

	// Cancelling a team registration takes the whole team with it; a team
	// smaller than the event's teamSize would violate registration rules.
	if reg.TeamID != nil {
		if err := s.regRepo.DeleteByTeam(*reg.TeamID); err != nil {
			return fmt.Errorf("delete team registrations: %w", err)
		}
		s.logger.Info("team registration cancelled",
			zap.Uint("event_id", eventID),
			zap.String("team_id", *reg.TeamID),
		)
		return nil
	}

	if err := s.regRepo.Delete(reg.ID); err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

func (s *RegistrationService) GetByID(id uint) (*models.Registration, error) {
	reg, err := s.regRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Registration not found")
		}
		return nil, err
	}
	return reg, nil
}

func (s *RegistrationService) GetByCode(code string) (*models.Registration, error) {
	reg, err := s.regRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Registration not found")
		}
		return nil, err
	}
	return reg, nil
}

func (s *RegistrationService) GetEventRegistrations(eventID uint) ([]models.Registration, error) {
	return s.regRepo.GetByEvent(eventID)
}

func (s *RegistrationService) GetUserRegistrations(userID uint) ([]models.Registration, error) {
	return s.regRepo.GetByUser(userID)
}

// TicketQR renders the PNG the participant shows at check-in.
func (s *RegistrationService) TicketQR(registrationID uint, size int) ([]byte, error) {
	reg, err := s.GetByID(registrationID)
	if err != nil {
		return nil, err
	}
	return qrcode.Generate(reg.Code, size)
}

// MarkAttendance is idempotent: a second scan of the same code returns the
// existing record as "already marked" instead of failing.
func (s *RegistrationService) MarkAttendance(registrationID, markerUserID uint) (*models.AttendanceResult, error) {
	marker, err := s.userRepo.GetByID(markerUserID)
	if err != nil || marker.Role != models.RoleOrganizer {
		return nil, apperror.Unauthorized("Only organizers can mark attendance")
	}

	reg, err := s.regRepo.GetByID(registrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Registration not found")
		}
		return nil, fmt.Errorf("load registration: %w", err)
	}

	if existing, err := s.attRepo.GetByRegistration(registrationID); err == nil {
		return &models.AttendanceResult{AlreadyMarked: true, Attendance: *existing}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check attendance: %w", err)
	}

	att := &models.Attendance{
		RegistrationID: registrationID,
		EventID:        reg.EventID,
		TeamID:         reg.TeamID,
		MarkedByUserID: markerUserID,
		Status:         "Present",
		MarkedAt:       time.Now(),
	}

	if err := s.attRepo.Create(att); err != nil {
		// The unique index backstops the pre-check under concurrent scans.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, lookupErr := s.attRepo.GetByRegistration(registrationID)
			if lookupErr != nil {
				return nil, fmt.Errorf("load winning attendance: %w", lookupErr)
			}
			return &models.AttendanceResult{AlreadyMarked: true, Attendance: *existing}, nil
		}
		return nil, fmt.Errorf("insert attendance: %w", err)
	}

	s.logger.Info("attendance marked",
		zap.Uint("registration_id", registrationID),
		zap.Uint("event_id", reg.EventID),
	)

	return &models.AttendanceResult{AlreadyMarked: false, Attendance: *att}, nil
}

func (s *RegistrationService) GetEventAttendance(eventID uint) ([]models.Attendance, error) {
	return s.attRepo.GetByEvent(eventID)
}

// History returns the participant's registrations joined with event details
// and attendance status, most recent event first.
func (s *RegistrationService) History(userID uint) ([]models.HistoryItem, error) {
	regs, err := s.regRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load registrations: %w", err)
	}

	items := make([]models.HistoryItem, 0, len(regs))
	for _, reg := range regs {
		event, err := s.eventRepo.GetByID(reg.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("load event: %w", err)
		}

		item := models.HistoryItem{
			RegistrationID:   reg.ID,
			RegistrationCode: reg.Code,
			EventID:          event.ID,
			EventTitle:       event.Title,
			EventDate:        event.Date,
			EventTime:        event.Time,
			EventLocation:    event.Location,
			EventCategory:    event.Category,
			IsTeamEvent:      event.IsTeamEvent,
			TeamName:         reg.TeamName,
			IsTeamLeader:     reg.IsTeamLeader,
		}

		if att, err := s.attRepo.GetByRegistration(reg.ID); err == nil {
			item.Attended = true
			attendedAt := att.MarkedAt
			item.AttendedAt = &attendedAt
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check attendance: %w", err)
		}

		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].EventDate > items[j].EventDate
	})

	return items, nil
}

func (s *RegistrationService) Stats(userID uint) (*models.ParticipantStats, error) {
	regs, err := s.regRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load registrations: %w", err)
	}

	attended := 0
	categories := make(map[string]int)

	for _, reg := range regs {
		event, err := s.eventRepo.GetByID(reg.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("load event: %w", err)
		}

		if _, err := s.attRepo.GetByRegistration(reg.ID); err == nil {
			attended++
			categories[event.Category]++
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check attendance: %w", err)
		}
	}

	stats := &models.ParticipantStats{
		TotalRegistrations: len(regs),
		TotalAttended:      attended,
		AttendanceRate:     rate(attended, len(regs)),
		CategoryCounts:     categories,
	}

	top, best := "", 0
	for category, n := range categories {
		if n > best || (n == best && top != "" && category < top) {
			top, best = category, n
		}
	}
	if top != "" {
		stats.TopCategory = &top
	}

	return stats, nil
}

// rate is the attendance-rate formula used everywhere: round(att/regs*100),
// zero when there are no registrations.
func rate(attended, registered int) int {
	if registered == 0 {
		return 0
	}
	return int(float64(attended)/float64(registered)*100 + 0.5)
}
