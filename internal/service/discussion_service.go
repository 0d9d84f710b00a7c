package service

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/repository"
)

type DiscussionService struct {
	discRepo   repository.DiscussionRepository
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
}

func NewDiscussionService(discRepo repository.DiscussionRepository, reportRepo repository.ReportRepository, userRepo repository.UserRepository) *DiscussionService {
	return &DiscussionService{
		discRepo:   discRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

func (s *DiscussionService) Create(userID uint, req models.DiscussionRequest) (*models.Discussion, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperror.Unauthorized("Unknown user")
	}

	discussion := &models.Discussion{
		EventID:  req.EventID,
		UserID:   userID,
		UserName: user.Name,
		UserRole: user.Role,
		Type:     req.Type,
		Title:    req.Title,
		Message:  req.Message,
	}
	if err := s.discRepo.Create(discussion); err != nil {
		return nil, fmt.Errorf("create discussion: %w", err)
	}

	return discussion, nil
}

// GetByEvent lists an event's discussions: pinned first, unanswered
// questions before answered ones when filtering questions, then newest
// first.
func (s *DiscussionService) GetByEvent(eventID uint, typeFilter string) ([]models.Discussion, error) {
	discussions, err := s.discRepo.GetByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("load discussions: %w", err)
	}

	if typeFilter != "" {
		filtered := discussions[:0]
		for _, d := range discussions {
			if d.Type == typeFilter {
				filtered = append(filtered, d)
			}
		}
		discussions = filtered
	}

	sort.SliceStable(discussions, func(i, j int) bool {
		a, b := discussions[i], discussions[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		if typeFilter == models.DiscussionTypeQuestion && a.IsAnswered != b.IsAnswered {
			return !a.IsAnswered
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return discussions, nil
}

func (s *DiscussionService) TogglePin(discussionID, callerID uint) (bool, error) {
	user, err := s.userRepo.GetByID(callerID)
	if err != nil || user.Role != models.RoleOrganizer {
		return false, apperror.Unauthorized("Only organizers can pin discussions")
	}

	discussion, err := s.discRepo.GetByID(discussionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperror.NotFound("Discussion not found")
		}
		return false, fmt.Errorf("load discussion: %w", err)
	}

	discussion.IsPinned = !discussion.IsPinned
	if err := s.discRepo.Update(discussion); err != nil {
		return false, fmt.Errorf("update discussion: %w", err)
	}

	return discussion.IsPinned, nil
}

func (s *DiscussionService) Delete(discussionID, callerID uint) error {
	discussion, err := s.discRepo.GetByID(discussionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Discussion not found")
		}
		return fmt.Errorf("load discussion: %w", err)
	}

	if err := s.requireAuthorOrOrganizer(discussion.UserID, callerID, "discussions"); err != nil {
		return err
	}

	return s.discRepo.DeleteWithComments(discussionID)
}

func (s *DiscussionService) AddComment(discussionID, userID uint, req models.CommentRequest) (*models.Comment, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperror.Unauthorized("Unknown user")
	}

	discussion, err := s.discRepo.GetByID(discussionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Discussion not found")
		}
		return nil, fmt.Errorf("load discussion: %w", err)
	}

	comment := &models.Comment{
		DiscussionID: discussionID,
		UserID:       userID,
		UserName:     user.Name,
		UserRole:     user.Role,
		Message:      req.Message,
		IsAnswer:     req.IsAnswer,
	}
	if err := s.discRepo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	// An answer comment settles the question.
	if req.IsAnswer && !discussion.IsAnswered {
		discussion.IsAnswered = true
		if err := s.discRepo.Update(discussion); err != nil {
			return nil, fmt.Errorf("mark answered: %w", err)
		}
	}

	return comment, nil
}

func (s *DiscussionService) GetComments(discussionID uint) ([]models.Comment, error) {
	return s.discRepo.GetComments(discussionID)
}

func (s *DiscussionService) DeleteComment(commentID, callerID uint) error {
	comment, err := s.discRepo.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Comment not found")
		}
		return fmt.Errorf("load comment: %w", err)
	}

	if err := s.requireAuthorOrOrganizer(comment.UserID, callerID, "comments"); err != nil {
		return err
	}

	return s.discRepo.DeleteComment(commentID)
}

// Report files a moderation report; a user can report the same content only
// once.
func (s *DiscussionService) Report(userID uint, req models.ReportRequest) (*models.Report, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperror.Unauthorized("Unknown user")
	}

	exists, err := s.reportRepo.ExistsForContentByUser(req.ContentType, req.ContentID, userID)
	if err != nil {
		return nil, fmt.Errorf("check existing report: %w", err)
	}
	if exists {
		return nil, apperror.Conflict("You have already reported this content")
	}

	report := &models.Report{
		ReportedByUserID: userID,
		ReportedByName:   user.Name,
		ContentType:      req.ContentType,
		ContentID:        req.ContentID,
		Reason:           req.Reason,
		Status:           models.ReportStatusPending,
	}
	if err := s.reportRepo.Create(report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	return report, nil
}

func (s *DiscussionService) GetReports(callerID uint, status string) ([]models.Report, error) {
	user, err := s.userRepo.GetByID(callerID)
	if err != nil || user.Role != models.RoleOrganizer {
		return nil, apperror.Unauthorized("Only organizers can view reports")
	}
	return s.reportRepo.GetAll(status)
}

func (s *DiscussionService) ResolveReport(reportID, callerID uint, status string) error {
	user, err := s.userRepo.GetByID(callerID)
	if err != nil || user.Role != models.RoleOrganizer {
		return apperror.Unauthorized("Only organizers can resolve reports")
	}

	report, err := s.reportRepo.GetByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Report not found")
		}
		return fmt.Errorf("load report: %w", err)
	}

	report.Status = status
	report.ReviewedByUserID = &callerID
	return s.reportRepo.Update(report)
}

func (s *DiscussionService) requireAuthorOrOrganizer(authorID, callerID uint, what string) error {
	if authorID == callerID {
		return nil
	}
	user, err := s.userRepo.GetByID(callerID)
	if err != nil || user.Role != models.RoleOrganizer {
		return apperror.Unauthorized("You can only delete your own %s", what)
	}
	return nil
}
