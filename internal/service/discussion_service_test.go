package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
)

func TestCreateDiscussionStampsAuthor(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return participantUser(id), nil },
	}
	var created *models.Discussion
	discRepo := &mockDiscussionRepo{
		createFn: func(d *models.Discussion) error {
			d.ID = 1
			created = d
			return nil
		},
	}
	svc := NewDiscussionService(discRepo, &mockReportRepo{}, userRepo)

	disc, err := svc.Create(7, models.DiscussionRequest{
		EventID: 4,
		Type:    models.DiscussionTypeQuestion,
		Message: "Is the venue wheelchair accessible?",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(7), disc.UserID)
	assert.Equal(t, "Participant", created.UserName)
	assert.Equal(t, models.RoleParticipant, created.UserRole)
	assert.False(t, created.IsAnswered)
}

func TestGetByEventOrdering(t *testing.T) {
	now := time.Now()
	discRepo := &mockDiscussionRepo{
		getByEventFn: func(eventID uint) ([]models.Discussion, error) {
			return []models.Discussion{
				{ID: 1, Type: models.DiscussionTypeQuestion, IsAnswered: true, CreatedAt: now},
				{ID: 2, Type: models.DiscussionTypeQuestion, CreatedAt: now.Add(-2 * time.Hour)},
				{ID: 3, Type: models.DiscussionTypeQuestion, IsPinned: true, IsAnswered: true, CreatedAt: now.Add(-3 * time.Hour)},
				{ID: 4, Type: models.DiscussionTypeDiscussion, CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	svc := NewDiscussionService(discRepo, &mockReportRepo{}, &mockUserRepo{})

	questions, err := svc.GetByEvent(4, models.DiscussionTypeQuestion)
	assert.NoError(t, err)
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	// Pinned first, then unanswered, then newest.
	assert.Equal(t, []uint{3, 2, 1}, ids)

	all, err := svc.GetByEvent(4, "")
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, uint(3), all[0].ID)
}

func TestTogglePin(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return organizerUser(id), nil },
	}
	disc := &models.Discussion{ID: 1}
	discRepo := &mockDiscussionRepo{
		getByIDFn: func(id uint) (*models.Discussion, error) { return disc, nil },
	}
	svc := NewDiscussionService(discRepo, &mockReportRepo{}, userRepo)

	pinned, err := svc.TogglePin(1, 1)
	assert.NoError(t, err)
	assert.True(t, pinned)

	pinned, err = svc.TogglePin(1, 1)
	assert.NoError(t, err)
	assert.False(t, pinned)
}

func TestTogglePinRequiresOrganizer(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return participantUser(id), nil },
	}
	svc := NewDiscussionService(&mockDiscussionRepo{}, &mockReportRepo{}, userRepo)

	_, err := svc.TogglePin(1, 7)

	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestDeleteDiscussionByAuthor(t *testing.T) {
	discRepo := &mockDiscussionRepo{
		getByIDFn: func(id uint) (*models.Discussion, error) {
			return &models.Discussion{ID: id, UserID: 7}, nil
		},
	}
	svc := NewDiscussionService(discRepo, &mockReportRepo{}, &mockUserRepo{})

	assert.NoError(t, svc.Delete(1, 7))
}

func TestDeleteDiscussionByStranger(t *testing.T) {
	discRepo := &mockDiscussionRepo{
		getByIDFn: func(id uint) (*models.Discussion, error) {
			return &models.Discussion{ID: id, UserID: 7}, nil
		},
	}
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return participantUser(id), nil },
	}
	svc := NewDiscussionService(discRepo, &mockReportRepo{}, userRepo)

	err := svc.Delete(1, 8)

	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestAnswerCommentSettlesQuestion(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return organizerUser(id), nil },
	}
	disc := &models.Discussion{ID: 1, Type: models.DiscussionTypeQuestion}
	updated := false
	discRepo := &mockDiscussionRepo{
		getByIDFn: func(id uint) (*models.Discussion, error) { return disc, nil },
		updateFn: func(d *models.Discussion) error {
			updated = true
			return nil
		},
	}
	svc := NewDiscussionService(discRepo, &mockReportRepo{}, userRepo)

	comment, err := svc.AddComment(1, 1, models.CommentRequest{Message: "Yes, fully accessible.", IsAnswer: true})

	assert.NoError(t, err)
	assert.True(t, comment.IsAnswer)
	assert.True(t, disc.IsAnswered)
	assert.True(t, updated)
}

func TestPlainCommentLeavesQuestionOpen(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return participantUser(id), nil },
	}
	disc := &models.Discussion{ID: 1, Type: models.DiscussionTypeQuestion}
	discRepo := &mockDiscussionRepo{
		getByIDFn: func(id uint) (*models.Discussion, error) { return disc, nil },
	}
	svc := NewDiscussionService(discRepo, &mockReportRepo{}, userRepo)

	_, err := svc.AddComment(1, 7, models.CommentRequest{Message: "Good question"})

	assert.NoError(t, err)
	assert.False(t, disc.IsAnswered)
}

func TestReportOncePerUser(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return participantUser(id), nil },
	}
	reported := false
	reportRepo := &mockReportRepo{
		existsForContentByUserFn: func(contentType, contentID string, userID uint) (bool, error) {
			return reported, nil
		},
		createFn: func(r *models.Report) error {
			r.ID = 1
			reported = true
			return nil
		},
	}
	svc := NewDiscussionService(&mockDiscussionRepo{}, reportRepo, userRepo)

	req := models.ReportRequest{ContentType: models.ContentTypeDiscussion, ContentID: "1", Reason: "spam"}

	report, err := svc.Report(7, req)
	assert.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, report.Status)

	_, err = svc.Report(7, req)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.EqualError(t, err, "You have already reported this content")
}

func TestResolveReport(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return organizerUser(id), nil },
	}
	report := &models.Report{ID: 1, Status: models.ReportStatusPending}
	reportRepo := &mockReportRepo{
		getByIDFn: func(id uint) (*models.Report, error) { return report, nil },
	}
	svc := NewDiscussionService(&mockDiscussionRepo{}, reportRepo, userRepo)

	err := svc.ResolveReport(1, 1, models.ReportStatusResolved)

	assert.NoError(t, err)
	assert.Equal(t, models.ReportStatusResolved, report.Status)
	assert.Equal(t, uint(1), *report.ReviewedByUserID)
}

func TestReportsOrganizerOnly(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(id uint) (*models.User, error) { return participantUser(id), nil },
	}
	svc := NewDiscussionService(&mockDiscussionRepo{}, &mockReportRepo{}, userRepo)

	_, err := svc.GetReports(7, "")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	err = svc.ResolveReport(1, 7, models.ReportStatusReviewed)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
