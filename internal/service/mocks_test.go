package service

import (
	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/internal/models"
)

// Hand-rolled repository doubles. Each method delegates to a function field
// when set, otherwise returns an empty-database default, so tests only stub
// what they care about.

type mockUserRepo struct {
	createFn     func(user *models.User) error
	getByIDFn    func(id uint) (*models.User, error)
	getByEmailFn func(email string) (*models.User, error)
}

func (m *mockUserRepo) Create(user *models.User) error {
	if m.createFn != nil {
		return m.createFn(user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(id uint) (*models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(email)
	}
	return nil, gorm.ErrRecordNotFound
}

type mockEventRepo struct {
	createFn         func(event *models.Event) error
	getByIDFn        func(id uint) (*models.Event, error)
	getAllFn         func() ([]models.Event, error)
	getByOrganizerFn func(organizerID uint) ([]models.Event, error)
	updateFn         func(event *models.Event) error
	deleteCascadeFn  func(id uint) ([]string, error)
}

func (m *mockEventRepo) Create(event *models.Event) error {
	if m.createFn != nil {
		return m.createFn(event)
	}
	return nil
}

func (m *mockEventRepo) GetByID(id uint) (*models.Event, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) GetAll() ([]models.Event, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return nil, nil
}

func (m *mockEventRepo) GetByOrganizer(organizerID uint) ([]models.Event, error) {
	if m.getByOrganizerFn != nil {
		return m.getByOrganizerFn(organizerID)
	}
	return nil, nil
}

func (m *mockEventRepo) Update(event *models.Event) error {
	if m.updateFn != nil {
		return m.updateFn(event)
	}
	return nil
}

func (m *mockEventRepo) DeleteCascade(id uint) ([]string, error) {
	if m.deleteCascadeFn != nil {
		return m.deleteCascadeFn(id)
	}
	return nil, nil
}

type mockRegistrationRepo struct {
	getByIDFn           func(id uint) (*models.Registration, error)
	getByCodeFn         func(code string) (*models.Registration, error)
	getByEventAndUserFn func(eventID, userID uint) (*models.Registration, error)
	getByEventFn        func(eventID uint) ([]models.Registration, error)
	getByEventsFn       func(eventIDs []uint) ([]models.Registration, error)
	getByUserFn         func(userID uint) ([]models.Registration, error)
	getByTeamFn         func(teamID string) ([]models.Registration, error)
	countByEventFn      func(eventID uint) (int64, error)
	codeExistsFn        func(code string) (bool, error)
	createGroupFn       func(registrations []*models.Registration, maxParticipants int) error
	deleteFn            func(id uint) error
	deleteByTeamFn      func(teamID string) error
}

func (m *mockRegistrationRepo) GetByID(id uint) (*models.Registration, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) GetByCode(code string) (*models.Registration, error) {
	if m.getByCodeFn != nil {
		return m.getByCodeFn(code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) GetByEventAndUser(eventID, userID uint) (*models.Registration, error) {
	if m.getByEventAndUserFn != nil {
		return m.getByEventAndUserFn(eventID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) GetByEvent(eventID uint) ([]models.Registration, error) {
	if m.getByEventFn != nil {
		return m.getByEventFn(eventID)
	}
	return nil, nil
}

func (m *mockRegistrationRepo) GetByEvents(eventIDs []uint) ([]models.Registration, error) {
	if m.getByEventsFn != nil {
		return m.getByEventsFn(eventIDs)
	}
	return nil, nil
}

func (m *mockRegistrationRepo) GetByUser(userID uint) ([]models.Registration, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(userID)
	}
	return nil, nil
}

func (m *mockRegistrationRepo) GetByTeam(teamID string) ([]models.Registration, error) {
	if m.getByTeamFn != nil {
		return m.getByTeamFn(teamID)
	}
	return nil, nil
}

func (m *mockRegistrationRepo) CountByEvent(eventID uint) (int64, error) {
	if m.countByEventFn != nil {
		return m.countByEventFn(eventID)
	}
	return 0, nil
}

func (m *mockRegistrationRepo) CodeExists(code string) (bool, error) {
	if m.codeExistsFn != nil {
		return m.codeExistsFn(code)
	}
	return false, nil
}

func (m *mockRegistrationRepo) CreateGroup(registrations []*models.Registration, maxParticipants int) error {
	if m.createGroupFn != nil {
		return m.createGroupFn(registrations, maxParticipants)
	}
	for i, reg := range registrations {
		reg.ID = uint(i + 1)
	}
	return nil
}

func (m *mockRegistrationRepo) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockRegistrationRepo) DeleteByTeam(teamID string) error {
	if m.deleteByTeamFn != nil {
		return m.deleteByTeamFn(teamID)
	}
	return nil
}

type mockAttendanceRepo struct {
	createFn             func(attendance *models.Attendance) error
	getByRegistrationFn  func(registrationID uint) (*models.Attendance, error)
	getByEventFn         func(eventID uint) ([]models.Attendance, error)
	countByEventFn       func(eventID uint) (int64, error)
	getByRegistrationsFn func(registrationIDs []uint) ([]models.Attendance, error)
}

func (m *mockAttendanceRepo) Create(attendance *models.Attendance) error {
	if m.createFn != nil {
		return m.createFn(attendance)
	}
	return nil
}

func (m *mockAttendanceRepo) GetByRegistration(registrationID uint) (*models.Attendance, error) {
	if m.getByRegistrationFn != nil {
		return m.getByRegistrationFn(registrationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) GetByEvent(eventID uint) ([]models.Attendance, error) {
	if m.getByEventFn != nil {
		return m.getByEventFn(eventID)
	}
	return nil, nil
}

func (m *mockAttendanceRepo) CountByEvent(eventID uint) (int64, error) {
	if m.countByEventFn != nil {
		return m.countByEventFn(eventID)
	}
	return 0, nil
}

func (m *mockAttendanceRepo) GetByRegistrations(registrationIDs []uint) ([]models.Attendance, error) {
	if m.getByRegistrationsFn != nil {
		return m.getByRegistrationsFn(registrationIDs)
	}
	return nil, nil
}

type mockOtpRepo struct {
	replaceFn    func(otp *models.OtpCode) error
	getByEmailFn func(email string) (*models.OtpCode, error)
	deleteFn     func(id uint) error
}

func (m *mockOtpRepo) Replace(otp *models.OtpCode) error {
	if m.replaceFn != nil {
		return m.replaceFn(otp)
	}
	return nil
}

func (m *mockOtpRepo) GetByEmail(email string) (*models.OtpCode, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOtpRepo) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

type mockDiscussionRepo struct {
	createFn             func(discussion *models.Discussion) error
	getByIDFn            func(id uint) (*models.Discussion, error)
	getByEventFn         func(eventID uint) ([]models.Discussion, error)
	updateFn             func(discussion *models.Discussion) error
	deleteWithCommentsFn func(id uint) error
	createCommentFn      func(comment *models.Comment) error
	getCommentByIDFn     func(id uint) (*models.Comment, error)
	getCommentsFn        func(discussionID uint) ([]models.Comment, error)
	deleteCommentFn      func(id uint) error
}

func (m *mockDiscussionRepo) Create(discussion *models.Discussion) error {
	if m.createFn != nil {
		return m.createFn(discussion)
	}
	return nil
}

func (m *mockDiscussionRepo) GetByID(id uint) (*models.Discussion, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDiscussionRepo) GetByEvent(eventID uint) ([]models.Discussion, error) {
	if m.getByEventFn != nil {
		return m.getByEventFn(eventID)
	}
	return nil, nil
}

func (m *mockDiscussionRepo) Update(discussion *models.Discussion) error {
	if m.updateFn != nil {
		return m.updateFn(discussion)
	}
	return nil
}

func (m *mockDiscussionRepo) DeleteWithComments(id uint) error {
	if m.deleteWithCommentsFn != nil {
		return m.deleteWithCommentsFn(id)
	}
	return nil
}

func (m *mockDiscussionRepo) CreateComment(comment *models.Comment) error {
	if m.createCommentFn != nil {
		return m.createCommentFn(comment)
	}
	return nil
}

func (m *mockDiscussionRepo) GetCommentByID(id uint) (*models.Comment, error) {
	if m.getCommentByIDFn != nil {
		return m.getCommentByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDiscussionRepo) GetComments(discussionID uint) ([]models.Comment, error) {
	if m.getCommentsFn != nil {
		return m.getCommentsFn(discussionID)
	}
	return nil, nil
}

func (m *mockDiscussionRepo) DeleteComment(id uint) error {
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(id)
	}
	return nil
}

type mockReportRepo struct {
	createFn                 func(report *models.Report) error
	getByIDFn                func(id uint) (*models.Report, error)
	existsForContentByUserFn func(contentType, contentID string, userID uint) (bool, error)
	getAllFn                 func(status string) ([]models.Report, error)
	updateFn                 func(report *models.Report) error
}

func (m *mockReportRepo) Create(report *models.Report) error {
	if m.createFn != nil {
		return m.createFn(report)
	}
	return nil
}

func (m *mockReportRepo) GetByID(id uint) (*models.Report, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReportRepo) ExistsForContentByUser(contentType, contentID string, userID uint) (bool, error) {
	if m.existsForContentByUserFn != nil {
		return m.existsForContentByUserFn(contentType, contentID, userID)
	}
	return false, nil
}

func (m *mockReportRepo) GetAll(status string) ([]models.Report, error) {
	if m.getAllFn != nil {
		return m.getAllFn(status)
	}
	return nil, nil
}

func (m *mockReportRepo) Update(report *models.Report) error {
	if m.updateFn != nil {
		return m.updateFn(report)
	}
	return nil
}

func organizerUser(id uint) *models.User {
	email := "organizer@campus.edu"
	return &models.User{ID: id, Role: models.RoleOrganizer, Email: &email, Name: "Organizer"}
}

func participantUser(id uint) *models.User {
	return &models.User{ID: id, Role: models.RoleParticipant, Name: "Participant", IsAnonymous: true}
}
