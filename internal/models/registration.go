package models

import (
	"time"
)

// Registration is one row per individual attendee. Team events create one
// row per member, all sharing a TeamID; the leader's row carries the caller's
// UserID and IsTeamLeader. Member rows have no UserID of their own.
type Registration struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	EventID          uint      `json:"event_id" gorm:"not null;index;uniqueIndex:idx_event_user"`
	UserID           *uint     `json:"user_id,omitempty" gorm:"index;uniqueIndex:idx_event_user"`
	ParticipantName  string    `json:"participant_name" gorm:"not null"`
	ParticipantEmail string    `json:"participant_email" gorm:"not null"`
	ParticipantPhone string    `json:"participant_phone"`
	College          string    `json:"college"`
	Year             string    `json:"year"`
	TeamID           *string   `json:"team_id,omitempty" gorm:"index"`
	TeamName         *string   `json:"team_name,omitempty"`
	IsTeamLeader     bool      `json:"is_team_leader" gorm:"default:false"`
	Code             string    `json:"code" gorm:"uniqueIndex;not null"` // REG-XXXXXX
	CreatedAt        time.Time `json:"created_at"`
}

// Attendance marks presence for a single registration, at most once.
type Attendance struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	RegistrationID uint      `json:"registration_id" gorm:"not null;uniqueIndex"`
	EventID        uint      `json:"event_id" gorm:"not null;index"`
	TeamID         *string   `json:"team_id,omitempty"`
	MarkedByUserID uint      `json:"marked_by_user_id" gorm:"not null"`
	Status         string    `json:"status" gorm:"not null;default:'Present'"`
	MarkedAt       time.Time `json:"marked_at"`
}

type TeamMemberInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type RegisterRequest struct {
	EventID          uint              `json:"event_id" validate:"required"`
	ParticipantName  string            `json:"participant_name" validate:"required"`
	ParticipantEmail string            `json:"participant_email" validate:"required,email"`
	ParticipantPhone string            `json:"participant_phone"`
	College          string            `json:"college"`
	Year             string            `json:"year"`
	TeamName         *string           `json:"team_name"`
	TeamMembers      []TeamMemberInput `json:"team_members" validate:"dive"`
}

type MemberCode struct {
	RegistrationID uint   `json:"registration_id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
}

type RegisterResponse struct {
	RegistrationID uint         `json:"registration_id"`
	Code           string       `json:"code"` // leader's (or solo) code
	TeamID         *string      `json:"team_id,omitempty"`
	TeamName       *string      `json:"team_name,omitempty"`
	Codes          []MemberCode `json:"codes"`
}

type MarkAttendanceRequest struct {
	RegistrationID uint `json:"registration_id" validate:"required"`
}

type AttendanceResult struct {
	AlreadyMarked bool       `json:"already_marked"`
	Attendance    Attendance `json:"attendance"`
}

// HistoryItem joins a participant's registration with its event and
// attendance status.
type HistoryItem struct {
	RegistrationID   uint       `json:"registration_id"`
	RegistrationCode string     `json:"registration_code"`
	EventID          uint       `json:"event_id"`
	EventTitle       string     `json:"event_title"`
	EventDate        string     `json:"event_date"`
	EventTime        string     `json:"event_time"`
	EventLocation    string     `json:"event_location"`
	EventCategory    string     `json:"event_category"`
	IsTeamEvent      bool       `json:"is_team_event"`
	TeamName         *string    `json:"team_name,omitempty"`
	IsTeamLeader     bool       `json:"is_team_leader"`
	Attended         bool       `json:"attended"`
	AttendedAt       *time.Time `json:"attended_at,omitempty"`
}

type ParticipantStats struct {
	TotalRegistrations int            `json:"total_registrations"`
	TotalAttended      int            `json:"total_attended"`
	AttendanceRate     int            `json:"attendance_rate"`
	TopCategory        *string        `json:"top_category,omitempty"`
	CategoryCounts     map[string]int `json:"category_counts"`
}
