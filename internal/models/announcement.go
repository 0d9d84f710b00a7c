package models

import (
	"time"
)

const (
	PriorityNormal    = "normal"
	PriorityImportant = "important"
)

// Announcement is organizer-authored. A nil EventID means it is a general
// (campus-wide) announcement.
type Announcement struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Message     string    `json:"message" gorm:"not null"`
	EventID     *uint     `json:"event_id,omitempty" gorm:"index"`
	Priority    string    `json:"priority" gorm:"not null;default:'normal'"`
	OrganizerID uint      `json:"organizer_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}

type AnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	EventID  *uint  `json:"event_id"`
	Priority string `json:"priority" validate:"required,oneof=normal important"`
}
