package models

import (
	"time"
)

const (
	DiscussionTypeDiscussion = "discussion"
	DiscussionTypeQuestion   = "question"
)

type Discussion struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EventID    uint      `json:"event_id" gorm:"not null;index"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	UserName   string    `json:"user_name" gorm:"not null"`
	UserRole   string    `json:"user_role" gorm:"not null"`
	Type       string    `json:"type" gorm:"not null"`
	Title      *string   `json:"title,omitempty"`
	Message    string    `json:"message" gorm:"not null"`
	IsAnswered bool      `json:"is_answered" gorm:"default:false"` // questions only
	IsPinned   bool      `json:"is_pinned" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}

type Comment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	DiscussionID uint      `json:"discussion_id" gorm:"not null;index"`
	UserID       uint      `json:"user_id" gorm:"not null"`
	UserName     string    `json:"user_name" gorm:"not null"`
	UserRole     string    `json:"user_role" gorm:"not null"`
	Message      string    `json:"message" gorm:"not null"`
	IsAnswer     bool      `json:"is_answer" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
}

type DiscussionRequest struct {
	EventID uint    `json:"event_id" validate:"required"`
	Type    string  `json:"type" validate:"required,oneof=discussion question"`
	Title   *string `json:"title"`
	Message string  `json:"message" validate:"required"`
}

type CommentRequest struct {
	Message  string `json:"message" validate:"required"`
	IsAnswer bool   `json:"is_answer"`
}
