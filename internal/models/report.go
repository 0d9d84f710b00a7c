package models

import (
	"time"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
	ReportStatusResolved = "resolved"

	ContentTypeDiscussion = "discussion"
	ContentTypeComment    = "comment"
)

type Report struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ReportedByUserID uint      `json:"reported_by_user_id" gorm:"not null"`
	ReportedByName   string    `json:"reported_by_name"`
	ContentType      string    `json:"content_type" gorm:"not null;index:idx_content,priority:1"`
	ContentID        string    `json:"content_id" gorm:"not null;index:idx_content,priority:2"`
	Reason           string    `json:"reason" gorm:"not null"`
	Status           string    `json:"status" gorm:"not null;default:'pending';index"`
	ReviewedByUserID *uint     `json:"reviewed_by_user_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type ReportRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=discussion comment"`
	ContentID   string `json:"content_id" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
}

type ResolveReportRequest struct {
	Status string `json:"status" validate:"required,oneof=reviewed resolved"`
}
