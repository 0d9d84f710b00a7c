package models

import (
	"time"
)

const (
	RoleOrganizer   = "organizer"
	RoleParticipant = "participant"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Role        string    `json:"role" gorm:"not null"`
	Email       *string   `json:"email,omitempty" gorm:"uniqueIndex"`
	Name        string    `json:"name"`
	IsAnonymous bool      `json:"is_anonymous" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AnonymousUserRequest struct {
	Name string `json:"name" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
