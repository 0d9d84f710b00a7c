package models

import (
	"time"
)

// Event categories offered on campus.
const (
	CategoryWorkshop  = "Workshop"
	CategorySeminar   = "Seminar"
	CategorySports    = "Sports"
	CategoryCultural  = "Cultural"
	CategoryTechnical = "Technical"
	CategorySocial    = "Social"
)

func EventCategories() []string {
	return []string{
		CategoryWorkshop,
		CategorySeminar,
		CategorySports,
		CategoryCultural,
		CategoryTechnical,
		CategorySocial,
	}
}

type Event struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	OrganizerID     uint      `json:"organizer_id" gorm:"not null;index"`
	Title           string    `json:"title" gorm:"not null"`
	Description     string    `json:"description"`
	Date            string    `json:"date" gorm:"not null"` // YYYY-MM-DD
	Time            string    `json:"time" gorm:"not null"` // HH:MM
	Location        string    `json:"location" gorm:"not null"`
	Category        string    `json:"category" gorm:"not null"`
	MaxParticipants int       `json:"max_participants" gorm:"not null"`
	IsTeamEvent     bool      `json:"is_team_event" gorm:"default:false"`
	TeamSize        *int      `json:"team_size,omitempty"`
	Requirements    *string   `json:"requirements,omitempty"`
	OrganizerName   *string   `json:"organizer_name,omitempty"`
	OrganizerEmail  *string   `json:"organizer_email,omitempty"`
	OrganizerPhone  *string   `json:"organizer_phone,omitempty"`
	OrganizerRole   *string   `json:"organizer_role,omitempty"`
	ShowContactInfo bool      `json:"show_contact_info" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type EventRequest struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string  `json:"time" validate:"required"`
	Location        string  `json:"location" validate:"required"`
	Category        string  `json:"category" validate:"required,oneof=Workshop Seminar Sports Cultural Technical Social"`
	MaxParticipants int     `json:"max_participants" validate:"required,gt=0"`
	IsTeamEvent     bool    `json:"is_team_event"`
	TeamSize        *int    `json:"team_size"`
	Requirements    *string `json:"requirements"`
	OrganizerName   *string `json:"organizer_name"`
	OrganizerEmail  *string `json:"organizer_email" validate:"omitempty,email"`
	OrganizerPhone  *string `json:"organizer_phone"`
	OrganizerRole   *string `json:"organizer_role"`
	ShowContactInfo bool    `json:"show_contact_info"`
}

type ReassignOrganizerRequest struct {
	NewOrganizerID uint `json:"new_organizer_id" validate:"required"`
}
