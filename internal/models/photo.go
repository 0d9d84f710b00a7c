package models

import (
	"time"
)

// Photos holds metadata only; bytes live in the blob store under StorageKey.
type Photos struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	EventID          uint      `json:"event_id" gorm:"not null;index"`
	UploadedByUserID uint      `json:"uploaded_by_user_id" gorm:"not null"`
	UploadedByName   string    `json:"uploaded_by_name"`
	StorageKey       string    `json:"storage_key" gorm:"not null"`
	Caption          *string   `json:"caption,omitempty"`
	Likes            int       `json:"likes" gorm:"default:0"`
	UploadedAt       time.Time `json:"uploaded_at"`
	CreatedAt        time.Time `json:"created_at"`
}

type PhotoLike struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	PhotoID uint      `json:"photo_id" gorm:"not null;index;uniqueIndex:idx_photo_user"`
	UserID  uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_photo_user"`
	LikedAt time.Time `json:"liked_at"`
}

type CreatePhotoRequest struct {
	EventID    uint    `json:"event_id" validate:"required"`
	StorageKey string  `json:"storage_key" validate:"required"`
	Caption    *string `json:"caption"`
}

type PhotoResponse struct {
	ID               uint      `json:"id"`
	EventID          uint      `json:"event_id"`
	UploadedByUserID uint      `json:"uploaded_by_user_id"`
	UploadedByName   string    `json:"uploaded_by_name"`
	URL              string    `json:"url"`
	Caption          *string   `json:"caption,omitempty"`
	Likes            int       `json:"likes"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

type UploadURLResponse struct {
	UploadURL  string `json:"upload_url"`
	StorageKey string `json:"storage_key"`
}

type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}
