package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DJTape is a mixtape with its audio file and cover art
type DJTape struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Genre       string         `gorm:"type:text" json:"genre,omitempty"`
	AudioURL    string         `gorm:"type:text;not null" json:"audio_url"`
	CoverURL    string         `gorm:"type:text" json:"cover_url,omitempty"`
	Duration    *int           `json:"duration"`
	Tracklist   pq.StringArray `gorm:"type:text[]" json:"tracklist"`
	Status      string         `gorm:"type:text;not null;default:draft" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DJTape) TableName() string {
	return "dj_tapes"
}

func (t *DJTape) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type DJTapeRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Genre       string   `json:"genre" validate:"max=50"`
	AudioURL    string   `json:"audio_url" validate:"required,url"`
	CoverURL    string   `json:"cover_url" validate:"omitempty,url"`
	Duration    *int     `json:"duration" validate:"omitempty,gte=0"`
	Tracklist   []string `json:"tracklist" validate:"max=100,dive,max=200"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published archived"`
}
