package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebsiteImage is one slot in the keyed image registry
type WebsiteImage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Key         string    `gorm:"type:text;not null;uniqueIndex" json:"key"`
	URL         string    `gorm:"type:text;not null" json:"url"`
	Page        string    `gorm:"type:text;not null" json:"page"`
	Section     string    `gorm:"type:text;not null" json:"section"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WebsiteImage) TableName() string {
	return "website_images"
}

func (w *WebsiteImage) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

type UpdateWebsiteImageRequest struct {
	URL         string  `json:"url" validate:"required,max=2000"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// SeedResult reports how a registry seed went
type SeedResult struct {
	Created  int      `json:"created"`
	Existing int      `json:"existing"`
	Keys     []string `json:"created_keys"`
}
