package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	VideoStatusActive   = "active"
	VideoStatusInactive = "inactive"
)

type VideoEmbed struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title        string         `gorm:"type:text;not null" json:"title"`
	Description  *string        `gorm:"type:text" json:"description"`
	VideoType    string         `gorm:"type:text;not null" json:"video_type"`
	VideoURL     string         `gorm:"type:text;not null" json:"video_url"`
	ThumbnailURL *string        `gorm:"type:text" json:"thumbnail_url"`
	Duration     *int           `json:"duration"`
	Status       string         `gorm:"type:text;not null;default:active" json:"status"`
	UIVariant    datatypes.JSON `gorm:"type:jsonb" json:"ui_variant,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (VideoEmbed) TableName() string {
	return "video_embeds"
}

func (v *VideoEmbed) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

type VideoRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	VideoType    string  `json:"video_type" validate:"required,oneof=youtube facebook tiktok upload"`
	VideoURL     string  `json:"video_url" validate:"required,max=2000"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
	Duration     *int    `json:"duration" validate:"omitempty,gte=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=active inactive"`
}
