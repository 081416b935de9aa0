package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Slug          string         `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Title         string         `gorm:"type:text;not null" json:"title"`
	Excerpt       string         `gorm:"type:text" json:"excerpt,omitempty"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	CoverImageURL string         `gorm:"type:text" json:"cover_image_url,omitempty"`
	Author        string         `gorm:"type:text" json:"author,omitempty"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	Status        string         `gorm:"type:text;not null;default:draft" json:"status"`
	PublishedAt   *time.Time     `json:"published_at"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type BlogPostRequest struct {
	Slug          string   `json:"slug" validate:"omitempty,max=120"`
	Title         string   `json:"title" validate:"required,max=200"`
	Excerpt       string   `json:"excerpt" validate:"max=500"`
	Content       string   `json:"content" validate:"required"`
	CoverImageURL string   `json:"cover_image_url" validate:"omitempty,url"`
	Author        string   `json:"author" validate:"max=100"`
	Tags          []string `json:"tags" validate:"max=20,dive,max=50"`
	Status        string   `json:"status" validate:"omitempty,oneof=draft published archived"`
}
