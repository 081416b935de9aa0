package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityPost struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string    `gorm:"type:text;not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	ImageURL      *string   `gorm:"type:text" json:"image_url"`
	LikesCount    int       `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int       `gorm:"not null;default:0" json:"comments_count"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CommunityPost) TableName() string {
	return "community_posts"
}

func (p *CommunityPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PostAuthor is the profile subset shown next to a post
type PostAuthor struct {
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// CommunityPostView is a post joined with its author's profile
type CommunityPostView struct {
	CommunityPost
	Profiles PostAuthor `json:"profiles"`
}

type CreateCommunityPostRequest struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Content  string  `json:"content" validate:"required,max=5000"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}
