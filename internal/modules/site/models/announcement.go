package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AnnouncementTypeGeneral = "general"
	AnnouncementTypeUpdate  = "update"
	AnnouncementTypeEvent   = "event"
	AnnouncementTypePromo   = "promo"
	AnnouncementTypeAlert   = "alert"

	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"

	MediaImage = "image"
	MediaAudio = "audio"
	MediaVideo = "video"
)

// Announcement is a site-wide notice shown in the banner and on pages
type Announcement struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title          string     `gorm:"type:text;not null" json:"title"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	Type           string     `gorm:"type:text;not null;default:general" json:"type"`
	Priority       string     `gorm:"type:text;not null;default:normal" json:"priority"`
	Status         string     `gorm:"type:text;not null;default:draft" json:"status"`
	TargetAudience string     `gorm:"type:text;not null;default:all" json:"target_audience"`
	Pinned         bool       `gorm:"not null;default:false" json:"pinned"`
	MediaType      *string    `gorm:"type:text" json:"media_type"`
	MediaURL       *string    `gorm:"type:text" json:"media_url"`
	ExpiresAt      *time.Time `json:"expires_at"`
	CreatedBy      *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsExpired reports whether expires_at has passed
func (a *Announcement) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && !a.ExpiresAt.After(now)
}

// IsVisible: published and not expired
func (a *Announcement) IsVisible(now time.Time) bool {
	return a.Status == StatusPublished && !a.IsExpired(now)
}

// PriorityRank orders priorities by severity, higher is more severe
func PriorityRank(priority string) int {
	switch priority {
	case PriorityUrgent:
		return 2
	case PriorityHigh:
		return 1
	default:
		return 0
	}
}

// AnnouncementLess is the display order: pinned, then severity, then newest
func AnnouncementLess(a, b *Announcement) bool {
	if a.Pinned != b.Pinned {
		return a.Pinned
	}
	if ra, rb := PriorityRank(a.Priority), PriorityRank(b.Priority); ra != rb {
		return ra > rb
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func SortAnnouncements(list []Announcement) {
	sort.SliceStable(list, func(i, j int) bool {
		return AnnouncementLess(&list[i], &list[j])
	})
}

// VisibleAnnouncements filters, orders and caps list for visitors
func VisibleAnnouncements(list []Announcement, now time.Time, limit int) []Announcement {
	out := make([]Announcement, 0, len(list))
	for i := range list {
		if list[i].IsVisible(now) {
			out = append(out, list[i])
		}
	}
	SortAnnouncements(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// AnnouncementRequest is used for create and full update
type AnnouncementRequest struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Content        string     `json:"content" validate:"required,max=5000"`
	Type           string     `json:"type" validate:"omitempty,oneof=general update event promo alert"`
	Priority       string     `json:"priority" validate:"omitempty,oneof=normal high urgent"`
	Status         string     `json:"status" validate:"omitempty,oneof=draft published archived"`
	TargetAudience string     `json:"target_audience" validate:"omitempty,max=50"`
	Pinned         bool       `json:"pinned"`
	MediaType      *string    `json:"media_type" validate:"omitempty,oneof=image audio video"`
	MediaURL       *string    `json:"media_url" validate:"omitempty,url"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

type AnnouncementStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Urgent  int64 `json:"urgent"`
	Expired int64 `json:"expired"`
}

// AnnouncementFilter for the admin list
type AnnouncementFilter struct {
	Status   string
	Type     string
	Priority string
}
