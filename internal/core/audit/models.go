package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionUpload = "upload"
	ActionSeed   = "seed"
)

// AuditLog records one admin mutation
type AuditLog struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	// Who
	ActorID    string `json:"actor_id" gorm:"type:text;index"`
	ActorEmail string `json:"actor_email,omitempty" gorm:"type:text"`

	// Action details
	Action   string `json:"action" gorm:"type:text;not null;index"` // create, update, delete, upload, seed
	Entity   string `json:"entity" gorm:"type:text;not null;index"` // announcement, product, website_image, ...
	EntityID string `json:"entity_id" gorm:"type:text;index"`

	// Change tracking
	OldValue datatypes.JSON `json:"old_value,omitempty" gorm:"type:jsonb"`
	NewValue datatypes.JSON `json:"new_value,omitempty" gorm:"type:jsonb"`

	// Request metadata
	IPAddress string `json:"ip_address,omitempty" gorm:"type:text"`
	UserAgent string `json:"user_agent,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Actor identifies who performed a change
type Actor struct {
	ID        string
	Email     string
	IPAddress string
	UserAgent string
}

// Filter represents filters for querying audit logs
type Filter struct {
	ActorID   string
	Action    string
	Entity    string
	EntityID  string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

// LogResponse represents paginated audit log response
type LogResponse struct {
	Logs       []AuditLog `json:"logs"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}
