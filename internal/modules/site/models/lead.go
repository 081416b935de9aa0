package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusWon       = "won"
	LeadStatusLost      = "lost"
)

// Lead is a contact or booking enquiry from the site
type Lead struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Phone     string    `gorm:"type:text" json:"phone,omitempty"`
	Email     string    `gorm:"type:text" json:"email,omitempty"`
	Service   string    `gorm:"type:text" json:"service,omitempty"`
	EventDate string    `gorm:"type:text" json:"event_date,omitempty"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	Source    string    `gorm:"type:text;not null;default:website" json:"source"`
	Status    string    `gorm:"type:text;not null;default:new;index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Lead) TableName() string {
	return "leads"
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// CreateLeadRequest needs a phone or an email so the team can reply
type CreateLeadRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Phone     string `json:"phone" validate:"max=40"`
	Email     string `json:"email" validate:"omitempty,email,max=200"`
	Service   string `json:"service" validate:"max=100"`
	EventDate string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Message   string `json:"message" validate:"max=4000"`
	Source    string `json:"source" validate:"max=50"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted qualified won lost"`
}

type LeadFilter struct {
	Status string
	Limit  int
}
