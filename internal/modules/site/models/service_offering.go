package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceOffering is a card on the services grid (DJ, creative, rentals)
type ServiceOffering struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Category    string    `gorm:"type:text;not null" json:"category"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `gorm:"type:text" json:"icon,omitempty"`
	ImageURL    string    `gorm:"type:text" json:"image_url,omitempty"`
	PriceFrom   *float64  `gorm:"type:decimal(12,2)" json:"price_from,omitempty"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ServiceOffering) TableName() string {
	return "service_offerings"
}

func (s *ServiceOffering) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type ServiceOfferingRequest struct {
	Category    string   `json:"category" validate:"required,oneof=dj creative rental production"`
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=1000"`
	Icon        string   `json:"icon" validate:"max=50"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	PriceFrom   *float64 `json:"price_from" validate:"omitempty,gte=0"`
	SortOrder   int      `json:"sort_order"`
	IsActive    *bool    `json:"is_active"`
}
