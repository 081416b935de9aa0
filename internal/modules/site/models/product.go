package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Product is a shop catalog item; prices are in naira
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string         `gorm:"type:text;not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	Category      string         `gorm:"type:text;index" json:"category,omitempty"`
	Price         float64        `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	OriginalPrice *float64       `gorm:"type:decimal(12,2)" json:"original_price,omitempty"`
	Features      pq.StringArray `gorm:"type:text[]" json:"features"`
	ImageURL      string         `gorm:"type:text" json:"image_url,omitempty"`
	InStock       bool           `gorm:"not null;default:true" json:"in_stock"`
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ProductRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	Description   string   `json:"description" validate:"max=2000"`
	Category      string   `json:"category" validate:"max=100"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gte=0"`
	Features      []string `json:"features" validate:"max=20,dive,max=200"`
	ImageURL      string   `json:"image_url" validate:"omitempty,url"`
	InStock       *bool    `json:"in_stock"`
	IsActive      *bool    `json:"is_active"`
}

type ProductFilter struct {
	Category   string
	SearchTerm string
	ActiveOnly bool
	Page       int
	PageSize   int
}

type ProductListResponse struct {
	Products   []Product `json:"products"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
