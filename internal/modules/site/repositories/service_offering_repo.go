package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

type ServiceOfferingRepo interface {
	Create(ctx context.Context, s *models.ServiceOffering) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceOffering, error)
	List(ctx context.Context, category string, activeOnly bool) ([]models.ServiceOffering, error)
	Update(ctx context.Context, s *models.ServiceOffering) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceOfferingRepo struct {
	db *gorm.DB
}

func NewServiceOfferingRepo(db *gorm.DB) ServiceOfferingRepo {
	return &serviceOfferingRepo{db: db}
}

func (r *serviceOfferingRepo) Create(ctx context.Context, s *models.ServiceOffering) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *serviceOfferingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceOffering, error) {
	var s models.ServiceOffering
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serviceOfferingRepo) List(ctx context.Context, category string, activeOnly bool) ([]models.ServiceOffering, error) {
	query := r.db.WithContext(ctx).Order("sort_order ASC").Order("created_at ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var list []models.ServiceOffering
	err := query.Find(&list).Error
	return list, err
}

func (r *serviceOfferingRepo) Update(ctx context.Context, s *models.ServiceOffering) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *serviceOfferingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.ServiceOffering{}, id)
}
