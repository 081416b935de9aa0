package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

type DJTapeRepo interface {
	Create(ctx context.Context, t *models.DJTape) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DJTape, error)
	List(ctx context.Context, status string) ([]models.DJTape, error)
	Update(ctx context.Context, t *models.DJTape) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type djTapeRepo struct {
	db *gorm.DB
}

func NewDJTapeRepo(db *gorm.DB) DJTapeRepo {
	return &djTapeRepo{db: db}
}

func (r *djTapeRepo) Create(ctx context.Context, t *models.DJTape) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *djTapeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.DJTape, error) {
	var t models.DJTape
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *djTapeRepo) List(ctx context.Context, status string) ([]models.DJTape, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var tapes []models.DJTape
	err := query.Find(&tapes).Error
	return tapes, err
}

func (r *djTapeRepo) Update(ctx context.Context, t *models.DJTape) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *djTapeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.DJTape{}, id)
}
