package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

type VideoRepo interface {
	Create(ctx context.Context, v *models.VideoEmbed) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.VideoEmbed, error)
	List(ctx context.Context, status string) ([]models.VideoEmbed, error)
	Update(ctx context.Context, v *models.VideoEmbed) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type videoRepo struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &videoRepo{db: db}
}

func (r *videoRepo) Create(ctx context.Context, v *models.VideoEmbed) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *videoRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.VideoEmbed, error) {
	var v models.VideoEmbed
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns newest first; empty status means all
func (r *videoRepo) List(ctx context.Context, status string) ([]models.VideoEmbed, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var list []models.VideoEmbed
	err := query.Find(&list).Error
	return list, err
}

func (r *videoRepo) Update(ctx context.Context, v *models.VideoEmbed) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *videoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.VideoEmbed{}, id)
}
