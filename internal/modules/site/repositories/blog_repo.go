package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

type BlogRepo interface {
	Create(ctx context.Context, p *models.BlogPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, status string, limit int) ([]models.BlogPost, error)
	Update(ctx context.Context, p *models.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) BlogRepo {
	return &blogRepo{db: db}
}

func (r *blogRepo) Create(ctx context.Context, p *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *blogRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := r.db.WithContext(ctx).First(&p, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *blogRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BlogPost{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

// List orders by published_at then created_at, newest first
func (r *blogRepo) List(ctx context.Context, status string, limit int) ([]models.BlogPost, error) {
	query := r.db.WithContext(ctx).Order("published_at DESC NULLS LAST").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var posts []models.BlogPost
	err := query.Find(&posts).Error
	return posts, err
}

func (r *blogRepo) Update(ctx context.Context, p *models.BlogPost) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *blogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.BlogPost{}, id)
}
