package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

type CommunityRepo interface {
	Create(ctx context.Context, p *models.CommunityPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CommunityPost, error)
	List(ctx context.Context, limit, offset int) ([]models.CommunityPostView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type communityRepo struct {
	db *gorm.DB
}

func NewCommunityRepo(db *gorm.DB) CommunityRepo {
	return &communityRepo{db: db}
}

func (r *communityRepo) Create(ctx context.Context, p *models.CommunityPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *communityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CommunityPost, error) {
	var p models.CommunityPost
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

type communityRow struct {
	models.CommunityPost
	FullName  *string
	AvatarURL *string
}

// List joins each post with its author's profile, newest first
func (r *communityRepo) List(ctx context.Context, limit, offset int) ([]models.CommunityPostView, error) {
	var rows []communityRow
	err := r.db.WithContext(ctx).
		Table("community_posts AS cp").
		Select("cp.*, p.full_name, p.avatar_url").
		Joins("LEFT JOIN profiles p ON p.id = cp.user_id").
		Order("cp.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]models.CommunityPostView, len(rows))
	for i, row := range rows {
		views[i] = models.CommunityPostView{
			CommunityPost: row.CommunityPost,
			Profiles:      models.PostAuthor{FullName: row.FullName, AvatarURL: row.AvatarURL},
		}
	}
	return views, nil
}

func (r *communityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.CommunityPost{}, id)
}
