package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

type AnnouncementRepo interface {
	Create(ctx context.Context, a *models.Announcement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error)
	List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error)
	ListVisible(ctx context.Context, now time.Time, limit int) ([]models.Announcement, error)
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, now time.Time) (*models.AnnouncementStats, error)
	ArchiveExpired(ctx context.Context, now time.Time) (int64, error)
}

// announcementOrder mirrors models.AnnouncementLess
const announcementOrder = "pinned DESC, CASE priority WHEN 'urgent' THEN 2 WHEN 'high' THEN 1 ELSE 0 END DESC, created_at DESC"

type announcementRepo struct {
	db *gorm.DB
}

func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepo {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *models.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	var a models.Announcement
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error) {
	query := r.db.WithContext(ctx).Model(&models.Announcement{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	var list []models.Announcement
	err := query.Order(announcementOrder).Find(&list).Error
	return list, err
}

func (r *announcementRepo) ListVisible(ctx context.Context, now time.Time, limit int) ([]models.Announcement, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", models.StatusPublished).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order(announcementOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var list []models.Announcement
	err := query.Find(&list).Error
	return list, err
}

func (r *announcementRepo) Update(ctx context.Context, a *models.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *announcementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.Announcement{}, id)
}

func (r *announcementRepo) Stats(ctx context.Context, now time.Time) (*models.AnnouncementStats, error) {
	var stats models.AnnouncementStats
	err := r.db.WithContext(ctx).Model(&models.Announcement{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'published' AND (expires_at IS NULL OR expires_at > ?)) AS active,
			COUNT(*) FILTER (WHERE status = 'published' AND priority = 'urgent') AS urgent,
			COUNT(*) FILTER (WHERE expires_at IS NOT NULL AND expires_at <= ?) AS expired`, now, now).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ArchiveExpired moves published announcements past expires_at to archived
func (r *announcementRepo) ArchiveExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Announcement{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", models.StatusPublished, now).
		Update("status", models.StatusArchived)
	return res.RowsAffected, res.Error
}
