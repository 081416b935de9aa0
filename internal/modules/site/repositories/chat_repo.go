package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

type ChatRepo interface {
	Append(ctx context.Context, msg *models.ChatMessage) error
	ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	ListSessions(ctx context.Context, limit, offset int) ([]models.ChatSession, int64, error)
}

type chatRepo struct {
	db *gorm.DB
}

func NewChatRepo(db *gorm.DB) ChatRepo {
	return &chatRepo{db: db}
}

func (r *chatRepo) Append(ctx context.Context, msg *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *chatRepo) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *chatRepo) ListSessions(ctx context.Context, limit, offset int) ([]models.ChatSession, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ChatMessage{}).
		Distinct("session_id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sessions []models.ChatSession
	err := r.db.WithContext(ctx).Model(&models.ChatMessage{}).
		Select("session_id, COUNT(*) AS message_count, MIN(created_at) AS first_message_at, MAX(created_at) AS last_message_at").
		Group("session_id").
		Order("last_message_at DESC").
		Limit(limit).Offset(offset).
		Scan(&sessions).Error
	return sessions, total, err
}
