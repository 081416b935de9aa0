package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/soundzyworld/swg-site-be/internal/core/upload"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
)

const (
	DefaultAnnouncementLimit = 3
	MaxAnnouncementLimit     = 10
)

type AnnouncementService struct {
	repo     repositories.AnnouncementRepo
	uploader Uploader
	now      clock
}

func NewAnnouncementService(repo repositories.AnnouncementRepo, uploader Uploader) *AnnouncementService {
	return &AnnouncementService{repo: repo, uploader: uploader, now: time.Now}
}

// ClampLimit keeps visitor page sizes within 1..10, defaulting to 3
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultAnnouncementLimit
	}
	if limit > MaxAnnouncementLimit {
		return MaxAnnouncementLimit
	}
	return limit
}

// ListVisible returns what visitors may see, in display order
func (s *AnnouncementService) ListVisible(ctx context.Context, limit int) ([]models.Announcement, error) {
	limit = ClampLimit(limit)
	now := s.now()

	list, err := s.repo.ListVisible(ctx, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return models.VisibleAnnouncements(list, now, limit), nil
}

// Banner returns the single top announcement, or nil when there is none or the visitor dismissed it
func (s *AnnouncementService) Banner(ctx context.Context, dismissedID string) (*models.Announcement, error) {
	list, err := s.ListVisible(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 || (dismissedID != "" && list[0].ID.String() == dismissedID) {
		return nil, nil
	}
	return &list[0], nil
}

func (s *AnnouncementService) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return list, nil
}

func (s *AnnouncementService) Get(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	a, err := s.repo.GetByID(ctx, id)
	return a, translate("announcement", err)
}

func (s *AnnouncementService) Create(ctx context.Context, req *models.AnnouncementRequest, createdBy *uuid.UUID) (*models.Announcement, error) {
	a := &models.Announcement{CreatedBy: createdBy}
	if err := applyAnnouncement(a, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return a, nil
}

// Update replaces every editable field; returns the previous and new rows
func (s *AnnouncementService) Update(ctx context.Context, id uuid.UUID, req *models.AnnouncementRequest) (*models.Announcement, *models.Announcement, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	old := *current

	if err := applyAnnouncement(current, req); err != nil {
		return nil, nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, nil, fmt.Errorf("failed to update announcement: %w", err)
	}
	return &old, current, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translate("announcement", err)
	}
	return current, nil
}

func (s *AnnouncementService) Stats(ctx context.Context) (*models.AnnouncementStats, error) {
	stats, err := s.repo.Stats(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to compute announcement stats: %w", err)
	}
	return stats, nil
}

// ArchiveExpired is the scheduled sweep
func (s *AnnouncementService) ArchiveExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.ArchiveExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to archive expired announcements: %w", err)
	}
	if n > 0 {
		log.Info().Int64("count", n).Msg("🗄️ Archived expired announcements")
	}
	return n, nil
}

// UploadMedia stores an attachment in the bucket for its media type
func (s *AnnouncementService) UploadMedia(ctx context.Context, mediaType string, file *multipart.FileHeader) (*upload.UploadResult, error) {
	bucket, err := upload.BucketForMediaType(mediaType)
	if err != nil {
		return nil, invalid("media_type must be image, audio or video")
	}
	return s.uploader.UploadMultipart(ctx, bucket, "", file)
}

func applyAnnouncement(a *models.Announcement, req *models.AnnouncementRequest) error {
	title := trimSpace(req.Title)
	content := trimSpace(req.Content)
	if title == "" || content == "" {
		return invalid("title and content are required")
	}

	mediaType := trimPtr(req.MediaType)
	mediaURL := trimPtr(req.MediaURL)
	if (mediaType == nil) != (mediaURL == nil) {
		return invalid("media_type and media_url must be set together")
	}

	a.Title = title
	a.Content = content
	a.Type = orDefault(req.Type, models.AnnouncementTypeGeneral)
	a.Priority = orDefault(req.Priority, models.PriorityNormal)
	a.Status = orDefault(req.Status, models.StatusDraft)
	a.TargetAudience = orDefault(req.TargetAudience, "all")
	a.Pinned = req.Pinned
	a.MediaType = mediaType
	a.MediaURL = mediaURL
	a.ExpiresAt = req.ExpiresAt
	return nil
}
