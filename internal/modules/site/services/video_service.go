package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/soundzyworld/swg-site-be/internal/core/embed"
	"github.com/soundzyworld/swg-site-be/internal/core/upload"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
)

type VideoService struct {
	repo     repositories.VideoRepo
	layout   *LayoutService
	uploader Uploader
	now      clock
}

// NewVideoService; layout may be nil to skip layout hints
func NewVideoService(repo repositories.VideoRepo, layout *LayoutService, uploader Uploader) *VideoService {
	return &VideoService{repo: repo, layout: layout, uploader: uploader, now: time.Now}
}

func (s *VideoService) ListActive(ctx context.Context) ([]models.VideoEmbed, error) {
	return s.list(ctx, models.VideoStatusActive)
}

func (s *VideoService) ListAll(ctx context.Context) ([]models.VideoEmbed, error) {
	return s.list(ctx, "")
}

func (s *VideoService) list(ctx context.Context, status string) ([]models.VideoEmbed, error) {
	list, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return list, nil
}

func (s *VideoService) Get(ctx context.Context, id uuid.UUID) (*models.VideoEmbed, error) {
	v, err := s.repo.GetByID(ctx, id)
	return v, translate("video", err)
}

func (s *VideoService) Create(ctx context.Context, req *models.VideoRequest) (*models.VideoEmbed, error) {
	v := &models.VideoEmbed{}
	if err := s.apply(ctx, v, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return v, nil
}

func (s *VideoService) Update(ctx context.Context, id uuid.UUID, req *models.VideoRequest) (*models.VideoEmbed, *models.VideoEmbed, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	old := *current

	if err := s.apply(ctx, current, req); err != nil {
		return nil, nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, nil, fmt.Errorf("failed to update video: %w", err)
	}
	return &old, current, nil
}

func (s *VideoService) Delete(ctx context.Context, id uuid.UUID) (*models.VideoEmbed, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translate("video", err)
	}
	return current, nil
}

// apply normalizes the URL and attaches a layout hint; an existing hint is kept when none is generated
func (s *VideoService) apply(ctx context.Context, v *models.VideoEmbed, req *models.VideoRequest) error {
	videoType, err := embed.ParseVideoType(req.VideoType)
	if err != nil {
		return invalid("video_type must be youtube, facebook, tiktok or upload")
	}
	title := trimSpace(req.Title)
	rawURL := trimSpace(req.VideoURL)
	if title == "" || rawURL == "" {
		return invalid("title and video_url are required")
	}

	v.Title = title
	v.Description = trimPtr(req.Description)
	v.VideoType = string(videoType)
	v.VideoURL = embed.Normalize(rawURL, videoType)
	v.ThumbnailURL = trimPtr(req.ThumbnailURL)
	v.Duration = req.Duration
	v.Status = orDefault(req.Status, models.VideoStatusActive)

	hint := s.layout.Hint(ctx, "video", map[string]interface{}{
		"title":         v.Title,
		"description":   v.Description,
		"video_type":    v.VideoType,
		"video_url":     v.VideoURL,
		"thumbnail_url": v.ThumbnailURL,
		"status":        v.Status,
	})
	if hint != nil {
		v.UIVariant = hint
	}
	return nil
}

// UploadVideoFile stores a video for video_type=upload
func (s *VideoService) UploadVideoFile(ctx context.Context, file *multipart.FileHeader) (*upload.UploadResult, error) {
	return s.uploader.UploadMultipart(ctx, upload.BucketVideoFiles, "", file)
}

// UploadThumbnail stores a thumbnail as thumb-<ms>-<name> in site-images
func (s *VideoService) UploadThumbnail(ctx context.Context, file *multipart.FileHeader) (*upload.UploadResult, error) {
	key := upload.PrefixedKey("thumb", s.now(), file.Filename)
	return s.uploader.UploadMultipart(ctx, upload.BucketSiteImages, key, file)
}
