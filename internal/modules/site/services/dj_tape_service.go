package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/soundzyworld/swg-site-be/internal/core/upload"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
)

type DJTapeService struct {
	repo     repositories.DJTapeRepo
	uploader Uploader
}

func NewDJTapeService(repo repositories.DJTapeRepo, uploader Uploader) *DJTapeService {
	return &DJTapeService{repo: repo, uploader: uploader}
}

func (s *DJTapeService) ListPublished(ctx context.Context) ([]models.DJTape, error) {
	return s.list(ctx, models.StatusPublished)
}

func (s *DJTapeService) ListAll(ctx context.Context) ([]models.DJTape, error) {
	return s.list(ctx, "")
}

func (s *DJTapeService) list(ctx context.Context, status string) ([]models.DJTape, error) {
	tapes, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list DJ tapes: %w", err)
	}
	return tapes, nil
}

func (s *DJTapeService) Get(ctx context.Context, id uuid.UUID) (*models.DJTape, error) {
	t, err := s.repo.GetByID(ctx, id)
	return t, translate("DJ tape", err)
}

func (s *DJTapeService) Create(ctx context.Context, req *models.DJTapeRequest) (*models.DJTape, error) {
	t := &models.DJTape{}
	if err := applyTape(t, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create DJ tape: %w", err)
	}
	return t, nil
}

func (s *DJTapeService) Update(ctx context.Context, id uuid.UUID, req *models.DJTapeRequest) (*models.DJTape, *models.DJTape, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	old := *current

	if err := applyTape(current, req); err != nil {
		return nil, nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, nil, fmt.Errorf("failed to update DJ tape: %w", err)
	}
	return &old, current, nil
}

func (s *DJTapeService) Delete(ctx context.Context, id uuid.UUID) (*models.DJTape, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, translate("DJ tape", err)
	}
	return current, nil
}

// Upload stores a mix ("audio") in audio-files or its artwork ("cover") in cover-art
func (s *DJTapeService) Upload(ctx context.Context, kind string, file *multipart.FileHeader) (*upload.UploadResult, error) {
	var bucket string
	switch kind {
	case "", "audio":
		bucket = upload.BucketAudioFiles
	case "cover":
		bucket = upload.BucketCoverArt
	default:
		return nil, invalid("type must be audio or cover")
	}
	return s.uploader.UploadMultipart(ctx, bucket, "", file)
}

func applyTape(t *models.DJTape, req *models.DJTapeRequest) error {
	title := trimSpace(req.Title)
	audioURL := trimSpace(req.AudioURL)
	if title == "" || audioURL == "" {
		return invalid("title and audio_url are required")
	}

	t.Title = title
	t.Description = trimSpace(req.Description)
	t.Genre = trimSpace(req.Genre)
	t.AudioURL = audioURL
	t.CoverURL = trimSpace(req.CoverURL)
	t.Duration = req.Duration
	t.Tracklist = cleanList(req.Tracklist)
	t.Status = orDefault(req.Status, models.StatusDraft)
	return nil
}
