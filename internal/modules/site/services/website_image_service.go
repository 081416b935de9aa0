package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/soundzyworld/swg-site-be/internal/core/upload"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
	"github.com/soundzyworld/swg-site-be/internal/modules/site/repositories"
	"github.com/soundzyworld/swg-site-be/internal/shared/config"
	"github.com/soundzyworld/swg-site-be/internal/shared/validation"
)

type WebsiteImageService struct {
	repo     repositories.WebsiteImageRepo
	registry *config.ImageRegistry
	uploader Uploader
	now      clock
}

func NewWebsiteImageService(repo repositories.WebsiteImageRepo, registry *config.ImageRegistry, uploader Uploader) *WebsiteImageService {
	return &WebsiteImageService{repo: repo, registry: registry, uploader: uploader, now: time.Now}
}

func validKey(key string) error {
	if err := validation.Var("key", key, "required,max=100,imagekey"); err != nil {
		return invalid("image key %q is not valid", key)
	}
	return nil
}

func (s *WebsiteImageService) Get(ctx context.Context, key string) (*models.WebsiteImage, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	img, err := s.repo.GetByKey(ctx, key)
	return img, translate("website image", err)
}

// List returns images ordered by page then section; empty page means all
func (s *WebsiteImageService) List(ctx context.Context, page string) ([]models.WebsiteImage, error) {
	list, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list website images: %w", err)
	}
	return list, nil
}

// Seed inserts every registry slot that has no row yet, pointing at the placeholder. Existing URLs are untouched.
func (s *WebsiteImageService) Seed(ctx context.Context) (*models.SeedResult, error) {
	rows := make([]models.WebsiteImage, 0, len(s.registry.Slots))
	for _, slot := range s.registry.Slots {
		rows = append(rows, s.rowFor(slot))
	}

	created, err := s.repo.InsertMissing(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to seed website images: %w", err)
	}
	log.Info().Int("created", len(created)).Int("slots", len(rows)).Msg("🌱 Website image registry seeded")

	if created == nil {
		created = []string{}
	}
	return &models.SeedResult{
		Created:  len(created),
		Existing: len(rows) - len(created),
		Keys:     created,
	}, nil
}

func (s *WebsiteImageService) rowFor(slot config.ImageSlot) models.WebsiteImage {
	return models.WebsiteImage{
		Key:         slot.Key,
		URL:         s.registry.Placeholder,
		Page:        slot.Page,
		Section:     slot.Section,
		Description: slot.Description,
	}
}

func (s *WebsiteImageService) slot(key string) (config.ImageSlot, bool) {
	for _, slot := range s.registry.Slots {
		if slot.Key == key {
			return slot, true
		}
	}
	return config.ImageSlot{}, false
}

// UpdateURL replaces the url for key. Unseeded registry slots are created first.
func (s *WebsiteImageService) UpdateURL(ctx context.Context, key string, req *models.UpdateWebsiteImageRequest) (*models.WebsiteImage, *models.WebsiteImage, error) {
	if err := validKey(key); err != nil {
		return nil, nil, err
	}
	url := trimSpace(req.URL)
	if url == "" {
		return nil, nil, invalid("url is required")
	}

	old, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		old = nil
		slot, known := s.slot(key)
		if !known {
			return nil, nil, translate("website image", err)
		}
		if _, err := s.repo.InsertMissing(ctx, []models.WebsiteImage{s.rowFor(slot)}); err != nil {
			return nil, nil, fmt.Errorf("failed to create website image: %w", err)
		}
	}

	updated, err := s.repo.UpdateURL(ctx, key, url, req.Description)
	if err != nil {
		return nil, nil, translate("website image", err)
	}
	return old, updated, nil
}

// Replace uploads file as <key>-<ms>.<ext> in site-images and points the slot at it
func (s *WebsiteImageService) Replace(ctx context.Context, key string, file *multipart.FileHeader) (*models.WebsiteImage, *models.WebsiteImage, error) {
	if err := validKey(key); err != nil {
		return nil, nil, err
	}

	result, err := s.uploader.UploadMultipart(ctx, upload.BucketSiteImages, upload.SlotKey(key, s.now(), file.Filename), file)
	if err != nil {
		return nil, nil, err
	}
	return s.UpdateURL(ctx, key, &models.UpdateWebsiteImageRequest{URL: result.URL})
}

func (s *WebsiteImageService) Delete(ctx context.Context, key string) (*models.WebsiteImage, error) {
	current, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return nil, translate("website image", err)
	}
	return current, nil
}
