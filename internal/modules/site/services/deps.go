package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/soundzyworld/swg-site-be/internal/core/notification"
	"github.com/soundzyworld/swg-site-be/internal/core/upload"
)

// Uploader is satisfied by upload.Service
type Uploader interface {
	UploadMultipart(ctx context.Context, bucket, key string, fileHeader *multipart.FileHeader) (*upload.UploadResult, error)
	Delete(ctx context.Context, bucket, key string) error
}

// Generator is satisfied by llm.Service
type Generator interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	Model() string
}

// Notifier is satisfied by notification.Service
type Notifier interface {
	NotifyAsync(alert notification.Alert)
}

type clock func() time.Time

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := trimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
