package upload

import (
	"context"
	"io"
	"time"
)

// UploadResult represents the result of a file upload
type UploadResult struct {
	URL         string `json:"url"`    // Public URL to access the file
	Bucket      string `json:"bucket"` // Logical bucket, e.g. site-images
	Key         string `json:"key"`    // Object name inside the bucket
	FileName    string `json:"file_name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Object is one stored file as shown in the media library
type Object struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	HumanSize string    `json:"human_size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Provider defines the interface for file storage backends.
// Every backend maps a logical bucket to a folder or key prefix.
type Provider interface {
	// Upload stores r under bucket/key and returns its public URL
	Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (*UploadResult, error)

	// Delete removes bucket/key
	Delete(ctx context.Context, bucket, key string) error

	// List returns every object in the bucket
	List(ctx context.Context, bucket string) ([]Object, error)

	// GetURL gets the public URL for bucket/key without touching storage
	GetURL(bucket, key string) string

	GetProviderName() string
}
