package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// LocalProvider implements file storage on the local filesystem; one directory per bucket
type LocalProvider struct {
	basePath   string // Base directory for uploads
	baseURL    string // Base URL to access files
	publicPath string // Route the API serves basePath under
}

// NewLocalProvider creates a new local file storage provider
func NewLocalProvider(basePath, baseURL string) (*LocalProvider, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalProvider{
		basePath:   basePath,
		baseURL:    strings.TrimRight(baseURL, "/"),
		publicPath: "/uploads/",
	}, nil
}

// PublicPath is the URL prefix cmd/api mounts the static file handler on
func (p *LocalProvider) PublicPath() string {
	return strings.TrimSuffix(p.publicPath, "/")
}

// Root is the directory served under PublicPath
func (p *LocalProvider) Root() string {
	return p.basePath
}

func (p *LocalProvider) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (*UploadResult, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	folderPath := filepath.Join(p.basePath, bucket)
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	filePath := filepath.Join(folderPath, key)
	out, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, r)
	if err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:         p.GetURL(bucket, key),
		Bucket:      bucket,
		Key:         key,
		FileName:    key,
		Size:        written,
		ContentType: contentType,
	}, nil
}

func (p *LocalProvider) Delete(ctx context.Context, bucket, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(p.basePath, bucket, key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, key)
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (p *LocalProvider) List(ctx context.Context, bucket string) ([]Object, error) {
	entries, err := os.ReadDir(filepath.Join(p.basePath, bucket))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Object{}, nil
		}
		return nil, fmt.Errorf("failed to list bucket: %w", err)
	}

	objects := make([]Object, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == placeholderObject {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, Object{
			Name:      entry.Name(),
			URL:       p.GetURL(bucket, entry.Name()),
			Size:      info.Size(),
			HumanSize: humanize.Bytes(uint64(info.Size())),
			UpdatedAt: info.ModTime(),
		})
	}

	// newest first
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].UpdatedAt.After(objects[j].UpdatedAt)
	})

	return objects, nil
}

func (p *LocalProvider) GetURL(bucket, key string) string {
	return p.baseURL + p.publicPath + bucket + "/" + key
}

func (p *LocalProvider) GetProviderName() string {
	return "Local Storage"
}
