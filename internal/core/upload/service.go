package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is how much of a file is read to detect its type
const sniffLen = 3072

var now = time.Now

// Service enforces bucket policies in front of the configured provider
type Service struct {
	provider Provider
}

// NewService creates a new upload service
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Upload checks the bucket policy against the sniffed content type, then stores the file.
func (s *Service) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64) (*UploadResult, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("upload provider not configured")
	}

	policy, err := PolicyFor(bucket)
	if err != nil {
		return nil, err
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if policy.MaxSize > 0 && size > policy.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, size, policy.MaxSize)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	mtype := mimetype.Detect(head)
	contentType := mtype.String()
	if !policy.Allows(baseType(contentType)) {
		return nil, fmt.Errorf("%w: %s into %s", ErrTypeNotAllowed, contentType, bucket)
	}

	body := io.MultiReader(bytes.NewReader(head), r)
	return s.provider.Upload(ctx, bucket, key, body, size, contentType)
}

// UploadMultipart uploads a form file; an empty key becomes "<unix-ms>-<filename>".
func (s *Service) UploadMultipart(ctx context.Context, bucket, key string, fileHeader *multipart.FileHeader) (*UploadResult, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	if key == "" {
		key = TimestampKey(now(), fileHeader.Filename)
	}

	result, err := s.Upload(ctx, bucket, key, file, fileHeader.Size)
	if err != nil {
		return nil, err
	}
	result.FileName = fileHeader.Filename
	return result, nil
}

func (s *Service) Delete(ctx context.Context, bucket, key string) error {
	if _, err := PolicyFor(bucket); err != nil {
		return err
	}
	return s.provider.Delete(ctx, bucket, key)
}

func (s *Service) List(ctx context.Context, bucket string) ([]Object, error) {
	if _, err := PolicyFor(bucket); err != nil {
		return nil, err
	}
	objects, err := s.provider.List(ctx, bucket)
	if err != nil {
		return nil, err
	}

	visible := objects[:0]
	for _, o := range objects {
		if o.Name != placeholderObject {
			visible = append(visible, o)
		}
	}
	return visible, nil
}

func (s *Service) GetURL(bucket, key string) string {
	return s.provider.GetURL(bucket, key)
}

func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}

// baseType strips parameters such as "; charset=utf-8"
func baseType(contentType string) string {
	for i, c := range contentType {
		if c == ';' {
			return contentType[:i]
		}
	}
	return contentType
}
