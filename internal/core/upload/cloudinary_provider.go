package upload

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/dustin/go-humanize"
)

// CloudinaryProvider maps each bucket to a Cloudinary folder
type CloudinaryProvider struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewCloudinaryProvider creates a new Cloudinary provider
func NewCloudinaryProvider(cloudName, apiKey, apiSecret string) (*CloudinaryProvider, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	return &CloudinaryProvider{
		cld:       cld,
		cloudName: cloudName,
	}, nil
}

// Cloudinary keeps audio under the video resource type
func resourceTypeFor(bucket string) string {
	switch bucket {
	case BucketAudioFiles, BucketVideoFiles:
		return "video"
	default:
		return "image"
	}
}

// assetsParams lists the uploaded assets stored under bucket/.
func assetsParams(bucket string) admin.AssetsParams {
	return admin.AssetsParams{
		AssetType:    api.AssetType(resourceTypeFor(bucket)),
		DeliveryType: string(api.Upload),
		Prefix:       bucket + "/",
		MaxResults:   500,
	}
}

func publicID(key string) string {
	return strings.TrimSuffix(key, filepath.Ext(key))
}

func (p *CloudinaryProvider) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (*UploadResult, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	overwrite := true
	result, err := p.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       bucket,
		PublicID:     publicID(key),
		ResourceType: resourceTypeFor(bucket),
		Overwrite:    &overwrite,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("Cloudinary upload failed: %s", result.Error.Message)
	}

	return &UploadResult{
		URL:         result.SecureURL,
		Bucket:      bucket,
		Key:         key,
		FileName:    key,
		Size:        int64(result.Bytes),
		ContentType: contentType,
	}, nil
}

func (p *CloudinaryProvider) Delete(ctx context.Context, bucket, key string) error {
	result, err := p.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     bucket + "/" + publicID(key),
		ResourceType: resourceTypeFor(bucket),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from Cloudinary: %w", err)
	}

	switch result.Result {
	case "ok":
		return nil
	case "not found":
		return fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, key)
	default:
		return fmt.Errorf("Cloudinary delete failed: %s", result.Result)
	}
}

func (p *CloudinaryProvider) List(ctx context.Context, bucket string) ([]Object, error) {
	result, err := p.cld.Admin.Assets(ctx, assetsParams(bucket))
	if err != nil {
		return nil, fmt.Errorf("failed to list Cloudinary assets: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("Cloudinary list failed: %s", result.Error.Message)
	}

	objects := make([]Object, 0, len(result.Assets))
	for _, asset := range result.Assets {
		name := strings.TrimPrefix(asset.PublicID, bucket+"/")
		if asset.Format != "" {
			name += "." + asset.Format
		}
		objects = append(objects, Object{
			Name:      name,
			URL:       asset.SecureURL,
			Size:      int64(asset.Bytes),
			HumanSize: humanize.Bytes(uint64(asset.Bytes)),
			UpdatedAt: asset.CreatedAt,
		})
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].UpdatedAt.After(objects[j].UpdatedAt)
	})

	return objects, nil
}

func (p *CloudinaryProvider) GetURL(bucket, key string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/%s/upload/%s/%s", p.cloudName, resourceTypeFor(bucket), bucket, key)
}

func (p *CloudinaryProvider) GetProviderName() string {
	return "Cloudinary"
}
