package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dustin/go-humanize"
)

// S3Provider stores every logical bucket as a key prefix inside one S3 bucket
type S3Provider struct {
	client     *s3.Client
	bucketName string
	region     string
	baseURL    string // Base URL for accessing files (e.g., CloudFront)
}

// NewS3Provider creates a new AWS S3 provider
func NewS3Provider(ctx context.Context, accessKeyID, secretAccessKey, region, bucketName string) (*S3Provider, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Provider{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		region:     region,
		baseURL:    fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucketName, region),
	}, nil
}

func (p *S3Provider) objectKey(bucket, key string) string {
	return path.Join(bucket, key)
}

func (p *S3Provider) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (*UploadResult, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucketName),
		Key:         aws.String(p.objectKey(bucket, key)),
		Body:        r,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:         p.GetURL(bucket, key),
		Bucket:      bucket,
		Key:         key,
		FileName:    key,
		Size:        size,
		ContentType: contentType,
	}, nil
}

func (p *S3Provider) Delete(ctx context.Context, bucket, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucketName),
		Key:    aws.String(p.objectKey(bucket, key)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, key)
		}
		return fmt.Errorf("failed to delete from S3: %w", err)
	}

	return nil
}

func (p *S3Provider) List(ctx context.Context, bucket string) ([]Object, error) {
	prefix := bucket + "/"
	paginator := s3.NewListObjectsV2Paginator(p.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucketName),
		Prefix: aws.String(prefix),
	})

	objects := []Object{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list S3 objects: %w", err)
		}

		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			if name == "" || strings.Contains(name, "/") || name == placeholderObject {
				continue
			}
			size := aws.ToInt64(obj.Size)
			objects = append(objects, Object{
				Name:      name,
				URL:       p.GetURL(bucket, name),
				Size:      size,
				HumanSize: humanize.Bytes(uint64(size)),
				UpdatedAt: aws.ToTime(obj.LastModified),
			})
		}
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].UpdatedAt.After(objects[j].UpdatedAt)
	})

	return objects, nil
}

func (p *S3Provider) GetURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s", p.baseURL, p.objectKey(bucket, key))
}

func (p *S3Provider) GetProviderName() string {
	return "AWS S3"
}
