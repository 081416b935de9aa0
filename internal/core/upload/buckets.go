package upload

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	BucketSiteImages = "site-images"
	BucketAudioFiles = "audio-files"
	BucketVideoFiles = "video-files"
	BucketCoverArt   = "cover-art"

	// placeholderObject is created by some storage consoles to keep empty folders alive
	placeholderObject = ".emptyFolderPlaceholder"
)

var (
	ErrUnknownBucket  = errors.New("unknown bucket")
	ErrTypeNotAllowed = errors.New("file type not allowed")
	ErrFileTooLarge   = errors.New("file too large")
	ErrInvalidKey     = errors.New("invalid object key")
	ErrObjectNotFound = errors.New("object not found")
)

// BucketPolicy limits what a bucket accepts.
type BucketPolicy struct {
	Name         string
	AllowedTypes []string // MIME prefixes or exact types
	MaxSize      int64
}

var bucketPolicies = map[string]BucketPolicy{
	BucketSiteImages: {Name: BucketSiteImages, AllowedTypes: []string{"image/"}, MaxSize: 10 << 20},
	BucketCoverArt:   {Name: BucketCoverArt, AllowedTypes: []string{"image/"}, MaxSize: 10 << 20},
	BucketAudioFiles: {Name: BucketAudioFiles, AllowedTypes: []string{"audio/", "application/ogg"}, MaxSize: 100 << 20},
	BucketVideoFiles: {Name: BucketVideoFiles, AllowedTypes: []string{"video/"}, MaxSize: 500 << 20},
}

// Buckets lists the bucket names in display order
func Buckets() []string {
	return []string{BucketAudioFiles, BucketVideoFiles, BucketSiteImages, BucketCoverArt}
}

func PolicyFor(bucket string) (BucketPolicy, error) {
	p, ok := bucketPolicies[bucket]
	if !ok {
		return BucketPolicy{}, fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}
	return p, nil
}

// Allows reports whether contentType matches one of the policy's types.
func (p BucketPolicy) Allows(contentType string) bool {
	for _, t := range p.AllowedTypes {
		if strings.HasSuffix(t, "/") {
			if strings.HasPrefix(contentType, t) {
				return true
			}
		} else if contentType == t {
			return true
		}
	}
	return false
}

// BucketForMediaType maps an announcement media type to its bucket.
func BucketForMediaType(mediaType string) (string, error) {
	switch mediaType {
	case "image":
		return BucketSiteImages, nil
	case "audio":
		return BucketAudioFiles, nil
	case "video":
		return BucketVideoFiles, nil
	default:
		return "", fmt.Errorf("%w for media type %q", ErrUnknownBucket, mediaType)
	}
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename keeps the base name and replaces anything outside [A-Za-z0-9._-] with '-'.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		return "file"
	}
	return name
}

// TimestampKey builds "<unix-ms>-<filename>".
func TimestampKey(now time.Time, filename string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), SanitizeFilename(filename))
}

// PrefixedKey builds "<prefix>-<unix-ms>-<filename>", e.g. thumbnails.
func PrefixedKey(prefix string, now time.Time, filename string) string {
	return prefix + "-" + TimestampKey(now, filename)
}

// SlotKey builds "<slot>-<unix-ms>.<ext>" for website image replacements.
func SlotKey(slot string, now time.Time, filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s-%d.%s", SanitizeFilename(slot), now.UnixMilli(), ext)
}

// ValidateKey rejects keys that could escape the bucket.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, "/\\") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
