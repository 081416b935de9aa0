package upload

import (
	"errors"
	"testing"
	"time"
)

func TestKeys(t *testing.T) {
	ts := time.UnixMilli(1700000000123)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"timestamp key", TimestampKey(ts, "My Mix (final).mp3"), "1700000000123-My-Mix-final-.mp3"},
		{"strips directories", TimestampKey(ts, "../../etc/passwd"), "1700000000123-passwd"},
		{"thumbnail key", PrefixedKey("thumb", ts, "cover.jpg"), "thumb-1700000000123-cover.jpg"},
		{"slot key", SlotKey("home-hero", ts, "Hero.JPG"), "home-hero-1700000000123.jpg"},
		{"slot key without ext", SlotKey("shop-banner", ts, "banner"), "shop-banner-1700000000123.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestValidateKey(t *testing.T) {
	for _, bad := range []string{"", ".", "..", "a/b", `a\b`} {
		if err := ValidateKey(bad); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("ValidateKey(%q) = %v, want ErrInvalidKey", bad, err)
		}
	}
	if err := ValidateKey("1700-file.png"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBucketForMediaType(t *testing.T) {
	tests := map[string]string{
		"image": BucketSiteImages,
		"audio": BucketAudioFiles,
		"video": BucketVideoFiles,
	}
	for mediaType, want := range tests {
		got, err := BucketForMediaType(mediaType)
		if err != nil || got != want {
			t.Errorf("BucketForMediaType(%q) = %q, %v; want %q", mediaType, got, err, want)
		}
	}
	if _, err := BucketForMediaType("pdf"); err == nil {
		t.Error("expected error for pdf")
	}
}

func TestPolicyAllows(t *testing.T) {
	audio, _ := PolicyFor(BucketAudioFiles)
	if !audio.Allows("audio/mpeg") || !audio.Allows("application/ogg") {
		t.Error("audio bucket should accept mp3 and ogg")
	}
	if audio.Allows("image/png") {
		t.Error("audio bucket should reject images")
	}
}

func TestCloudinaryAssetsParams(t *testing.T) {
	tests := []struct {
		bucket    string
		assetType string
	}{
		{BucketVideoFiles, "video"},
		{BucketAudioFiles, "video"},
		{BucketSiteImages, "image"},
	}
	for _, tt := range tests {
		p := assetsParams(tt.bucket)
		if string(p.AssetType) != tt.assetType {
			t.Errorf("%s: AssetType = %q, want %q", tt.bucket, p.AssetType, tt.assetType)
		}
		if p.DeliveryType != "upload" {
			t.Errorf("%s: DeliveryType = %q, want upload", tt.bucket, p.DeliveryType)
		}
		if p.Prefix != tt.bucket+"/" {
			t.Errorf("%s: Prefix = %q", tt.bucket, p.Prefix)
		}
	}
}
