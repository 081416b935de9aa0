// Package embed turns share links from video platforms into iframe-embeddable URLs.
package embed

import (
	"fmt"
	"regexp"
	"strings"
)

type VideoType string

const (
	YouTube  VideoType = "youtube"
	Facebook VideoType = "facebook"
	TikTok   VideoType = "tiktok"
	Upload   VideoType = "upload"
)

const facebookPluginPrefix = "https://www.facebook.com/plugins/video.php?href="

var (
	youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\s]+)`)
	tiktokIDPattern  = regexp.MustCompile(`tiktok\.com/@[^/]+/video/(\d+)`)
)

// ParseVideoType validates a stored video_type value.
func ParseVideoType(s string) (VideoType, error) {
	switch t := VideoType(strings.ToLower(strings.TrimSpace(s))); t {
	case YouTube, Facebook, TikTok, Upload:
		return t, nil
	default:
		return "", fmt.Errorf("unknown video type: %q", s)
	}
}

// ExtractYouTubeID returns the video id of a watch or youtu.be link.
func ExtractYouTubeID(rawURL string) (string, bool) {
	m := youtubeIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractTikTokID returns the numeric id of a tiktok.com/@user/video/<id> link.
func ExtractTikTokID(rawURL string) (string, bool) {
	m := tiktokIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Normalize rewrites rawURL to the embed form for its platform.
// Input that does not match the platform pattern is returned unchanged.
func Normalize(rawURL string, videoType VideoType) string {
	switch videoType {
	case YouTube:
		if id, ok := ExtractYouTubeID(rawURL); ok {
			return "https://www.youtube.com/embed/" + id
		}
	case Facebook:
		if rawURL == "" || strings.HasPrefix(rawURL, facebookPluginPrefix) {
			return rawURL
		}
		return facebookPluginPrefix + escapeComponent(rawURL)
	case TikTok:
		if id, ok := ExtractTikTokID(rawURL); ok {
			return "https://www.tiktok.com/embed/" + id
		}
	}
	return rawURL
}

// escapeComponent matches a browser's encodeURIComponent: alphanumerics and
// -_.!~*'() are kept, any other byte becomes %XX.
func escapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponentByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreservedComponentByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
