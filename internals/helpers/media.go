package helper

import (
	"fmt"
	"regexp"
	"strings"
)

// Every displayable image on the site is stored as a pair: an
// uploaded-file URL and/or an external URL, either of which may be
// empty. MediaRef makes the resolution order explicit so DTO
// converters never deal with the raw pair.

type MediaRef struct {
	FileURL     string
	ExternalURL string
	// Fallback derives a URL when both fields are empty
	// (e.g. a YouTube thumbnail from the video link).
	Fallback func() string
}

// Resolve returns the first non-empty of stored file URL, external
// URL, generated fallback, "". Total: never errors, always a string.
func (m MediaRef) Resolve() string {
	if u := strings.TrimSpace(m.FileURL); u != "" {
		return u
	}
	if u := strings.TrimSpace(m.ExternalURL); u != "" {
		return u
	}
	if m.Fallback != nil {
		return strings.TrimSpace(m.Fallback())
	}
	return ""
}

// ResolveMedia is the shorthand used by DTO converters.
func ResolveMedia(fileURL, externalURL string, fallback ...func() string) string {
	ref := MediaRef{FileURL: fileURL, ExternalURL: externalURL}
	if len(fallback) > 0 {
		ref.Fallback = fallback[0]
	}
	return ref.Resolve()
}

var youtubeIDRe = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/shorts/|youtube\.com/embed/)([^&\n?#/]+)`)

// YouTubeID extracts the video ID from watch/short/embed URL forms.
// Returns "" when the URL is not recognizable.
func YouTubeID(url string) string {
	m := youtubeIDRe.FindStringSubmatch(url)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// YouTubeThumbnail derives the hqdefault poster URL for a video link,
// or "" when no ID can be extracted.
func YouTubeThumbnail(url string) string {
	id := YouTubeID(url)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
}
