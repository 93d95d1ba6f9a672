package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMediaOrder(t *testing.T) {
	fallback := func() string { return "fallback.jpg" }

	assert.Equal(t, "file.jpg", ResolveMedia("file.jpg", "ext.jpg", fallback))
	assert.Equal(t, "ext.jpg", ResolveMedia("", "ext.jpg", fallback))
	assert.Equal(t, "fallback.jpg", ResolveMedia("", "", fallback))
	assert.Equal(t, "", ResolveMedia("", ""))
}

func TestResolveMediaTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "ext.jpg", ResolveMedia("   ", "ext.jpg"))
	assert.Equal(t, "file.jpg", ResolveMedia(" file.jpg ", "ext.jpg"))
}

func TestResolveMediaNeverPanicsWithoutFallback(t *testing.T) {
	ref := MediaRef{FileURL: "", ExternalURL: ""}
	assert.Equal(t, "", ref.Resolve())
}

func TestYouTubeID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":       "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                      "dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ":        "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":         "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s": "dQw4w9WgXcQ",
		"https://example.com/video.mp4":                     "",
		"": "",
	}
	for url, want := range cases {
		assert.Equal(t, want, YouTubeID(url), url)
	}
}

func TestYouTubeThumbnail(t *testing.T) {
	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		YouTubeThumbnail("https://youtu.be/dQw4w9WgXcQ"))
	assert.Equal(t, "", YouTubeThumbnail("not a url"))
}
