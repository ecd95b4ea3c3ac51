package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		elapsed  int64
		expected string
	}{
		{elapsed: -30, expected: "just now"},
		{elapsed: 0, expected: "just now"},
		{elapsed: 59, expected: "just now"},
		{elapsed: 3599, expected: "just now"},
		{elapsed: 3600, expected: "1 hour ago"},
		{elapsed: 7200, expected: "2 hours ago"},
		{elapsed: 86399, expected: "23 hours ago"},
		{elapsed: 86400, expected: "1 day ago"},
		{elapsed: 604800, expected: "1 week ago"},
		{elapsed: 2 * 604800, expected: "2 weeks ago"},
		{elapsed: 2592000, expected: "1 month ago"},
		{elapsed: 11 * 2592000, expected: "11 months ago"},
		{elapsed: 31536000, expected: "1 year ago"},
		{elapsed: 3 * 31536000, expected: "3 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, RelativeTime(tt.elapsed))
		})
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2 days ago", TimeAgo(now, now.Add(-50*time.Hour)))
	assert.Equal(t, "just now", TimeAgo(now, now.Add(-10*time.Minute)))
	assert.Equal(t, "just now", TimeAgo(now, now.Add(time.Hour)))
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		kb       int
		expected string
	}{
		{kb: 0, expected: "0 KB"},
		{kb: 500, expected: "500 KB"},
		{kb: 1023, expected: "1023 KB"},
		{kb: 1024, expected: "1.0 MB"},
		{kb: 1536, expected: "1.5 MB"},
		{kb: 2048, expected: "2.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSize(tt.kb))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "60.0", Percent(300, 500))
	assert.Equal(t, "33.3", Percent(1, 3))
	assert.Equal(t, "100.0", Percent(7, 7))
	assert.Equal(t, "0.0", Percent(0, 0))
}

func TestPalette(t *testing.T) {
	palette := DefaultPalette()

	assert.Equal(t, 20, palette.Len())
	assert.Equal(t, "#00ADD8", palette.Color("Go"))
	assert.Equal(t, "#178600", palette.Color("C#"))
	assert.Equal(t, FallbackColor, palette.Color("Brainfuck"))
	assert.Equal(t, FallbackColor, palette.Color(""))
	assert.Equal(t, FallbackColor, Palette{}.Color("Go"))

	colors := map[string]string{"Go": "#000000"}
	custom := NewPalette(colors)
	colors["Go"] = "#ffffff"
	assert.Equal(t, "#000000", custom.Color("Go"))
}
