package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "short link",
			url:      "https://youtu.be/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "watch page",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "watch page with extra params",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "embed path",
			url:      "https://www.youtube.com/embed/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "v path",
			url:      "https://www.youtube.com/v/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "shorts path",
			url:      "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "surrounding whitespace",
			url:      "  https://youtu.be/dQw4w9WgXcQ \n",
			expected: "dQw4w9WgXcQ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractVideoID(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestExtractVideoIDInvalid(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "no identifier", url: "https://www.youtube.com/feed/subscriptions"},
		{name: "plain text", url: "not a url at all"},
		{name: "embed without id", url: "https://www.youtube.com/embed/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractVideoID(tt.url)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidURL)
			if tt.url != "" {
				assert.Contains(t, err.Error(), tt.url)
			}
		})
	}
}

func TestIsValidVideoID(t *testing.T) {
	assert.True(t, IsValidVideoID("dQw4w9WgXcQ"))
	assert.True(t, IsValidVideoID("abc_def-123"))
	assert.False(t, IsValidVideoID("too-short"))
	assert.False(t, IsValidVideoID("way-too-long-for-an-id"))
	assert.False(t, IsValidVideoID("dQw4w9WgXc!"))
}
