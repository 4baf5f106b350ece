package internal

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidURL is returned when no video ID can be found in the input.
var ErrInvalidURL = errors.New("could not determine video ID from URL")

var pathIDRegex = regexp.MustCompile(`(?:embed/|v/|shorts/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID extracts the 11-character video ID from any common
// YouTube URL shape: youtu.be short links, watch pages with a v query
// parameter, and embed/v/shorts paths.
func ExtractVideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	if u.Host == "youtu.be" {
		if id := strings.TrimPrefix(u.Path, "/"); id != "" {
			return id, nil
		}
	}

	if strings.Contains(u.Path, "watch") {
		if v := u.Query().Get("v"); v != "" {
			return v, nil
		}
	}

	if m := pathIDRegex.FindStringSubmatch(rawURL); m != nil {
		return m[1], nil
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
}

// IsValidVideoID checks whether a string looks like a YouTube video ID.
func IsValidVideoID(id string) bool {
	if len(id) != 11 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
