package internal

import (
	"encoding/xml"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// markupRegex strips the inline tags YouTube embeds in caption text
// (e.g. <c>, <b>, timing spans).
var markupRegex = regexp.MustCompile(`(?i)<[^>]*>`)

// ParseTimedText parses YouTube's timed-text caption XML into segments.
// Each <text> entry carries start and dur attributes in seconds; the body
// may contain HTML entities and inline markup, both of which are removed.
func ParseTimedText(data []byte) ([]Segment, error) {
	var doc struct {
		XMLName xml.Name `xml:"transcript"`
		Texts   []struct {
			Text     string `xml:",chardata"`
			Start    string `xml:"start,attr"`
			Duration string `xml:"dur,attr"`
		} `xml:"text"`
	}

	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing timed-text XML: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Texts))
	for _, entry := range doc.Texts {
		text := markupRegex.ReplaceAllString(entry.Text, "")
		text = strings.TrimSpace(html.UnescapeString(text))

		start, err := strconv.ParseFloat(entry.Start, 64)
		if err != nil {
			start = 0
		}
		duration, err := strconv.ParseFloat(entry.Duration, 64)
		if err != nil {
			duration = 0
		}

		segments = append(segments, Segment{
			Text:     text,
			Start:    start,
			Duration: duration,
		})
	}

	return segments, nil
}
