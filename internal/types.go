package internal

// Segment is one timed spoken-text unit of a transcript.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript holds the full ordered caption data for one video.
// Title and Language are best-effort: the scraping provider fills them
// when the page exposes them, writers tolerate empty values.
type Transcript struct {
	VideoID  string
	Title    string
	Language string
	Segments []Segment
}

// DocumentTitle returns the heading used by the PDF writer.
func (t *Transcript) DocumentTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return "Transcript " + t.VideoID
}
