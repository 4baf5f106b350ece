package internal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
)

const playerEndpoint = "https://www.youtube.com/youtubei/v1/player"

// InnertubeProvider is the primary transcript source. It queries the
// player API directly, which is faster than scraping the watch page but
// does not expose automatic captions for every video.
type InnertubeProvider struct {
	fetcher PageFetcher
}

func NewInnertubeProvider(fetcher PageFetcher) *InnertubeProvider {
	return &InnertubeProvider{fetcher: fetcher}
}

func (p *InnertubeProvider) Name() string { return "innertube" }

type playerRequest struct {
	Context struct {
		Client struct {
			ClientName        string `json:"clientName"`
			ClientVersion     string `json:"clientVersion"`
			AndroidSDKVersion int    `json:"androidSdkVersion"`
		} `json:"client"`
	} `json:"context"`
	VideoID string `json:"videoId"`
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions     *captionTracklist `json:"captions"`
	VideoDetails struct {
		Title string `json:"title"`
	} `json:"videoDetails"`
}

func (p *InnertubeProvider) Fetch(ctx context.Context, videoID string, langs []string) (*Transcript, error) {
	var req playerRequest
	req.Context.Client.ClientName = "ANDROID"
	req.Context.Client.ClientVersion = "20.10.38"
	req.Context.Client.AndroidSDKVersion = 30
	req.VideoID = videoID

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding player request: %w", err)
	}

	data, err := p.fetcher.PostJSON(ctx, playerEndpoint, body)
	if err != nil {
		return nil, fmt.Errorf("querying player API: %w", err)
	}

	var resp playerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding player response: %w", err)
	}

	if resp.PlayabilityStatus.Status != "" && resp.PlayabilityStatus.Status != "OK" {
		return nil, fmt.Errorf("video not playable (%s): %s",
			resp.PlayabilityStatus.Status, resp.PlayabilityStatus.Reason)
	}

	// Captions disabled for this video entirely.
	if resp.Captions == nil {
		return nil, fmt.Errorf("captions disabled for %s: %w", videoID, ErrNoTranscript)
	}

	track, ok := selectByLanguage(resp.Captions.Renderer.CaptionTracks, langs)
	if !ok {
		return nil, fmt.Errorf("no track for languages %v: %w", langs, ErrNoTranscript)
	}

	log.Debug("selected caption track", "provider", p.Name(), "code", track.code())
	xmlData, err := p.fetcher.Get(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("fetching caption track: %w", err)
	}

	segments, err := ParseTimedText(xmlData)
	if err != nil {
		return nil, err
	}

	return &Transcript{
		VideoID:  videoID,
		Title:    resp.VideoDetails.Title,
		Language: track.LanguageCode,
		Segments: segments,
	}, nil
}

// selectByLanguage picks the first track matching the language preference
// order by languageCode, ignoring whether it is human-authored or
// automatic.
func selectByLanguage(tracks []captionTrack, langs []string) (captionTrack, bool) {
	for _, lang := range langs {
		for _, track := range tracks {
			if track.LanguageCode == lang {
				return track, true
			}
		}
	}
	return captionTrack{}, false
}
