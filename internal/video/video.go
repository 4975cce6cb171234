// Package video resolves direct download URLs for YouTube videos. It
// prefers muxed mp4 streams at moderate resolutions so the result plays
// everywhere without remuxing.
package video

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// ErrNoFormat is returned when no muxed stream at a supported quality
// exists for the video.
var ErrNoFormat = errors.New("no suitable video format found")

// ErrLiveContent is returned for live broadcasts, which have no finite
// downloadable stream.
var ErrLiveContent = errors.New("live streams cannot be downloaded")

// candidate is the slice of a stream format Pick needs. Keeping it local
// lets selection logic be tested without a network client.
type candidate struct {
	QualityLabel  string
	MimeType      string
	AudioChannels int
	Height        int
	Index         int
}

// Result describes a resolved download.
type Result struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Quality         string `json:"quality"`
	Container       string `json:"container"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"durationSeconds"`
}

// qualityLadder orders preferred stream qualities, best first. 720p keeps
// files small enough to hand to a class while staying readable on a
// projector.
var qualityLadder = []string{"720p", "480p", "360p"}

var containerLadder = []string{"mp4", "webm"}

// pick selects the best muxed candidate. Container wins over quality:
// every mp4 rung is tried before any webm, so a 480p mp4 beats a 720p
// webm. When no ladder entry matches the tallest muxed stream wins.
// Returns the index into the original format list, or -1 when nothing
// carries audio.
func pick(candidates []candidate) int {
	for _, container := range containerLadder {
		for _, quality := range qualityLadder {
			for _, c := range candidates {
				if c.AudioChannels == 0 {
					continue
				}
				if c.QualityLabel != quality {
					continue
				}
				if !strings.Contains(c.MimeType, "video/"+container) {
					continue
				}
				return c.Index
			}
		}
	}

	best := -1
	bestHeight := -1
	for _, c := range candidates {
		if c.AudioChannels == 0 {
			continue
		}
		if c.Height > bestHeight {
			best = c.Index
			bestHeight = c.Height
		}
	}
	return best
}

func container(mimeType string) string {
	for _, c := range containerLadder {
		if strings.Contains(mimeType, "video/"+c) {
			return c
		}
	}
	return "unknown"
}

// Fetcher resolves video metadata and stream URLs.
type Fetcher struct {
	client youtube.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch resolves url to a direct download link. Live broadcasts are
// rejected with ErrLiveContent.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	video, err := f.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("resolve video: %w", err)
	}
	if video.HLSManifestURL != "" {
		return nil, ErrLiveContent
	}

	candidates := make([]candidate, len(video.Formats))
	for i, format := range video.Formats {
		candidates[i] = candidate{
			QualityLabel:  format.QualityLabel,
			MimeType:      format.MimeType,
			AudioChannels: format.AudioChannels,
			Height:        format.Height,
			Index:         i,
		}
	}

	idx := pick(candidates)
	if idx < 0 {
		return nil, ErrNoFormat
	}
	format := &video.Formats[idx]

	streamURL, err := f.client.GetStreamURLContext(ctx, video, format)
	if err != nil {
		return nil, fmt.Errorf("resolve stream url: %w", err)
	}

	return &Result{
		Title:           video.Title,
		Author:          video.Author,
		Quality:         format.QualityLabel,
		Container:       container(format.MimeType),
		URL:             streamURL,
		DurationSeconds: int(video.Duration.Seconds()),
	}, nil
}
