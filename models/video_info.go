package models

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type videoInfoPayload struct {
	Title        *string        `json:"title"`
	Description  string         `json:"description"`
	Tags         []string       `json:"tags"`
	ThumbnailURL string         `json:"thumbnailUrl"`
	Duration     string         `json:"duration"`
	Author       string         `json:"author"`
	Formats      *[]VideoFormat `json:"formats"`
}

// ParseVideoInfo decodes an info endpoint payload. Title and formats are
// required and every format needs an id.
func ParseVideoInfo(data []byte) (*VideoInfo, error) {
	var p videoInfoPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "failed to decode video info")
	}
	switch {
	case p.Title == nil:
		return nil, errors.New("video info missing required field: title")
	case p.Formats == nil:
		return nil, errors.New("video info missing required field: formats")
	}
	for i, f := range *p.Formats {
		if f.ID == "" {
			return nil, errors.Errorf("video info format %d has no id", i)
		}
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &VideoInfo{
		VideoMetadata: VideoMetadata{
			Title:        *p.Title,
			Description:  p.Description,
			Tags:         tags,
			ThumbnailURL: p.ThumbnailURL,
			Duration:     p.Duration,
			Author:       p.Author,
		},
		Formats: *p.Formats,
	}, nil
}
