package negotiation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tubedash/web-ui/models"
)

// Container is the only extension offered as a video format.
const Container = "mp4"

// Negotiate turns extractor output into the info endpoint payload.
//
// Only Container formats are kept. They are ordered by height, highest first,
// and for every distinct height the largest candidate wins. Formats without a
// height are dropped. A single audio-only entry is always appended last.
func Negotiate(raw *RawInfo) *models.VideoInfo {
	candidates := make([]RawFormat, 0, len(raw.Formats))
	for _, f := range raw.Formats {
		if f.Ext == Container {
			candidates = append(candidates, f)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		hi, hj := candidates[i].height(), candidates[j].height()
		if hi != hj {
			return hi > hj
		}
		return candidates[i].size() > candidates[j].size()
	})

	formats := []models.VideoFormat{}
	seen := map[int]bool{}
	for _, f := range candidates {
		h := f.height()
		if h == 0 || seen[h] {
			continue
		}
		seen[h] = true
		formats = append(formats, models.VideoFormat{
			ID:         f.FormatID,
			Resolution: fmt.Sprintf("%dp", h),
			Format:     strings.ToUpper(f.Ext),
			Size:       FormatSize(f.size()),
			HasAudio:   f.hasAudio(),
			Type:       models.FormatTypeVideo,
		})
	}
	formats = append(formats, models.NewAudioFormat())

	tags := raw.Tags
	if len(tags) > models.MaxTags {
		tags = tags[:models.MaxTags]
	}
	if tags == nil {
		tags = []string{}
	}

	return &models.VideoInfo{
		VideoMetadata: models.VideoMetadata{
			Title:        raw.Title,
			Description:  raw.Description,
			Tags:         tags,
			ThumbnailURL: raw.Thumbnail,
			Duration:     raw.DurationString,
			Author:       raw.Uploader,
		},
		Formats: formats,
	}
}
