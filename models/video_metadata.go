package models

type VideoMetadata struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Duration     string   `json:"duration"`
	Author       string   `json:"author"`
}

// VideoInfo is the payload of the info endpoint: metadata plus the negotiated
// formats, highest resolution first and the audio entry last.
type VideoInfo struct {
	VideoMetadata
	Formats []VideoFormat `json:"formats"`
}

// MaxTags is the number of tags the info endpoint keeps.
const MaxTags = 5
