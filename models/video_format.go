package models

type FormatType string

const (
	FormatTypeVideo FormatType = "video"
	FormatTypeAudio FormatType = "audio"
)

func (t FormatType) String() string {
	return string(t)
}

const (
	// AudioFormatID is the reserved selector of the audio-only pseudo-format.
	AudioFormatID    = "bestaudio/best"
	AudioResolution  = "Audio"
	AudioContainer   = "MP3"
	AudioSizeLabel   = "Audio Only"
	UnknownSizeLabel = "N/A"
)

type VideoFormat struct {
	ID         string     `json:"id"`
	Resolution string     `json:"resolution"`
	Format     string     `json:"format"`
	Size       string     `json:"size"`
	HasAudio   bool       `json:"hasAudio"`
	Type       FormatType `json:"type"`
}

func (f VideoFormat) IsAudio() bool {
	return f.Type == FormatTypeAudio
}

func NewAudioFormat() VideoFormat {
	return VideoFormat{
		ID:         AudioFormatID,
		Resolution: AudioResolution,
		Format:     AudioContainer,
		Size:       AudioSizeLabel,
		HasAudio:   true,
		Type:       FormatTypeAudio,
	}
}
