package negotiation

// RawFormat is a format entry of `yt-dlp -J` output.
type RawFormat struct {
	FormatID       string   `json:"format_id"`
	Ext            string   `json:"ext"`
	Height         *float64 `json:"height"`
	Filesize       *float64 `json:"filesize"`
	FilesizeApprox *float64 `json:"filesize_approx"`
	ACodec         *string  `json:"acodec"`
}

func (f *RawFormat) height() int {
	if f.Height == nil {
		return 0
	}
	return int(*f.Height)
}

func (f *RawFormat) size() float64 {
	if f.Filesize != nil && *f.Filesize > 0 {
		return *f.Filesize
	}
	if f.FilesizeApprox != nil {
		return *f.FilesizeApprox
	}
	return 0
}

func (f *RawFormat) hasAudio() bool {
	return f.ACodec == nil || *f.ACodec != "none"
}

// RawInfo is the subset of `yt-dlp -J` output the info endpoint needs.
type RawInfo struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Thumbnail      string      `json:"thumbnail"`
	DurationString string      `json:"duration_string"`
	Uploader       string      `json:"uploader"`
	Tags           []string    `json:"tags"`
	Formats        []RawFormat `json:"formats"`
}
