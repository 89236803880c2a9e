package models

import (
	"github.com/pkg/errors"
)

var ErrRequestInFlight = errors.New("request already in flight")

var ErrNotLoading = errors.New("no request in flight")

type DownloaderState struct {
	Status    Status
	URL       string
	Video     *VideoInfo
	Error     string
	ShowGuide bool
}

// NewDownloaderState returns the initial state. The backend guide starts open
// so the user sees the backend is required.
func NewDownloaderState() *DownloaderState {
	return &DownloaderState{
		Status:    StatusIdle,
		ShowGuide: true,
	}
}

// Start clears the previous video and error before a new fetch is issued.
func (s *DownloaderState) Start(url string) error {
	if !s.Status.IsFinished() {
		return ErrRequestInFlight
	}
	s.Status = StatusLoading
	s.URL = url
	s.Video = nil
	s.Error = ""
	return nil
}

func (s *DownloaderState) Succeed(v *VideoInfo) error {
	if s.Status != StatusLoading {
		return ErrNotLoading
	}
	s.Status = StatusSuccess
	s.Video = v
	s.ShowGuide = false
	return nil
}

func (s *DownloaderState) Fail(msg string) error {
	if s.Status != StatusLoading {
		return ErrNotLoading
	}
	s.Status = StatusError
	s.Video = nil
	s.Error = msg
	s.ShowGuide = true
	return nil
}

func (s *DownloaderState) IsLoading() bool {
	return s.Status == StatusLoading
}

type OptimizerState struct {
	Status  Status
	Title   string
	Context string
	Result  *AIAnalysisResult
}

func NewOptimizerState() *OptimizerState {
	return &OptimizerState{
		Status: StatusIdle,
	}
}

func (s *OptimizerState) Start(title, context string) error {
	if !s.Status.IsFinished() {
		return ErrRequestInFlight
	}
	s.Status = StatusLoading
	s.Title = title
	s.Context = context
	return nil
}

func (s *OptimizerState) Succeed(r *AIAnalysisResult) error {
	if s.Status != StatusLoading {
		return ErrNotLoading
	}
	s.Status = StatusSuccess
	s.Result = r
	return nil
}

// Fail drops any previous result, an errored analysis never shows stale data.
func (s *OptimizerState) Fail() error {
	if s.Status != StatusLoading {
		return ErrNotLoading
	}
	s.Status = StatusError
	s.Result = nil
	return nil
}

func (s *OptimizerState) IsLoading() bool {
	return s.Status == StatusLoading
}

func (s *OptimizerState) HasResult() bool {
	return s.Status == StatusSuccess && s.Result != nil
}
