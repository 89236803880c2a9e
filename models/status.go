package models

// Status is the request lifecycle of a single flow.
type Status string

const (
	StatusIdle    Status = "IDLE"
	StatusLoading Status = "LOADING"
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
)

func (s Status) String() string {
	return string(s)
}

// IsFinished reports whether a new submission may start from this status.
func (s Status) IsFinished() bool {
	return s == StatusIdle || s == StatusSuccess || s == StatusError
}

type AppMode string

const (
	AppModeDownloader  AppMode = "DOWNLOADER"
	AppModeAIOptimizer AppMode = "AI_OPTIMIZER"
)

func (m AppMode) String() string {
	return string(m)
}
