package models

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type AIAnalysisResult struct {
	OptimizedTitle     string   `json:"optimizedTitle"`
	Summary            string   `json:"summary"`
	SeoTags            []string `json:"seoTags"`
	ViralScore         float64  `json:"viralScore"`
	ContentSuggestions []string `json:"contentSuggestions"`
}

type analysisPayload struct {
	OptimizedTitle     *string   `json:"optimizedTitle"`
	Summary            *string   `json:"summary"`
	SeoTags            *[]string `json:"seoTags"`
	ViralScore         *float64  `json:"viralScore"`
	ContentSuggestions *[]string `json:"contentSuggestions"`
}

// ParseAIAnalysisResult decodes model output. All five fields are required,
// a missing or mistyped field fails the whole result.
func ParseAIAnalysisResult(data []byte) (*AIAnalysisResult, error) {
	var p analysisPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "failed to decode analysis")
	}
	switch {
	case p.OptimizedTitle == nil:
		return nil, errors.New("analysis missing required field: optimizedTitle")
	case p.Summary == nil:
		return nil, errors.New("analysis missing required field: summary")
	case p.SeoTags == nil:
		return nil, errors.New("analysis missing required field: seoTags")
	case p.ViralScore == nil:
		return nil, errors.New("analysis missing required field: viralScore")
	case p.ContentSuggestions == nil:
		return nil, errors.New("analysis missing required field: contentSuggestions")
	}
	return &AIAnalysisResult{
		OptimizedTitle:     *p.OptimizedTitle,
		Summary:            *p.Summary,
		SeoTags:            *p.SeoTags,
		ViralScore:         *p.ViralScore,
		ContentSuggestions: *p.ContentSuggestions,
	}, nil
}
