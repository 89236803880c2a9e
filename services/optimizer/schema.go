package optimizer

import "google.golang.org/genai"

const (
	DefaultModel      = "gemini-3-flash-preview"
	responseMIMEType  = "application/json"
	systemInstruction = "You are an expert YouTube content strategist and SEO specialist."
)

var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"optimizedTitle": {
			Type:        genai.TypeString,
			Description: "A catchy, SEO-optimized title for the video.",
		},
		"summary": {
			Type:        genai.TypeString,
			Description: "A concise 2-sentence summary of what the video is likely about.",
		},
		"seoTags": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "5-7 high-ranking SEO tags.",
		},
		"viralScore": {
			Type:        genai.TypeNumber,
			Description: "A predicted viral score from 0 to 100.",
		},
		"contentSuggestions": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "3 suggestions to improve the video description or metadata.",
		},
	},
	Required: []string{"optimizedTitle", "summary", "seoTags", "viralScore", "contentSuggestions"},
}

func generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType:  responseMIMEType,
		ResponseSchema:    analysisSchema,
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}
}
