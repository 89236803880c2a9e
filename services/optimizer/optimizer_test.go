package optimizer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const breadResult = `{
	"optimizedTitle": "Bake Bakery-Level Bread at Home (No Mixer!)",
	"summary": "A step by step guide to a simple crusty loaf. Viewers learn kneading, proofing and baking.",
	"seoTags": ["bread", "baking", "homemade bread", "easy recipe", "sourdough", "kitchen tips"],
	"viralScore": 64,
	"contentSuggestions": ["Add timestamps", "Show the final crumb in the thumbnail", "Link the printable recipe"]
}`

type fakeGenerator struct {
	calls  int32
	model  string
	prompt string
	config *genai.GenerateContentConfig
	resp   *genai.GenerateContentResponse
	err    error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	atomic.AddInt32(&f.calls, 1)
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role:  genai.RoleModel,
					Parts: []*genai.Part{{Text: text}},
				},
			},
		},
	}
}

func TestOptimizer_Analyze(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse(breadResult)}
	o := NewWithGenerator(gen, "")

	res, err := o.Analyze(context.Background(), "How to bake bread", "")
	require.NoError(t, err)

	assert.Equal(t, int32(1), gen.calls)
	assert.Equal(t, DefaultModel, gen.model)
	assert.Contains(t, gen.prompt, `Video Title: "How to bake bread"`)
	assert.Contains(t, gen.prompt, `Additional Context: ""`)

	require.NotNil(t, gen.config)
	assert.Equal(t, "application/json", gen.config.ResponseMIMEType)
	require.NotNil(t, gen.config.ResponseSchema)
	assert.ElementsMatch(t,
		[]string{"optimizedTitle", "summary", "seoTags", "viralScore", "contentSuggestions"},
		gen.config.ResponseSchema.Required)
	require.NotNil(t, gen.config.SystemInstruction)
	assert.Contains(t, gen.config.SystemInstruction.Parts[0].Text, "YouTube content strategist")

	assert.Equal(t, "Bake Bakery-Level Bread at Home (No Mixer!)", res.OptimizedTitle)
	assert.Len(t, res.SeoTags, 6)
	assert.Equal(t, 64.0, res.ViralScore)
	assert.Len(t, res.ContentSuggestions, 3)
}

func TestOptimizer_Analyze_Failures(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{name: "api error", gen: &fakeGenerator{err: errors.New("API key not valid")}},
		{name: "nil response", gen: &fakeGenerator{}},
		{name: "no candidates", gen: &fakeGenerator{resp: &genai.GenerateContentResponse{}}},
		{name: "empty text", gen: &fakeGenerator{resp: textResponse("")}},
		{name: "not json", gen: &fakeGenerator{resp: textResponse("I cannot help with that.")}},
		{name: "missing field", gen: &fakeGenerator{resp: textResponse(`{"optimizedTitle":"x","summary":"y"}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewWithGenerator(tt.gen, "m").Analyze(context.Background(), "title", "ctx")
			assert.Error(t, err)
			assert.Nil(t, res)
		})
	}
}

func TestOptimizer_Analyze_EmptyTitle(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse(breadResult)}
	_, err := NewWithGenerator(gen, "").Analyze(context.Background(), "   ", "context")
	assert.Error(t, err)
	assert.Equal(t, int32(0), gen.calls)
}

func TestNewOptimizer_GeminiAPI(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": breadResult}},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	o, err := NewOptimizer(context.Background(), Config{
		APIKey:  "test-key",
		Model:   "gemini-test",
		BaseURL: srv.URL,
	}, srv.Client())
	require.NoError(t, err)

	res, err := o.Analyze(context.Background(), "How to bake bread", "beginners")
	require.NoError(t, err)
	assert.Equal(t, 64.0, res.ViralScore)

	assert.True(t, strings.HasSuffix(gotPath, "models/gemini-test:generateContent"), gotPath)
	assert.Equal(t, "test-key", gotKey)
	body, err := json.Marshal(gotBody)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"responseMimeType":"application/json"`)
	assert.Contains(t, string(body), "How to bake bread")
}

func TestNewOptimizer_NoKey(t *testing.T) {
	o, err := NewOptimizer(context.Background(), Config{}, http.DefaultClient)
	assert.Error(t, err)
	assert.Nil(t, o)
}
