package optimizer

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tubedash/web-ui/models"
	"google.golang.org/genai"
)

// Generator is the part of the genai models API the optimizer needs.
// *genai.Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config is supplied once at startup and injected into the optimizer.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Optimizer struct {
	gen   Generator
	model string
}

// NewOptimizer builds a Gemini client from cfg.
func NewOptimizer(ctx context.Context, cfg Config, cl *http.Client) (*Optimizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("api key is required")
	}
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cl,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}
	return NewWithGenerator(client.Models, cfg.Model), nil
}

func NewWithGenerator(gen Generator, model string) *Optimizer {
	if model == "" {
		model = DefaultModel
	}
	return &Optimizer{
		gen:   gen,
		model: model,
	}
}

func (s *Optimizer) Model() string {
	return s.model
}

func buildPrompt(title string, context string) string {
	return fmt.Sprintf(`
Analyze the following video topic/title and context to generate optimized metadata.

Video Title: "%s"
Additional Context: "%s"

Provide a viral-worthy title, a short summary, effective tags, and a viral potential score.
`, title, context)
}

// Analyze asks the model for metadata of a video titled title. Either the full
// result is returned or an error, never a partial result.
func (s *Optimizer) Analyze(ctx context.Context, title string, context string) (*models.AIAnalysisResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title is required")
	}
	resp, err := s.gen.GenerateContent(ctx, s.model, genai.Text(buildPrompt(title, context)), generateConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate content")
	}
	if resp == nil {
		return nil, errors.New("no response from model")
	}
	text := resp.Text()
	if text == "" {
		return nil, errors.New("no response from model")
	}
	res, err := models.ParseAIAnalysisResult([]byte(text))
	if err != nil {
		return nil, err
	}
	log.WithField("model", s.model).
		WithField("viral_score", res.ViralScore).
		Debug("analysis generated")
	return res, nil
}
