package optimizer

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	apiKeyFlag  = "gemini-api-key"
	modelFlag   = "gemini-model"
	baseURLFlag = "gemini-base-url"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   apiKeyFlag,
			Usage:  "gemini api key",
			Value:  "",
			EnvVar: "API_KEY,GEMINI_API_KEY",
		},
		cli.StringFlag{
			Name:   modelFlag,
			Usage:  "gemini model",
			Value:  DefaultModel,
			EnvVar: "GEMINI_MODEL",
		},
		cli.StringFlag{
			Name:   baseURLFlag,
			Usage:  "gemini api base url",
			Value:  "",
			EnvVar: "GEMINI_BASE_URL",
		},
	)
}

func ConfigFromCLI(c *cli.Context) Config {
	return Config{
		APIKey:  c.String(apiKeyFlag),
		Model:   c.String(modelFlag),
		BaseURL: c.String(baseURLFlag),
	}
}

// New returns nil when no api key is configured, every analysis then ends in
// the error state.
func New(c *cli.Context, cl *http.Client) (*Optimizer, error) {
	cfg := ConfigFromCLI(c)
	if cfg.APIKey == "" {
		log.Warn("gemini api key not set, ai optimizer disabled")
		return nil, nil
	}
	o, err := NewOptimizer(context.Background(), cfg, cl)
	if err != nil {
		return nil, err
	}
	log.Infof("gemini model %v", o.Model())
	return o, nil
}
