package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tubedash/web-ui/models"
	"github.com/urfave/cli"
)

const (
	backendURLFlag = "backend-url"
)

const DefaultURL = "http://localhost:8000"

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   backendURLFlag,
			Usage:  "download backend url",
			EnvVar: "BACKEND_URL",
			Value:  DefaultURL,
		},
	)
}

// Api talks to the download backend: an external process exposing
// /api/info and /api/download.
type Api struct {
	url string
	cl  *http.Client
}

func New(c *cli.Context, cl *http.Client) *Api {
	return NewApi(c.String(backendURLFlag), cl)
}

func NewApi(u string, cl *http.Client) *Api {
	u = strings.TrimSuffix(u, "/")
	if u == "" {
		u = DefaultURL
	}
	log.Infof("download backend endpoint %v", u)
	return &Api{
		url: u,
		cl:  cl,
	}
}

func (api *Api) URL() string {
	return api.url
}

// GetInfo requests metadata and available formats for videoURL. Formats are
// returned in backend order.
func (api *Api) GetInfo(ctx context.Context, videoURL string) (*models.VideoInfo, error) {
	if videoURL == "" {
		return nil, errors.New("url is required")
	}
	reqURL := fmt.Sprintf("%s/api/info?url=%s", api.url, url.QueryEscape(videoURL))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := api.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	info, err := models.ParseVideoInfo(body)
	if err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	return info, nil
}

// DownloadURL builds the address the browser is sent to for a download. The
// format selector is passed through verbatim.
func (api *Api) DownloadURL(videoURL string, formatID string) string {
	return fmt.Sprintf("%s/api/download?url=%s&format_id=%s",
		api.url, url.QueryEscape(videoURL), url.QueryEscape(formatID))
}
