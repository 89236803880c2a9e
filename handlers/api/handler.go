package api

import (
	"context"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/tubedash/web-ui/services/negotiation"
	"github.com/tubedash/web-ui/services/ytdlp"
)

// Extractor resolves metadata and performs downloads for the reference backend.
type Extractor interface {
	Info(ctx context.Context, url string) (*negotiation.RawInfo, error)
	Download(ctx context.Context, url string, formatID string) (*ytdlp.File, error)
}

type Handler struct {
	ex Extractor
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func RegisterHandler(r *gin.Engine, ex Extractor) {
	h := &Handler{
		ex: ex,
	}
	gr := r.Group("/api")
	gr.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))
	gr.GET("/info", h.info)
	gr.GET("/download", h.download)
}

func (s *Handler) info(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, &errorResponse{Detail: "url is required"})
		return
	}
	raw, err := s.ex.Info(c.Request.Context(), url)
	if err != nil {
		log.WithError(err).WithField("url", url).Error("failed to get video info")
		c.JSON(http.StatusBadRequest, &errorResponse{Detail: err.Error()})
		return
	}
	c.JSON(http.StatusOK, negotiation.Negotiate(raw))
}

func (s *Handler) download(c *gin.Context) {
	url := c.Query("url")
	formatID := c.Query("format_id")
	if url == "" || formatID == "" {
		c.JSON(http.StatusBadRequest, &errorResponse{Detail: "url and format_id are required"})
		return
	}
	f, err := s.ex.Download(c.Request.Context(), url, formatID)
	if err != nil {
		log.WithError(err).WithField("url", url).WithField("format_id", formatID).Error("failed to download")
		c.JSON(http.StatusInternalServerError, &errorResponse{Detail: err.Error()})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to remove download")
		}
	}()
	log.Infof("sending %v (%v)", f.Filename, humanize.Bytes(uint64(f.Size)))
	c.Header("Content-Type", "application/octet-stream")
	c.FileAttachment(f.Path, f.Filename)
}
