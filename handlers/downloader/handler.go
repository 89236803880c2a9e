package downloader

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/tubedash/web-ui/handlers/guide"
	"github.com/tubedash/web-ui/models"
	"github.com/tubedash/web-ui/services/backend"
	"github.com/tubedash/web-ui/services/common"
	"github.com/tubedash/web-ui/services/template"
	"github.com/tubedash/web-ui/services/web"
)

const connectionErrorTpl = "Could not connect to %v. Please ensure the backend Python script is running."

type Data struct {
	State *models.DownloaderState
	Guide *guide.Data
}

type Handler struct {
	tb  template.Builder[*web.Context]
	api *backend.Api
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], api *backend.Api) {
	h := &Handler{
		tb:  tm.MustRegisterViews("downloader").WithLayout("main"),
		api: api,
	}
	r.GET("/", h.index)
	r.POST("/", h.fetch)
	r.GET("/download", h.download)
}

func (s *Handler) index(c *gin.Context) {
	s.render(c, models.NewDownloaderState(), nil)
}

func (s *Handler) fetch(c *gin.Context) {
	state := models.NewDownloaderState()
	u, ok := common.PostForm(c, "url")
	if !ok {
		s.render(c, state, nil)
		return
	}
	transition(state.Start(u))
	info, err := s.api.GetInfo(c.Request.Context(), u)
	if err != nil {
		log.WithError(err).WithField("url", u).Error("failed to fetch video info")
		transition(state.Fail(fmt.Sprintf(connectionErrorTpl, s.api.URL())))
	} else {
		transition(state.Succeed(info))
	}
	s.render(c, state, err)
}

func (s *Handler) download(c *gin.Context) {
	u := c.Query("url")
	formatID := c.Query("format_id")
	if u == "" || formatID == "" {
		c.String(http.StatusBadRequest, "url and format_id are required")
		return
	}
	c.Redirect(http.StatusFound, s.api.DownloadURL(u, formatID))
}

func (s *Handler) render(c *gin.Context, state *models.DownloaderState, err error) {
	s.tb.Build("downloader").HTML(http.StatusOK, web.NewContext(c).WithData(&Data{
		State: state,
		Guide: guide.NewData(s.api.URL()),
	}).WithErr(err))
}

func transition(err error) {
	if err != nil {
		log.WithError(err).Warn("invalid downloader state transition")
	}
}
