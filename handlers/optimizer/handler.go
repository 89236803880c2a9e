package optimizer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tubedash/web-ui/models"
	"github.com/tubedash/web-ui/services/common"
	"github.com/tubedash/web-ui/services/optimizer"
	"github.com/tubedash/web-ui/services/template"
	"github.com/tubedash/web-ui/services/web"
)

var errNotConfigured = errors.New("gemini api key is not configured")

type Data struct {
	State *models.OptimizerState
}

type Handler struct {
	tb  template.Builder[*web.Context]
	opt *optimizer.Optimizer
}

// RegisterHandler wires the optimizer screen. opt may be nil when no
// API key is configured, every analysis then fails.
func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], opt *optimizer.Optimizer) {
	h := &Handler{
		tb:  tm.MustRegisterViews("optimizer").WithLayout("main"),
		opt: opt,
	}
	r.GET("/optimizer", h.index)
	r.POST("/optimizer", h.analyze)
}

func (s *Handler) index(c *gin.Context) {
	s.render(c, models.NewOptimizerState(), nil)
}

func (s *Handler) analyze(c *gin.Context) {
	state := models.NewOptimizerState()
	title, ok := common.PostForm(c, "title")
	context := c.PostForm("context")
	if !ok {
		state.Context = context
		s.render(c, state, nil)
		return
	}
	transition(state.Start(title, context))
	var (
		res *models.AIAnalysisResult
		err error
	)
	if s.opt == nil {
		err = errNotConfigured
	} else {
		res, err = s.opt.Analyze(c.Request.Context(), title, context)
	}
	if err != nil {
		log.WithError(err).Error("failed to analyze video")
		transition(state.Fail())
	} else {
		transition(state.Succeed(res))
	}
	s.render(c, state, err)
}

func (s *Handler) render(c *gin.Context, state *models.OptimizerState, err error) {
	s.tb.Build("optimizer").HTML(http.StatusOK, web.NewContext(c).WithData(&Data{
		State: state,
	}).WithErr(err))
}

func transition(err error) {
	if err != nil {
		log.WithError(err).Warn("invalid optimizer state transition")
	}
}
