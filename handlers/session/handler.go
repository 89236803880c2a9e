package session

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tubedash/web-ui/services/common"
	"github.com/tubedash/web-ui/services/web"
	"github.com/urfave/cli"
	csrf "github.com/utrack/gin-csrf"
)

const sessionName = "tubedash-session"

func RegisterHandler(c *cli.Context, r *gin.Engine) error {
	return Register(r, c.String(common.SessionSecretFlag))
}

// Register installs cookie sessions and CSRF protection for form posts.
func Register(r *gin.Engine, secret string) error {
	if secret == "" {
		return errors.New("session secret is required")
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(csrf.Middleware(csrf.Options{
		Secret: secret,
		ErrorFunc: func(c *gin.Context) {
			log.WithField("path", c.Request.URL.Path).Warn("csrf token mismatch")
			c.String(http.StatusForbidden, "CSRF token mismatch")
			c.Abort()
		},
	}))
	r.Use(func(c *gin.Context) {
		c.Set(web.CSRFKey, csrf.GetToken(c))
		c.Next()
	})
	return nil
}
