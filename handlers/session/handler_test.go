package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tubedash/web-ui/services/web"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, Register(r, "test-secret"))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(web.CSRFKey))
	})
	r.POST("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRegister(t *testing.T) {
	r := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	token := w.Body.String()
	require.NotEmpty(t, token)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	form := url.Values{"_csrf": {token}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRegister_RejectsMissingToken(t *testing.T) {
	r := newEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("url=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegister_NoSecret(t *testing.T) {
	assert.Error(t, Register(gin.New(), ""))
}
