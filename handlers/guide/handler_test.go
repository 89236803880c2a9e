package guide

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tubedash/web-ui/services/guide"
)

func TestScript(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHandler(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guide/main.py", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/x-python; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, guide.Script(), w.Body.String())
}

func TestNewData(t *testing.T) {
	d := NewData("http://127.0.0.1:9000")
	assert.Equal(t, "main.py", d.Filename)
	assert.Equal(t, "/guide/main.py", d.ScriptURL)
	assert.Equal(t, "http://localhost:8000", d.Address)
	assert.Equal(t, "http://127.0.0.1:9000", d.BackendURL)
	assert.Len(t, d.Steps, 3)
}
