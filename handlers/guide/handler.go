package guide

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tubedash/web-ui/services/guide"
)

// Data feeds the backend guide panel of the downloader screen.
type Data struct {
	Filename   string
	Script     string
	ScriptURL  string
	Steps      []guide.Step
	Address    string
	BackendURL string
}

func NewData(backendURL string) *Data {
	return &Data{
		Filename:   guide.Filename,
		Script:     guide.Script(),
		ScriptURL:  "/guide/" + guide.Filename,
		Steps:      guide.Steps,
		Address:    fmt.Sprintf("http://localhost:%d", guide.Port),
		BackendURL: backendURL,
	}
}

func RegisterHandler(r *gin.Engine) {
	r.GET("/guide/"+guide.Filename, script)
}

func script(c *gin.Context) {
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%v"`, guide.Filename))
	c.Data(http.StatusOK, "text/x-python; charset=utf-8", []byte(guide.Script()))
}
