package common

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
)

var (
	SessionSecretFlag = "secret"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	f = append(f,
		cli.StringFlag{
			Name:   SessionSecretFlag,
			Usage:  "session secret",
			Value:  "secret123",
			EnvVar: "SESSION_SECRET",
		},
	)

	return f
}

// PostForm returns the posted value as is and whether it has any
// non-whitespace content.
func PostForm(c *gin.Context, key string) (string, bool) {
	v := c.PostForm(key)
	return v, strings.TrimSpace(v) != ""
}
