package web

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	HostFlag = "host"
	PortFlag = "port"
)

const DefaultPort = 8080

type Web struct {
	host string
	port int
	ln   net.Listener
	r    *gin.Engine
}

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return RegisterFlagsWithPort(f, DefaultPort)
}

func RegisterFlagsWithPort(f []cli.Flag, port int) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   HostFlag,
			Usage:  "listening host",
			Value:  "",
			EnvVar: "WEB_HOST",
		},
		cli.IntFlag{
			Name:   PortFlag,
			Usage:  "http listening port",
			Value:  port,
			EnvVar: "WEB_PORT",
		},
	)
}

func New(c *cli.Context, r *gin.Engine) (*Web, error) {
	return &Web{
		host: c.String(HostFlag),
		port: c.Int(PortFlag),
		r:    r,
	}, nil
}

func (s *Web) Serve() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "failed to web listen to tcp connection")
	}
	s.ln = ln
	log.Infof("serving Web at %v", fmt.Sprintf("http://%s", addr))
	return http.Serve(ln, s.r)
}

func (s *Web) Close() {
	log.Info("closing Web")
	defer func() {
		log.Info("Web closed")
	}()
	if s.ln != nil {
		_ = s.ln.Close()
	}
}
