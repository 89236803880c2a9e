package main

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	"github.com/tubedash/web-ui/handlers/api"
	"github.com/tubedash/web-ui/services/guide"
	w "github.com/tubedash/web-ui/services/web"
	"github.com/tubedash/web-ui/services/ytdlp"
)

func makeBackendCMD() cli.Command {
	backendCMD := cli.Command{
		Name:    "backend",
		Aliases: []string{"b"},
		Usage:   "Serves reference download backend on top of yt-dlp",
		Action:  runBackend,
	}
	configureBackend(&backendCMD)
	return backendCMD
}

func configureBackend(c *cli.Command) {
	c.Flags = w.RegisterFlagsWithPort(c.Flags, guide.Port)
	c.Flags = ytdlp.RegisterFlags(c.Flags)
}

func runBackend(c *cli.Context) error {
	// Setting yt-dlp
	yt := ytdlp.New(c)

	// Setting Gin
	r := gin.Default()

	// Setting Web
	web, err := w.New(c, r)
	if err != nil {
		return err
	}
	defer web.Close()

	// Setting ApiHandler
	api.RegisterHandler(r, yt)

	// And SERVE!
	err = cs.NewServe(web).Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
