package main

import (
	"net/http"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	wd "github.com/tubedash/web-ui/handlers/downloader"
	wg "github.com/tubedash/web-ui/handlers/guide"
	"github.com/tubedash/web-ui/handlers/helpers"
	wo "github.com/tubedash/web-ui/handlers/optimizer"
	sess "github.com/tubedash/web-ui/handlers/session"
	"github.com/tubedash/web-ui/services/common"
	"github.com/tubedash/web-ui/services/template"
	w "github.com/tubedash/web-ui/services/web"
	"github.com/tubedash/web-ui/templates"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = cs.RegisterPprofFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = w.RegisterHelperFlags(c.Flags)
	c.Flags = common.RegisterFlags(c.Flags)
	c.Flags = configureClients(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting template renderer
	re := multitemplate.NewRenderer()

	// Setting TemplateManager
	tm := template.NewManager[*w.Context](re, templates.FS).
		WithHelper(w.NewHelper(c.String(w.AppNameFlag))).
		WithHelper(helpers.NewMenuHelper()).
		WithHelper(helpers.NewGaugeHelper())

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Pprof
	pprof := cs.NewPprof(c)
	if pprof != nil {
		servers = append(servers, pprof)
		defer pprof.Close()
	}

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.HTMLRender = re

	// Setting Web
	web, err := w.New(c, r)
	if err != nil {
		return err
	}
	servers = append(servers, web)
	defer web.Close()

	// Setting Session
	err = sess.RegisterHandler(c, r)
	if err != nil {
		return err
	}

	// Setting Clients
	api, opt, err := makeClients(c, cl)
	if err != nil {
		return err
	}

	// Setting DownloaderHandler
	wd.RegisterHandler(r, tm, api)

	// Setting OptimizerHandler
	wo.RegisterHandler(r, tm, opt)

	// Setting GuideHandler
	wg.RegisterHandler(r)

	// Render templates
	err = tm.Init()
	if err != nil {
		return err
	}

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
