package main

import (
	"github.com/urfave/cli"
)

func configure(app *cli.App) {
	serveCMD := makeServeCMD()
	backendCMD := makeBackendCMD()
	app.Commands = []cli.Command{serveCMD, backendCMD}
}
