package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded")
	}
	app := cli.NewApp()
	app.Name = "tubedash"
	app.Usage = "video downloader and metadata optimizer"
	app.Version = "0.0.1"
	configure(app)
	err := app.Run(os.Args)
	if err != nil {
		log.WithError(err).Fatal("failed to run application")
	}
}
