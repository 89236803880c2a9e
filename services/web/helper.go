package web

import (
	"time"

	"github.com/urfave/cli"
)

const AppNameFlag = "app-name"

func RegisterHelperFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   AppNameFlag,
			Usage:  "application name shown in the page title",
			Value:  "TubeDash",
			EnvVar: "APP_NAME",
		},
	)
}

type Helper struct {
	appName string
}

func NewHelper(appName string) *Helper {
	return &Helper{
		appName: appName,
	}
}

func (s *Helper) AppName() string {
	return s.appName
}

func (s *Helper) Year() int {
	return time.Now().Year()
}

func (s *Helper) Inc(i int) int {
	return i + 1
}
