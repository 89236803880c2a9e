package main

import (
	"net/http"

	"github.com/tubedash/web-ui/services/backend"
	"github.com/tubedash/web-ui/services/optimizer"
	"github.com/urfave/cli"
)

func configureClients(f []cli.Flag) []cli.Flag {
	f = backend.RegisterFlags(f)
	f = optimizer.RegisterFlags(f)
	return f
}

func makeClients(c *cli.Context, cl *http.Client) (*backend.Api, *optimizer.Optimizer, error) {
	// Setting Download Backend
	api := backend.New(c, cl)

	// Setting Optimizer
	opt, err := optimizer.New(c, cl)
	if err != nil {
		return nil, nil, err
	}
	return api, opt, nil
}
