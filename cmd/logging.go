package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-nextweek-raytracer/pkg/log"
)

var logger = log.New("raytracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	if level := ctx.GlobalString("log-level"); level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			logger.Warningf("%v, keeping %v", err, log.GetLevel())
			return
		}
		log.SetLevel(parsed)
	}
}
