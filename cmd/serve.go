package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/df07/go-nextweek-raytracer/pkg/config"
	"github.com/df07/go-nextweek-raytracer/web/server"
)

// ServeWeb starts the progressive render server and blocks until interrupted.
func ServeWeb(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := config.Load(ctx.GlobalString("env"))
	if err != nil {
		return err
	}
	if dir := ctx.String("textures"); dir != "" {
		cfg.TextureDir = dir
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return server.NewServer(ctx.Int("port"), cfg).Start(runCtx)
}
