package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-nextweek-raytracer/cmd"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "nextweek"
	app.Usage = "render scenes with a progressive CPU path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, notice, warning, error)",
		},
		cli.StringFlag{
			Name:  "env",
			Value: ".env",
			Usage: "environment file with RT_* and S3_* settings",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Render a built-in scene in progressive passes. Each pass adds samples to every
pixel; the frame after the last pass is written to --out (or a timestamped file
under RT_OUTPUT_DIR) and optionally uploaded to S3_BUCKET.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "random",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (0 uses the scene's aspect ratio)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 uses the scene's recommendation)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "maximum scatter depth (0 uses the scene's recommendation)",
				},
				cli.IntFlag{
					Name:  "passes",
					Value: 5,
					Usage: "number of progressive passes",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "parallel workers (0 uses the CPU count)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 32,
					Usage: "tile edge in pixels",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for scene layout and sampling",
				},
				cli.StringFlag{
					Name:  "textures",
					Usage: "texture directory (overrides RT_TEXTURE_DIR)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
				cli.BoolFlag{
					Name:  "save-passes",
					Usage: "also save the frame after each intermediate pass",
				},
				cli.BoolFlag{
					Name:  "upload",
					Usage: "upload the frame to S3_BUCKET",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "serve",
			Usage: "stream progressive renders over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to listen on",
				},
				cli.StringFlag{
					Name:  "textures",
					Usage: "texture directory (overrides RT_TEXTURE_DIR)",
				},
			},
			Action: cmd.ServeWeb,
		},
	}

	return app
}
