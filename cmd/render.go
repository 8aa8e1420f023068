package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/df07/go-nextweek-raytracer/pkg/config"
	"github.com/df07/go-nextweek-raytracer/pkg/loaders"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
	"github.com/df07/go-nextweek-raytracer/pkg/scene"
	"github.com/df07/go-nextweek-raytracer/pkg/storage"
)

// RenderOptions collects everything the render command needs
type RenderOptions struct {
	Scene      string
	Width      int
	Height     int // 0 derives the height from the scene's aspect ratio
	Samples    int // 0 uses the scene's recommendation
	MaxDepth   int // 0 uses the scene's recommendation
	Passes     int
	Workers    int
	TileSize   int
	Seed       int64
	Out        string // Empty writes a timestamped file under the output dir
	SavePasses bool
	Upload     bool
}

// Uploader stores an encoded frame remotely
type Uploader interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// RenderFrame renders a built-in scene progressively and saves the result.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := config.Load(ctx.GlobalString("env"))
	if err != nil {
		return err
	}

	opts := RenderOptions{
		Scene:      ctx.String("scene"),
		Width:      ctx.Int("width"),
		Height:     ctx.Int("height"),
		Samples:    ctx.Int("spp"),
		MaxDepth:   ctx.Int("max-depth"),
		Passes:     ctx.Int("passes"),
		Workers:    ctx.Int("workers"),
		TileSize:   ctx.Int("tile-size"),
		Seed:       ctx.Int64("seed"),
		Out:        ctx.String("out"),
		SavePasses: ctx.Bool("save-passes"),
		Upload:     ctx.Bool("upload"),
	}
	if dir := ctx.String("textures"); dir != "" {
		cfg.TextureDir = dir
	}

	var uploader Uploader
	if opts.Upload {
		s3Uploader, err := storage.NewS3Uploader(cfg)
		if err != nil {
			return fmt.Errorf("upload requested: %w", err)
		}
		uploader = s3Uploader
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = Render(runCtx, opts, cfg, uploader)
	return err
}

// Render builds the scene, renders every pass and writes the final frame.
// It returns the path of the written file.
func Render(ctx context.Context, opts RenderOptions, cfg config.Config, uploader Uploader) (string, error) {
	if opts.Width <= 0 || opts.Height < 0 {
		return "", fmt.Errorf("invalid frame size %dx%d", opts.Width, opts.Height)
	}

	s, err := scene.New(opts.Scene, scene.Options{
		Width:          opts.Width,
		Height:         opts.Height,
		TextureDir:     cfg.TextureDir,
		MaxTextureSize: cfg.MaxTextureSize,
		Seed:           opts.Seed,
	})
	if err != nil {
		return "", err
	}

	width, height := opts.Width, opts.Height
	if height == 0 {
		height = max(1, int(float64(width)/s.CameraConfig.AspectRatio))
	}
	if opts.Samples > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.Samples
	}
	if opts.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = opts.MaxDepth
	}

	out := opts.Out
	if out == "" {
		out = defaultOutputPath(cfg.OutputDir, opts.Scene, time.Now())
	}

	logger.Noticef("rendering %q at %dx%d, %d spp, max depth %d, %d primitives",
		s.Name, width, height, s.SamplingConfig.SamplesPerPixel, s.SamplingConfig.MaxDepth, s.PrimitiveCount)

	pr := renderer.NewProgressiveRaytracer(s, width, height, renderer.ProgressiveConfig{
		TileSize:           opts.TileSize,
		InitialSamples:     1,
		MaxSamplesPerPixel: s.SamplingConfig.SamplesPerPixel,
		Passes:             opts.Passes,
		NumWorkers:         opts.Workers,
		Seed:               opts.Seed,
	})

	var saveErr error
	start := time.Now()
	passes, err := pr.Render(ctx, func(pass renderer.PassResult) {
		logger.Infof("pass %d: average luminance %.3f",
			pass.PassNumber, renderer.CalculateAverageLuminance(pass.Image))
		if opts.SavePasses && !pass.IsLast && saveErr == nil {
			saveErr = loaders.SaveFrame(pass.Image, passOutputPath(out, pass.PassNumber))
		}
	})
	if len(passes) > 0 {
		var buf bytes.Buffer
		renderer.WriteStatsTable(&buf, passes)
		logger.Noticef("render statistics\n%s", buf.String())
	}
	if err != nil {
		if errors.Is(err, context.Canceled) && len(passes) > 0 {
			logger.Warningf("render interrupted after %d passes, saving partial frame", len(passes))
		} else {
			return "", fmt.Errorf("render failed: %w", err)
		}
	}
	if saveErr != nil {
		return "", saveErr
	}

	final := passes[len(passes)-1].Image
	if err := loaders.SaveFrame(final, out); err != nil {
		return "", err
	}
	logger.Noticef("render saved as %s (%v)", out, time.Since(start).Round(time.Millisecond))

	if uploader != nil {
		data, err := os.ReadFile(out)
		if err != nil {
			return "", fmt.Errorf("failed to read %s for upload: %w", out, err)
		}
		name := filepath.ToSlash(filepath.Join(opts.Scene, filepath.Base(out)))
		url, err := uploader.Upload(ctx, name, data, loaders.ContentType(out))
		if err != nil {
			return "", err
		}
		logger.Noticef("uploaded to %s", url)
	}

	return out, nil
}

// defaultOutputPath returns <dir>/<scene>/render_<timestamp>.png
func defaultOutputPath(dir, sceneName string, now time.Time) string {
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// passOutputPath inserts the pass number before the extension
func passOutputPath(out string, pass int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_pass%02d%s", strings.TrimSuffix(out, ext), pass, ext)
}
