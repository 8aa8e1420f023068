package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-nextweek-raytracer/pkg/config"
	"github.com/df07/go-nextweek-raytracer/pkg/scene"
)

// fakeUploader records uploads
type fakeUploader struct {
	names        []string
	contentTypes []string
	sizes        []int
	err          error
}

func (f *fakeUploader) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.names = append(f.names, name)
	f.contentTypes = append(f.contentTypes, contentType)
	f.sizes = append(f.sizes, len(data))
	return "s3://bucket/" + name, nil
}

func smallRender(out string) RenderOptions {
	return RenderOptions{
		Scene:    "spheres",
		Width:    16,
		Height:   8,
		Samples:  3,
		MaxDepth: 5,
		Passes:   2,
		Workers:  2,
		TileSize: 8,
		Seed:     1,
		Out:      out,
	}
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	uploader := &fakeUploader{}

	path, err := Render(context.Background(), smallRender(out), config.Default(), uploader)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if path != out {
		t.Errorf("Expected %s, got %s", out, path)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("Expected frame on disk: %v", err)
	}

	if len(uploader.names) != 1 || uploader.names[0] != "spheres/frame.png" {
		t.Errorf("Unexpected uploads %v", uploader.names)
	}
	if uploader.contentTypes[0] != "image/png" || uploader.sizes[0] == 0 {
		t.Errorf("Unexpected upload content %q (%d bytes)", uploader.contentTypes[0], uploader.sizes[0])
	}
}

func TestRenderSavePasses(t *testing.T) {
	dir := t.TempDir()
	opts := smallRender(filepath.Join(dir, "frame.bmp"))
	opts.Passes = 3
	opts.SavePasses = true

	if _, err := Render(context.Background(), opts, config.Default(), nil); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, name := range []string{"frame_pass01.bmp", "frame_pass02.bmp", "frame.bmp"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_pass03.bmp")); err == nil {
		t.Error("The last pass should only be saved as the final frame")
	}
}

func TestRenderDefaultOutput(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()

	opts := smallRender("")
	opts.Height = 0 // spheres defaults to 2:1

	path, err := Render(context.Background(), opts, cfg, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(path, filepath.Join(cfg.OutputDir, "spheres", "render_")) {
		t.Errorf("Unexpected default output path %s", path)
	}
}

func TestRenderErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	opts := smallRender(out)
	opts.Scene = "missing"
	if _, err := Render(context.Background(), opts, config.Default(), nil); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}

	opts = smallRender(out)
	opts.Width = 0
	if _, err := Render(context.Background(), opts, config.Default(), nil); err == nil {
		t.Error("Expected error for zero width")
	}

	cause := errors.New("denied")
	if _, err := Render(context.Background(), smallRender(out), config.Default(), &fakeUploader{err: cause}); !errors.Is(err, cause) {
		t.Errorf("Expected upload error, got %v", err)
	}
}

func TestRenderCancelledBeforeFirstPass(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "frame.png")
	if _, err := Render(ctx, smallRender(out), config.Default(), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("No frame should be written when nothing was rendered")
	}
}

func TestOutputPaths(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	if got, want := defaultOutputPath("output", "cornell", now), filepath.Join("output", "cornell", "render_20240309_140507.png"); got != want {
		t.Errorf("defaultOutputPath = %s, want %s", got, want)
	}
	if got := passOutputPath("out/frame.png", 3); got != "out/frame_pass03.png" {
		t.Errorf("passOutputPath = %s", got)
	}
}

func TestWriteSceneTable(t *testing.T) {
	var buf bytes.Buffer
	writeSceneTable(&buf, scene.ListScenes())

	for _, want := range []string{"Scene", "Description", "cornell-smoke", "Cornell Smoke"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Expected table to contain %q:\n%s", want, buf.String())
		}
	}
}
