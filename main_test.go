package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppCommands(t *testing.T) {
	app := newApp()

	for _, name := range []string{"scenes", "render", "serve"} {
		if app.Command(name) == nil {
			t.Errorf("Expected command %q", name)
		}
	}

	render := app.Command("render")
	flags := map[string]bool{}
	for _, flag := range render.Flags {
		flags[strings.Split(flag.GetName(), ",")[0]] = true
	}
	for _, name := range []string{"scene", "width", "height", "spp", "passes", "max-depth", "workers", "tile-size", "seed", "out", "upload"} {
		if !flags[name] {
			t.Errorf("render is missing --%s", name)
		}
	}
}

func TestScenesCommand(t *testing.T) {
	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf

	if err := app.Run([]string{"nextweek", "--env", "", "scenes"}); err != nil {
		t.Fatalf("scenes failed: %v", err)
	}
	for _, id := range []string{"cornell-smoke", "final", "random"} {
		if !strings.Contains(buf.String(), id) {
			t.Errorf("Expected scene list to contain %q:\n%s", id, buf.String())
		}
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	app := newApp()

	args := []string{"nextweek", "--env", "", "render",
		"--scene", "spheres", "--width", "16", "--height", "8",
		"--spp", "2", "--passes", "2", "--tile-size", "8", "--out", out}
	if err := app.Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected %s to be written: %v", out, err)
	}
}
