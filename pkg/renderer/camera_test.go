package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        90.0,
	}
}

func TestCameraGetCameraForward(t *testing.T) {
	config := testCameraConfig()
	config.LookAt = core.NewVec3(0, 0, -5)
	camera := NewCamera(config)

	forward := camera.GetCameraForward()
	expected := core.NewVec3(0, 0, -1)

	if math.Abs(forward.X-expected.X) > 1e-9 ||
		math.Abs(forward.Y-expected.Y) > 1e-9 ||
		math.Abs(forward.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}
}

func TestCameraCenterRayPointsAtLookAt(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(1))

	ray := camera.GetRay(0.5, 0.5, random)
	dir := ray.Direction.Normalize()

	if math.Abs(dir.X) > 1e-9 || math.Abs(dir.Y) > 1e-9 || math.Abs(dir.Z+1) > 1e-9 {
		t.Errorf("Expected center ray along -Z, got %v", dir)
	}
}

func TestCameraCornerRays(t *testing.T) {
	// 90 degree vfov with aspect 1: the film spans [-1,1] at distance 1
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		s, t float64
		want core.Vec3
	}{
		{"bottom-left", 0, 0, core.NewVec3(-1, -1, -1)},
		{"top-right", 1, 1, core.NewVec3(1, 1, -1)},
		{"top-left", 0, 1, core.NewVec3(-1, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := camera.GetRay(tt.s, tt.t, random).Direction
			if dir.Subtract(tt.want).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.want, dir)
			}
		})
	}
}

func TestCameraPinholeOrigin(t *testing.T) {
	config := testCameraConfig()
	config.Center = core.NewVec3(3, 2, 1)
	config.LookAt = core.NewVec3(0, 0, 0)
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(random.Float64(), random.Float64(), random)
		if !ray.Origin.Equals(config.Center) {
			t.Fatalf("Expected origin %v with zero aperture, got %v", config.Center, ray.Origin)
		}
	}
}

func TestCameraDefocusStaysOnLens(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 2
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(7))

	moved := false
	for i := 0; i < 500; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		offset := ray.Origin.Subtract(config.Center)
		if offset.Length() > config.Aperture/2+1e-9 {
			t.Fatalf("Origin offset %v exceeds lens radius %f", offset, config.Aperture/2)
		}
		if math.Abs(offset.Z) > 1e-9 {
			t.Fatalf("Origin offset %v leaves the lens plane", offset)
		}
		if offset.Length() > 0 {
			moved = true
		}

		// Every center ray passes through the focus point
		focus := ray.At(1)
		if focus.Subtract(core.NewVec3(0, 0, -2)).Length() > 1e-9 {
			t.Fatalf("Expected ray to pass through (0,0,-2), got %v", focus)
		}
	}
	if !moved {
		t.Error("Expected lens sampling to move the ray origin")
	}
}

func TestCameraDefaultFocusDistance(t *testing.T) {
	config := testCameraConfig()
	config.Center = core.NewVec3(0, 0, 10)
	camera := NewCamera(config)

	if got := camera.GetConfig().FocusDistance; math.Abs(got-11) > 1e-9 {
		t.Errorf("Expected focus distance 11, got %f", got)
	}
}

func TestCameraShutterTimes(t *testing.T) {
	config := testCameraConfig()
	config.ShutterOpen = 0.25
	config.ShutterClose = 0.75
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(3))

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 1000; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		if ray.Time < config.ShutterOpen || ray.Time > config.ShutterClose {
			t.Fatalf("Ray time %f outside shutter [%f,%f]", ray.Time, config.ShutterOpen, config.ShutterClose)
		}
		lo = math.Min(lo, ray.Time)
		hi = math.Max(hi, ray.Time)
	}
	if hi-lo < 0.4 {
		t.Errorf("Expected ray times to span the shutter interval, got [%f,%f]", lo, hi)
	}
}

func TestCameraInstantShutter(t *testing.T) {
	config := testCameraConfig()
	config.ShutterOpen = 0.5
	config.ShutterClose = 0.5
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(3))

	if ray := camera.GetRay(0.1, 0.9, random); ray.Time != 0.5 {
		t.Errorf("Expected time 0.5, got %f", ray.Time)
	}
}
