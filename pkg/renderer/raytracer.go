package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum number of scatter events per path
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetBackground() integrator.Background
	GetSamplingConfig() SamplingConfig
}

// Raytracer samples pixels of a scene. It holds no per-render state and may
// be shared by any number of workers, each supplying its own random stream.
type Raytracer struct {
	scene      Scene
	integrator integrator.Integrator
	width      int
	height     int
}

// NewRaytracer creates a new raytracer using recursive path tracing
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:      scene,
		integrator: integrator.NewPathTracingIntegrator(scene.GetSamplingConfig().MaxDepth, scene.GetBackground()),
		width:      width,
		height:     height,
	}
}

// SamplePixel traces one jittered camera ray through pixel (x, y). Row 0 is
// the top of the image.
func (rt *Raytracer) SamplePixel(x, y int, random *rand.Rand) core.Color {
	s := (float64(x) + random.Float64()) / float64(rt.width)
	t := (float64(rt.height-1-y) + random.Float64()) / float64(rt.height)

	ray := rt.scene.GetCamera().GetRay(s, t, random)
	return rt.integrator.RayColor(ray, rt.scene.GetWorld(), random)
}

// RenderBounds tops up every pixel inside bounds to targetSamples samples.
// pixelStats is indexed [y][x] in image coordinates; callers must not pass
// overlapping bounds concurrently.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand, targetSamples int) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := &pixelStats[y][x]
			taken := 0
			for ps.SampleCount < targetSamples {
				ps.AddSample(rt.SamplePixel(x, y, random))
				taken++
			}
			stats.TotalSamples += taken
			stats.MinSamples = min(stats.MinSamples, taken)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, taken)
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// RenderPass renders the whole image serially at the scene's samples per pixel
func (rt *Raytracer) RenderPass(random *rand.Rand) *image.RGBA {
	pixelStats := newPixelStatsGrid(rt.width, rt.height)
	rt.RenderBounds(image.Rect(0, 0, rt.width, rt.height), pixelStats, random, rt.scene.GetSamplingConfig().SamplesPerPixel)
	return assembleImage(pixelStats, rt.width, rt.height)
}

func newPixelStatsGrid(width, height int) [][]PixelStats {
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}
	return pixelStats
}

func assembleImage(pixelStats [][]PixelStats, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, ToRGBA(pixelStats[y][x].GetColor()))
		}
	}
	return img
}

// ToRGBA gamma-corrects, clamps and quantizes a linear color to an opaque pixel
func ToRGBA(c core.Color) color.RGBA {
	rgb := core.ToRGB8(c)
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}
