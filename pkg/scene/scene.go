package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
	"github.com/df07/go-nextweek-raytracer/pkg/log"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          geometry.Shape // Root aggregate, usually a BVH
	Background     integrator.Background
	SamplingConfig renderer.SamplingConfig
	PrimitiveCount int // Top-level shapes handed to the builder
}

func (s *Scene) GetCamera() *renderer.Camera                { return s.Camera }
func (s *Scene) GetWorld() geometry.Shape                   { return s.World }
func (s *Scene) GetBackground() integrator.Background       { return s.Background }
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig { return s.SamplingConfig }

// Options adjust a built-in scene without changing its content
type Options struct {
	Width          int    // Used with Height for the camera aspect ratio
	Height         int
	TextureDir     string // Directory searched for image textures
	MaxTextureSize int    // Textures are downscaled to fit; 0 keeps full size
	Seed           int64  // Seeds scene layout and noise tables
}

// aspectRatio returns Width/Height, or fallback when either is unset
func (o Options) aspectRatio(fallback float64) float64 {
	if o.Width <= 0 || o.Height <= 0 {
		return fallback
	}
	return float64(o.Width) / float64(o.Height)
}

func (o Options) random() *rand.Rand {
	return rand.New(rand.NewSource(o.Seed))
}

// Builder collects primitives and produces the scene's root aggregate
type Builder struct {
	shapes []geometry.Shape
	random *rand.Rand
}

// NewBuilder creates an empty builder. random drives BVH axis selection.
func NewBuilder(random *rand.Rand) *Builder {
	return &Builder{random: random}
}

// Add appends shapes to the scene
func (b *Builder) Add(shapes ...geometry.Shape) *Builder {
	b.shapes = append(b.shapes, shapes...)
	return b
}

// Len returns the number of shapes added so far
func (b *Builder) Len() int {
	return len(b.shapes)
}

// BuildList returns a flat aggregate that tests every shape linearly
func (b *Builder) BuildList() *geometry.HitableList {
	return geometry.NewHitableList(b.shapes...)
}

// BuildBVH builds a bounding volume hierarchy over the shapes for the
// shutter interval [t0, t1]
func (b *Builder) BuildBVH(t0, t1 float64) (*geometry.BVH, error) {
	bvh, err := geometry.NewBVH(b.shapes, t0, t1, b.random)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene hierarchy: %w", err)
	}

	stats := bvh.Stats()
	logger.Infof("built BVH over %d shapes: %d nodes, %d leaves, max depth %d, avg depth %.1f",
		stats.TotalShapes, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth)
	return bvh, nil
}

// finish builds the world for b and assembles the scene
func finish(name string, b *Builder, cameraConfig renderer.CameraConfig, background integrator.Background, sampling renderer.SamplingConfig) (*Scene, error) {
	world, err := b.BuildBVH(cameraConfig.ShutterOpen, cameraConfig.ShutterClose)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	return &Scene{
		Name:           name,
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          world,
		Background:     background,
		SamplingConfig: sampling,
		PrimitiveCount: b.Len(),
	}, nil
}
