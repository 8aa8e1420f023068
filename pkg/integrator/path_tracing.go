package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

const (
	// DefaultMaxDepth caps the number of scatter events along a path
	DefaultMaxDepth = 50
	// hitEpsilon is the lower bound of the hit interval, avoiding shadow acne
	hitEpsilon = 0.001
)

// PathTracingIntegrator implements brute-force recursive path tracing
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator. A
// non-positive maxDepth selects DefaultMaxDepth; a nil background is black.
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if background == nil {
		background = NewBlackBackground()
	}
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, random *rand.Rand) core.Color {
	return pt.rayColor(ray, world, random, 0)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Shape, random *rand.Rand, depth int) core.Color {
	hit, isHit := world.Hit(ray, hitEpsilon, math.Inf(1), random)
	if !isHit {
		return pt.Background.Color(ray)
	}

	emitted := material.Emitted(hit)

	// Past the cap the path is absorbed; only emission survives
	if depth >= pt.MaxDepth {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	incoming := pt.rayColor(scatter.Scattered, world, random, depth+1)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
