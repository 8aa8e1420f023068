package integrator

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from world.
	// random is the calling worker's private stream.
	RayColor(ray core.Ray, world geometry.Shape, random *rand.Rand) core.Color
}
