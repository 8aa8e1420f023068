package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter decides how rayIn continues after hitting the surface described by hit.
	// It returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(u, v float64, point core.Vec3) core.Color
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Fraction of light surviving the bounce
}

// HitRecord contains information about a ray-object intersection.
// The Material is borrowed from the shape that produced the record and is
// only meaningful for the duration of one integrator step.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward surface normal at intersection
	Material Material  // Material of the hit object
	U, V     float64   // Surface texture coordinates
}

// Emitted returns the radiance emitted at the hit, or black for non-emitting materials
func Emitted(hit *HitRecord) core.Color {
	if emitter, ok := hit.Material.(Emitter); ok {
		return emitter.Emitted(hit.U, hit.V, hit.Point)
	}
	return core.Color{}
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends v through a surface with normal n using Snell's law.
// It returns false on total internal reflection.
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}
