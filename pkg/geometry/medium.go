package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// ConstantMedium is a volume of uniform density bounded by another shape.
// Rays passing through scatter at a random depth with an isotropic phase.
type ConstantMedium struct {
	Boundary Shape
	Density  float64
	Phase    material.Material
}

// NewConstantMedium fills boundary with a medium of the given density whose
// scattering color comes from albedo
func NewConstantMedium(boundary Shape, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary: boundary,
		Density:  density,
		Phase:    material.NewIsotropic(albedo),
	}
}

// Hit samples a free-flight distance inside the boundary. It reports a hit
// when the ray scatters before leaving the volume.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, -math.MaxFloat64, math.MaxFloat64, random)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+0.0001, math.MaxFloat64, random)
	if !ok {
		return nil, false
	}

	t1 := math.Max(entry.T, tMin)
	t2 := math.Min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := -(1 / m.Density) * math.Log(random.Float64())
	if hitDistance >= distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0), // arbitrary
		Material: m.Phase,
		U:        exit.U,
		V:        exit.V,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(t0, t1)
}
