package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	root, ok := intersectSphere(ray, s.Center, s.Radius, tMin, tMax)
	if !ok {
		return nil, false
	}
	return newSphereHit(ray, root, s.Center, s.Radius, s.Material), true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// intersectSphere solves a·t² + 2b·t + c = 0 and returns the smaller root in
// (tMin, tMax), falling back to the larger one
func intersectSphere(ray core.Ray, center core.Vec3, radius, tMin, tMax float64) (float64, bool) {
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - a*c
	if discriminant <= 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	if root := (-b - sqrtD) / a; root > tMin && root < tMax {
		return root, true
	}
	if root := (-b + sqrtD) / a; root > tMin && root < tMax {
		return root, true
	}
	return 0, false
}

// newSphereHit fills a hit record with the outward normal and spherical UV
func newSphereHit(ray core.Ray, t float64, center core.Vec3, radius float64, mat material.Material) *material.HitRecord {
	point := ray.At(t)
	normal := point.Subtract(center).Divide(radius)
	u, v := sphereUV(normal)
	return &material.HitRecord{
		T:        t,
		Point:    point,
		Normal:   normal,
		Material: mat,
		U:        u,
		V:        v,
	}
}

// sphereUV maps a point on the unit sphere to texture coordinates
func sphereUV(p core.Vec3) (u, v float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(math.Max(-1, math.Min(1, p.Y)))
	return 0.5 - phi/(2*math.Pi), 0.5 + theta/math.Pi
}

// sphereBox bounds a sphere. Negative radii (inward normals) bound the same volume.
func sphereBox(center core.Vec3, radius float64) core.AABB {
	radius = math.Abs(radius)
	r := core.NewVec3(radius, radius, radius)
	return core.NewAABB(center.Subtract(r), center.Add(r))
}
