package geometry

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly over time
type MovingSphere struct {
	Center       core.Vec3 // Center at TimeStart
	Offset       core.Vec3 // Displacement over one TimeInterval
	TimeStart    float64
	TimeInterval float64
	Radius       float64
	Material     material.Material
}

// NewMovingSphere creates a sphere that travels by offset during
// [timeStart, timeStart+timeInterval]. A zero interval is rejected.
func NewMovingSphere(center, offset core.Vec3, timeStart, timeInterval, radius float64, mat material.Material) (*MovingSphere, error) {
	if timeInterval == 0 {
		return nil, fmt.Errorf("moving sphere at %v: %w", center, ErrZeroTimeInterval)
	}
	return &MovingSphere{
		Center:       center,
		Offset:       offset,
		TimeStart:    timeStart,
		TimeInterval: timeInterval,
		Radius:       radius,
		Material:     mat,
	}, nil
}

// CenterAt returns the sphere center at time t
func (s *MovingSphere) CenterAt(t float64) core.Vec3 {
	return s.Center.Add(s.Offset.Multiply((t - s.TimeStart) / s.TimeInterval))
}

// Hit intersects the ray with the sphere positioned at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	root, ok := intersectSphere(ray, center, s.Radius, tMin, tMax)
	if !ok {
		return nil, false
	}
	return newSphereHit(ray, root, center, s.Radius, s.Material), true
}

// BoundingBox returns the union of the boxes at t0 and t1
func (s *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.SurroundingBox(
		sphereBox(s.CenterAt(t0), s.Radius),
		sphereBox(s.CenterAt(t1), s.Radius),
	), true
}
