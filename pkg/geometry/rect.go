package geometry

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Plane selects which pair of axes an axis-aligned rectangle spans
type Plane int

const (
	PlaneXY Plane = iota // spans x and y at fixed z
	PlaneXZ              // spans x and z at fixed y
	PlaneYZ              // spans y and z at fixed x
)

// axes returns the fixed axis followed by the two spanned axes
func (p Plane) axes() (fixed, a, b int) {
	switch p {
	case PlaneXY:
		return 2, 0, 1
	case PlaneXZ:
		return 1, 0, 2
	default:
		return 0, 1, 2
	}
}

// rectThickness pads the flat axis so the box has nonzero volume
const rectThickness = 0.0001

// Rect is an axis-aligned rectangle [A0,A1]×[B0,B1] lying at K on the fixed axis.
// Its normal points along the positive fixed axis.
type Rect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z=k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y=k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x=k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

// Hit finds where the ray crosses the rectangle's plane and checks the bounds
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	fixed, axisA, axisB := r.Plane.axes()

	t := (r.K - ray.Origin.Axis(fixed)) / ray.Direction.Axis(fixed)
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(axisA) + t*ray.Direction.Axis(axisA)
	b := ray.Origin.Axis(axisB) + t*ray.Direction.Axis(axisB)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   unitAxis(fixed),
		Material: r.Material,
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
	}, true
}

// BoundingBox returns the rectangle padded by a thin slab along the flat axis
func (r *Rect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	fixed, axisA, axisB := r.Plane.axes()

	var lo, hi [3]float64
	lo[fixed], hi[fixed] = r.K-rectThickness, r.K+rectThickness
	lo[axisA], hi[axisA] = r.A0, r.A1
	lo[axisB], hi[axisB] = r.B0, r.B1

	return core.NewAABB(core.NewVec3(lo[0], lo[1], lo[2]), core.NewVec3(hi[0], hi[1], hi[2])), true
}

func unitAxis(axis int) core.Vec3 {
	var v [3]float64
	v[axis] = 1
	return core.NewVec3(v[0], v[1], v[2])
}
