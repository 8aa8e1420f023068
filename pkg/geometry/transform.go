package geometry

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Translate shifts an inner shape by Offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate wraps shape so it appears moved by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

// Hit moves the ray into object space, tests, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Shape.Hit(moved, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the inner box shifted by the offset
func (t *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := t.Shape.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

// Axis names a coordinate axis for rotation
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Rotate turns an inner shape about one coordinate axis through the origin.
// Positive angles follow the right-hand rule.
type Rotate struct {
	Shape   Shape
	Axis    Axis
	Degrees float64

	forward mgl64.Mat3
	inverse mgl64.Mat3
	box     core.AABB
	hasBox  bool
}

// NewRotate wraps shape rotated by degrees about axis. The bounding box is
// computed once from the inner box over the time interval [0, 1].
func NewRotate(shape Shape, axis Axis, degrees float64) *Rotate {
	rad := mgl64.DegToRad(degrees)

	var forward mgl64.Mat3
	switch axis {
	case AxisX:
		forward = mgl64.Rotate3DX(rad)
	case AxisY:
		forward = mgl64.Rotate3DY(rad)
	default:
		forward = mgl64.Rotate3DZ(rad)
	}

	r := &Rotate{
		Shape:   shape,
		Axis:    axis,
		Degrees: degrees,
		forward: forward,
		inverse: forward.Transpose(),
	}

	if inner, ok := shape.BoundingBox(0, 1); ok {
		corners := inner.Corners()
		for i, c := range corners {
			corners[i] = apply(r.forward, c)
		}
		r.box = core.NewAABBFromPoints(corners[:]...)
		r.hasBox = true
	}

	return r
}

// Hit rotates the ray into object space, tests, and rotates the point and
// normal back out
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	local := core.NewRayAtTime(apply(r.inverse, ray.Origin), apply(r.inverse, ray.Direction), ray.Time)
	hit, ok := r.Shape.Hit(local, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Point = apply(r.forward, hit.Point)
	hit.Normal = apply(r.forward, hit.Normal)
	return hit, true
}

// BoundingBox returns the box precomputed at construction
func (r *Rotate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

func apply(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}

// FlipNormal reverses the normal reported by an inner shape
type FlipNormal struct {
	Shape Shape
}

// NewFlipNormal wraps shape with its normals negated
func NewFlipNormal(shape Shape) *FlipNormal {
	return &FlipNormal{Shape: shape}
}

// Hit passes through to the inner shape with the normal negated
func (f *FlipNormal) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	hit, ok := f.Shape.Hit(ray, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

// BoundingBox returns the inner box unchanged
func (f *FlipNormal) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return f.Shape.BoundingBox(t0, t1)
}
