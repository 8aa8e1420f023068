package geometry

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Box is an axis-aligned rectangular prism made of six rectangles
type Box struct {
	Min   core.Vec3
	Max   core.Vec3
	faces *HitableList
}

// NewBox creates a box spanning pmin to pmax. The back, left and bottom faces
// are flipped so every face normal points outward.
func NewBox(pmin, pmax core.Vec3, mat material.Material) *Box {
	faces := NewHitableList(
		NewXYRect(pmin.X, pmax.X, pmin.Y, pmax.Y, pmax.Z, mat),                // front
		NewFlipNormal(NewXYRect(pmin.X, pmax.X, pmin.Y, pmax.Y, pmin.Z, mat)), // back
		NewYZRect(pmin.Y, pmax.Y, pmin.Z, pmax.Z, pmax.X, mat),                // right
		NewFlipNormal(NewYZRect(pmin.Y, pmax.Y, pmin.Z, pmax.Z, pmin.X, mat)), // left
		NewXZRect(pmin.X, pmax.X, pmin.Z, pmax.Z, pmax.Y, mat),                // top
		NewFlipNormal(NewXZRect(pmin.X, pmax.X, pmin.Z, pmax.Z, pmin.Y, mat)), // bottom
	)
	return &Box{Min: pmin, Max: pmax, faces: faces}
}

// Hit returns the closest face intersection
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax, random)
}

// BoundingBox returns the exact box extent
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
