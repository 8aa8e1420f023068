package geometry

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// HitableList is an unordered aggregate tested by linear scan
type HitableList struct {
	Shapes []Shape
}

// NewHitableList creates a list from the given shapes
func NewHitableList(shapes ...Shape) *HitableList {
	return &HitableList{Shapes: shapes}
}

// Add appends shapes to the list
func (l *HitableList) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Len returns the number of shapes in the list
func (l *HitableList) Len() int {
	return len(l.Shapes)
}

// Hit returns the closest intersection among all shapes
func (l *HitableList) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar, random); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all shape boxes over [t0, t1]. It fails for
// an empty list or when any shape is unbounded.
func (l *HitableList) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return surroundingBox(l.Shapes, t0, t1)
}

func surroundingBox(shapes []Shape, t0, t1 float64) (core.AABB, bool) {
	if len(shapes) == 0 {
		return core.AABB{}, false
	}

	box, ok := shapes[0].BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	for _, shape := range shapes[1:] {
		other, ok := shape.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		box = core.SurroundingBox(box, other)
	}
	return box, true
}
