package geometry

import (
	"errors"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit reports the nearest intersection with t strictly inside (tMin, tMax).
	// random is the caller's sample stream; only stochastic shapes consume it.
	Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool)
	// BoundingBox returns the box enclosing the shape over the time interval
	// [t0, t1], or false if the shape is unbounded.
	BoundingBox(t0, t1 float64) (core.AABB, bool)
}

var (
	// ErrEmptyList is returned when building a hierarchy over no shapes
	ErrEmptyList = errors.New("empty shape list")
	// ErrNoBoundingBox is returned when a shape cannot report a bounding box
	ErrNoBoundingBox = errors.New("shape has no bounding box")
	// ErrZeroTimeInterval is returned for a moving shape with a zero time interval
	ErrZeroTimeInterval = errors.New("zero time interval")
)
