package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy. A node holds
// either two child subtrees or up to two shapes directly.
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Direct leaves (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is immutable after construction and safe for concurrent Hit calls.
type BVH struct {
	Root   *BVHNode
	T0, T1 float64 // Time interval the boxes were built for
}

// bvhEntry caches a shape's bounding box during construction
type bvhEntry struct {
	shape Shape
	box   core.AABB
}

// leafThreshold: lists of this many shapes or fewer become direct leaves
const leafThreshold = 2

// NewBVH constructs a BVH over shapes for the time interval [t0, t1]. Each
// node sorts along an axis drawn from random and splits at the median.
func NewBVH(shapes []Shape, t0, t1 float64, random *rand.Rand) (*BVH, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("building bvh: %w", ErrEmptyList)
	}

	// Copy so sorting never reorders the caller's slice
	entries := make([]bvhEntry, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox(t0, t1)
		if !ok {
			return nil, fmt.Errorf("building bvh: shape %d (%T): %w", i, shape, ErrNoBoundingBox)
		}
		entries[i] = bvhEntry{shape: shape, box: box}
	}

	return &BVH{Root: buildBVH(entries, random), T0: t0, T1: t1}, nil
}

// buildBVH recursively builds the tree using random-axis median splitting
func buildBVH(entries []bvhEntry, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].box.Min.Axis(axis) < entries[j].box.Min.Axis(axis)
	})

	if len(entries) <= leafThreshold {
		node := &BVHNode{BoundingBox: entries[0].box, Shapes: make([]Shape, len(entries))}
		for i, e := range entries {
			node.Shapes[i] = e.shape
			node.BoundingBox = core.SurroundingBox(node.BoundingBox, e.box)
		}
		return node
	}

	mid := len(entries) / 2
	left := buildBVH(entries[:mid], random)
	right := buildBVH(entries[mid:], random)

	return &BVHNode{
		BoundingBox: core.SurroundingBox(left.BoundingBox, right.BoundingBox),
		Left:        left,
		Right:       right,
	}
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.Root.hit(ray, tMin, tMax, random)
}

// hit tests the node box, then both children, keeping the closest hit
func (node *BVHNode) hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var closest *material.HitRecord
	closestSoFar := tMax

	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar, random); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
		return closest, closest != nil
	}

	if hit, ok := node.Left.hit(ray, tMin, closestSoFar, random); ok {
		closest = hit
		closestSoFar = hit.T
	}
	if hit, ok := node.Right.hit(ray, tMin, closestSoFar, random); ok {
		closest = hit
	}

	return closest, closest != nil
}

// BoundingBox returns the box computed at construction time
func (bvh *BVH) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if bvh.Root == nil {
		return core.AABB{}, false
	}
	return bvh.Root.BoundingBox, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes  int
	LeafNodes   int
	MaxDepth    int
	AvgDepth    float64
	TotalShapes int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	if bvh.Root == nil {
		return BVHStats{}
	}

	stats := BVHStats{}
	bvh.Root.collectStats(0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (node *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Shapes != nil {
		stats.LeafNodes++
		stats.TotalShapes += len(node.Shapes)
		stats.AvgDepth += float64(depth) // Summed here, divided in Stats
		return
	}

	node.Left.collectStats(depth+1, stats)
	node.Right.collectStats(depth+1, stats)
}
