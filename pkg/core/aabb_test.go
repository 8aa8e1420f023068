package core

import (
	"math"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	inf := math.Inf(1)

	tests := []struct {
		name     string
		ray      Ray
		tMin     float64
		tMax     float64
		expected bool
	}{
		{
			name:     "axis aligned ray toward box",
			ray:      NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1)),
			tMin:     0,
			tMax:     inf,
			expected: true,
		},
		{
			name:     "axis aligned ray away from box",
			ray:      NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, -1)),
			tMin:     0,
			tMax:     inf,
			expected: false,
		},
		{
			name:     "parallel ray outside slab",
			ray:      NewRay(NewVec3(2, 0.5, -1), NewVec3(0, 0, 1)),
			tMin:     0,
			tMax:     inf,
			expected: false,
		},
		{
			name:     "diagonal ray through box",
			ray:      NewRay(NewVec3(-1, -1, -1), NewVec3(1, 1, 1)),
			tMin:     0,
			tMax:     inf,
			expected: true,
		},
		{
			name:     "interval ends before box",
			ray:      NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1)),
			tMin:     0,
			tMax:     0.5,
			expected: false,
		},
		{
			name:     "degenerate interval",
			ray:      NewRay(NewVec3(0.5, 0.5, 0.5), NewVec3(0, 0, 1)),
			tMin:     1,
			tMax:     1,
			expected: false,
		},
		{
			name:     "origin inside box",
			ray:      NewRay(NewVec3(0.5, 0.5, 0.5), NewVec3(1, 0, 0)),
			tMin:     0,
			tMax:     inf,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.tMin, tt.tMax); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAABB_SurroundingContainsBoth(t *testing.T) {
	a := NewAABB(NewVec3(-1, 0, 2), NewVec3(0, 1, 3))
	b := NewAABB(NewVec3(5, -2, -1), NewVec3(6, 0, 0))

	s := SurroundingBox(a, b)
	if !s.Contains(a) || !s.Contains(b) {
		t.Fatalf("Surrounding box %v should contain %v and %v", s, a, b)
	}

	expected := NewAABB(NewVec3(-1, -2, -1), NewVec3(6, 1, 3))
	if !s.Min.Equals(expected.Min) || !s.Max.Equals(expected.Max) {
		t.Errorf("Expected %v, got %v", expected, s)
	}
}

func TestAABB_EmptyIsUnionIdentity(t *testing.T) {
	a := NewAABB(NewVec3(1, 2, 3), NewVec3(4, 5, 6))
	u := EmptyAABB().Union(a)
	if !u.Min.Equals(a.Min) || !u.Max.Equals(a.Max) {
		t.Errorf("Expected %v, got %v", a, u)
	}
}

func TestAABB_Corners(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 3))
	corners := box.Corners()

	rebuilt := NewAABBFromPoints(corners[:]...)
	if !rebuilt.Min.Equals(box.Min) || !rebuilt.Max.Equals(box.Max) {
		t.Errorf("Corners should span the box: expected %v, got %v", box, rebuilt)
	}

	seen := make(map[Vec3]bool)
	for _, c := range corners {
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected 8 distinct corners, got %d", len(seen))
	}
}
