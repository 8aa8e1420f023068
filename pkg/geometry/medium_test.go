package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

func newFog(density float64) *ConstantMedium {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, &dummyMaterial{})
	return NewConstantMedium(boundary, density, material.NewSolidColor(core.NewVec3(1, 1, 1)))
}

func TestConstantMedium_DenseScattersAtEntry(t *testing.T) {
	fog := newFog(1e6)
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	hit, ok := fog.Hit(ray, 0.001, math.Inf(1), random)
	if !ok {
		t.Fatal("Expected a dense medium to scatter")
	}
	if hit.T <= 4 || hit.T > 4.01 {
		t.Errorf("Expected scatter just past the entry at t=4, got %f", hit.T)
	}
	if !vecNear(hit.Point, ray.At(hit.T), 1e-12) {
		t.Errorf("Hit point %v does not lie on the ray", hit.Point)
	}
	if !hit.Normal.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected arbitrary normal (1,0,0), got %v", hit.Normal)
	}
	if _, isIsotropic := hit.Material.(*material.Isotropic); !isIsotropic {
		t.Errorf("Expected isotropic phase material, got %T", hit.Material)
	}
}

func TestConstantMedium_ThinPassesThrough(t *testing.T) {
	fog := newFog(1e-9)
	random := rand.New(rand.NewSource(2))
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	for i := 0; i < 100; i++ {
		if _, ok := fog.Hit(ray, 0.001, math.Inf(1), random); ok {
			t.Fatal("Expected an almost empty medium to let the ray through")
		}
	}
}

func TestConstantMedium_Clipping(t *testing.T) {
	fog := newFog(1e6)
	random := rand.New(rand.NewSource(3))

	tests := []struct {
		name      string
		origin    core.Vec3
		tMin      float64
		tMax      float64
		expectHit bool
		minT      float64
		maxT      float64
	}{
		{"misses boundary", core.NewVec3(3, 0, -5), 0.001, math.Inf(1), false, 0, 0},
		{"interval ends before entry", core.NewVec3(0, 0, -5), 0.001, 3, false, 0, 0},
		{"origin inside starts at tMin", core.NewVec3(0, 0, 0), 0.001, math.Inf(1), true, 0.001, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, 1))
			hit, ok := fog.Hit(ray, tt.tMin, tt.tMax, random)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if ok && (hit.T <= tt.minT || hit.T > tt.maxT) {
				t.Errorf("Expected t in (%f, %f], got %f", tt.minT, tt.maxT, hit.T)
			}
		})
	}
}

func TestConstantMedium_ScatterProbability(t *testing.T) {
	// Unit density over a path of length 2 scatters with probability 1 - e^-2
	fog := newFog(1)
	random := rand.New(rand.NewSource(4))
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 2))

	const trials = 20000
	hits := 0
	for i := 0; i < trials; i++ {
		if _, ok := fog.Hit(ray, 0.001, math.Inf(1), random); ok {
			hits++
		}
	}

	expected := 1 - math.Exp(-2)
	if got := float64(hits) / trials; math.Abs(got-expected) > 0.02 {
		t.Errorf("Expected scatter probability %.3f, got %.3f", expected, got)
	}
}

func TestConstantMedium_BoundingBox(t *testing.T) {
	box, ok := newFog(0.5).BoundingBox(0, 1)
	if !ok {
		t.Fatal("Medium should report its boundary's box")
	}
	if !box.Min.Equals(core.NewVec3(-1, -1, -1)) || !box.Max.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Unexpected box %v", box)
	}

	if _, ok := NewConstantMedium(unboundedShape{}, 1, nil).BoundingBox(0, 1); ok {
		t.Error("Medium around an unbounded shape should have no box")
	}
}
