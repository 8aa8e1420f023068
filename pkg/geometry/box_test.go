package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

func TestBox_FaceNormalsPointOutward(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), &dummyMaterial{})

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
		normal core.Vec3
	}{
		{"front", core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)},
		{"back", core.NewVec3(0.5, 0.5, -4), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)},
		{"right", core.NewVec3(5, 0.5, 0.5), core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0)},
		{"left", core.NewVec3(-4, 0.5, 0.5), core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0)},
		{"top", core.NewVec3(0.5, 5, 0.5), core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)},
		{"bottom", core.NewVec3(0.5, -4, 0.5), core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := box.Hit(core.NewRay(tt.origin, tt.dir), 0.001, 1000, nil)
			if !ok {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-4) > 1e-9 {
				t.Errorf("Expected nearest face at t=4, got %f", hit.T)
			}
			if !hit.Normal.Equals(tt.normal) {
				t.Errorf("Expected normal %v, got %v", tt.normal, hit.Normal)
			}
		})
	}
}

func TestBox_BoundingBoxIsExact(t *testing.T) {
	pmin, pmax := core.NewVec3(-1, 0, 2), core.NewVec3(3, 4, 5)
	box, ok := NewBox(pmin, pmax, nil).BoundingBox(0, 1)
	if !ok {
		t.Fatal("Box should have a bounding box")
	}
	if !box.Min.Equals(pmin) || !box.Max.Equals(pmax) {
		t.Errorf("Expected [%v, %v], got %v", pmin, pmax, box)
	}
}
