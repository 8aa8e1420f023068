package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

func TestReflectance_NormalIncidence(t *testing.T) {
	for _, n := range []float64{1.0, 1.33, 1.5, 2.4} {
		r0 := (1 - n) / (1 + n)
		r0 = r0 * r0
		if got := Reflectance(1.0, n); got != r0 {
			t.Errorf("n=%f: expected r0=%v, got %v", n, r0, got)
		}
	}

	if got := Reflectance(1.0, 1.5); math.Abs(got-0.04) > 1e-12 {
		t.Errorf("Expected 0.04 for glass at normal incidence, got %v", got)
	}
}

func TestReflectance_GrazingIsTotal(t *testing.T) {
	if got := Reflectance(0.0, 1.5); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected full reflectance at grazing incidence, got %v", got)
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Leaving glass at a shallow angle: sin(theta) * 1.5 > 1
	v := core.NewVec3(1, 0.2, 0).Normalize()
	n := core.NewVec3(0, 1, 0)
	if _, ok := Refract(v, n.Negate(), 1.5); ok {
		t.Error("Expected total internal reflection")
	}
}

func TestRefract_StraightThrough(t *testing.T) {
	v := core.NewVec3(0, -1, 0)
	n := core.NewVec3(0, 1, 0)
	refracted, ok := Refract(v, n, 1.0/1.5)
	if !ok {
		t.Fatal("Expected refraction at normal incidence")
	}
	if refracted.Subtract(v).Length() > 1e-12 {
		t.Errorf("Normal incidence should not bend: got %v", refracted)
	}
}

func TestDielectric_AttenuationIsWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(7))
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	directions := []core.Vec3{
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(1, 0.1, 0), // exiting at a shallow angle
	}

	for _, d := range directions {
		for i := 0; i < 20; i++ {
			scatter, ok := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), d), hit, random)
			if !ok {
				t.Fatal("Dielectric should always scatter")
			}
			if !scatter.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
				t.Errorf("Expected white attenuation, got %v", scatter.Attenuation)
			}
		}
	}
}

func TestDielectric_TotalInternalReflectionReflects(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(7))

	// Ray inside the glass moving outward at a shallow angle
	d := core.NewVec3(1, 0.2, 0)
	n := core.NewVec3(0, 1, 0)
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: n}

	expected := Reflect(d, n)
	for i := 0; i < 20; i++ {
		scatter, _ := glass.Scatter(core.NewRay(core.NewVec3(-1, -0.2, 0), d), hit, random)
		if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Fatalf("Expected pure reflection %v, got %v", expected, scatter.Scattered.Direction)
		}
	}
}

func TestDielectric_EntersMostlyByRefraction(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(99))
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	refracted := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		scatter, _ := glass.Scatter(rayIn, hit, random)
		if scatter.Scattered.Direction.Y < 0 {
			refracted++
		}
	}

	// Expect ~96% transmission at normal incidence
	ratio := float64(refracted) / trials
	if ratio < 0.93 || ratio > 0.99 {
		t.Errorf("Expected ~0.96 refraction ratio, got %f", ratio)
	}
}
