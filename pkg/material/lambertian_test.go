package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

func TestLambertian_ScatterAlwaysSucceeds(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.6, 0.7)
	lambertian := NewLambertian(albedo)
	random := rand.New(rand.NewSource(42))

	hit := &HitRecord{Point: core.NewVec3(1, 2, 3), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRayAtTime(core.NewVec3(1, 5, 3), core.NewVec3(0, -1, 0), 0.7)

	for i := 0; i < 100; i++ {
		scatter, ok := lambertian.Scatter(rayIn, hit, random)
		if !ok {
			t.Fatal("Lambertian should always scatter")
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Errorf("Expected origin %v, got %v", hit.Point, scatter.Scattered.Origin)
		}
		if scatter.Scattered.Time != 0.7 {
			t.Errorf("Expected ray time 0.7, got %f", scatter.Scattered.Time)
		}
		// normal + point in unit sphere never points below the surface
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Errorf("Direction %v points below the surface", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_UsesTextureAtHit(t *testing.T) {
	checker := NewSolidChecker(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	lambertian := NewTexturedLambertian(checker)
	random := rand.New(rand.NewSource(1))

	hit := &HitRecord{Point: core.NewVec3(0.1, 0.1, 0.1), Normal: core.NewVec3(0, 1, 0)}
	scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, random)

	expected := checker.Value(hit.U, hit.V, hit.Point)
	if !scatter.Attenuation.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, scatter.Attenuation)
	}
}

func TestIsotropic_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.9)
	iso := NewIsotropic(NewSolidColor(albedo))
	random := rand.New(rand.NewSource(3))

	hit := &HitRecord{Point: core.NewVec3(1, 1, 1), Normal: core.NewVec3(1, 0, 0)}
	for i := 0; i < 50; i++ {
		scatter, ok := iso.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(1, 1, 1)), hit, random)
		if !ok {
			t.Fatal("Isotropic should always scatter")
		}
		if scatter.Scattered.Direction.LengthSquared() > 1 {
			t.Errorf("Direction %v should lie in the unit sphere", scatter.Scattered.Direction)
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Errorf("Expected %v, got %v", albedo, scatter.Attenuation)
		}
	}
}

func TestDiffuseLight_EmitsAndAbsorbs(t *testing.T) {
	emission := core.NewVec3(4, 4, 4)
	light := NewDiffuseLight(emission)
	random := rand.New(rand.NewSource(1))

	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), Material: light}
	if _, ok := light.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, random); ok {
		t.Error("Diffuse light should never scatter")
	}

	if got := Emitted(hit); !got.Equals(emission) {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}
}

func TestEmitted_NonEmitterIsBlack(t *testing.T) {
	hit := &HitRecord{Material: NewLambertian(core.NewVec3(1, 1, 1))}
	if got := Emitted(hit); !got.Equals(core.Vec3{}) {
		t.Errorf("Expected black, got %v", got)
	}
}
