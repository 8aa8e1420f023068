package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	// Clear glass absorbs nothing
	attenuation := core.NewVec3(1.0, 1.0, 1.0)
	reflected := Reflect(rayIn.Direction, hit.Normal)

	dDotN := rayIn.Direction.Dot(hit.Normal)
	cos := dDotN / rayIn.Direction.Length()

	// Determine if we're exiting (direction along the outward normal) or entering
	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if dDotN > 0 {
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * cos
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -cos
	}

	direction := reflected
	if refracted, ok := Refract(rayIn.Direction, outwardNormal, niOverNt); ok {
		if random.Float64() > Reflectance(cosine, d.RefractiveIndex) {
			direction = refracted
		}
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refIndex float64) float64 {
	// R0 is the reflectance at normal incidence
	r0 := (1 - refIndex) / (1 + refIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
