package material

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// Isotropic scatters uniformly in all directions; used inside participating media
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with the given albedo texture
func NewIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter sends the ray toward a random point in the unit sphere around the hit
func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, core.RandomInUnitSphere(random), rayIn.Time),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
