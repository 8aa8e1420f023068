package material

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emit Texture // Emitted radiance
}

// NewDiffuseLight creates a light emitting a uniform color
func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose radiance comes from a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter absorbs every incoming ray; lights only emit
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emitted radiance at the surface point
func (l *DiffuseLight) Emitted(u, v float64, point core.Vec3) core.Color {
	return l.Emit.Value(u, v, point)
}
