package integrator

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// Background supplies radiance for rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Color
}

// GradientBackground blends Bottom to Top by the ray's vertical direction
type GradientBackground struct {
	Bottom core.Color
	Top    core.Color
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(bottom, top core.Color) *GradientBackground {
	return &GradientBackground{Bottom: bottom, Top: top}
}

// NewSkyBackground returns the white-to-blue sky used by outdoor scenes
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))
}

// Color maps unit direction y from [-1,1] to a blend factor in [0,1]
func (g *GradientBackground) Color(ray core.Ray) core.Color {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}

// SolidBackground returns one color for every escaping ray
type SolidBackground struct {
	Value core.Color
}

// NewSolidBackground creates a uniform background
func NewSolidBackground(color core.Color) *SolidBackground {
	return &SolidBackground{Value: color}
}

// NewBlackBackground is used by enclosed scenes lit only by emitters
func NewBlackBackground() *SolidBackground {
	return NewSolidBackground(core.Vec3{})
}

// Color returns the fixed background color
func (s *SolidBackground) Color(ray core.Ray) core.Color {
	return s.Value
}
