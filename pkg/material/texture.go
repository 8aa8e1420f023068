package material

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and 3D point.
	// UV is used for image textures, point for procedural textures.
	Value(u, v float64, point core.Vec3) core.Color
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Color {
	return s.Color
}

// CheckerTexture alternates between two textures in a 3D sine lattice
type CheckerTexture struct {
	Odd  Texture
	Even Texture
}

// NewCheckerTexture creates a checker texture from two sub-textures
func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

// NewSolidChecker creates a checker texture alternating two solid colors
func NewSolidChecker(odd, even core.Color) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(odd), NewSolidColor(even))
}

// Value selects a sub-texture by the sign of sin(10x)·sin(10y)·sin(10z)
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Color {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines > 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}

// NoiseSource is a turbulence function over 3D space
type NoiseSource interface {
	Turbulence(p core.Vec3, depth int) float64
}

// turbulenceDepth is the number of octaves summed by NoiseTexture
const turbulenceDepth = 7

// NoiseTexture renders a marble-like gray pattern from turbulent noise
type NoiseTexture struct {
	Noise NoiseSource
	Scale float64 // Spatial frequency of the sine bands
}

// NewNoiseTexture creates a noise texture over the given noise tables
func NewNoiseTexture(noise NoiseSource, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Value maps turbulence into [0,1] gray via 0.5·(1 + sin(scale·z + 10·turb(p)))
func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Color {
	t := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, turbulenceDepth)))
	return core.NewVec3(t, t, t)
}
