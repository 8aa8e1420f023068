package scene

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera(opts Options) renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   opts.aspectRatio(1.0),
		FocusDistance: 10.0,
	}
}

// cornellWalls adds the walls, floor and ceiling plus a ceiling light spanning
// [x0,x1]x[z0,z1]. It returns the white wall material for reuse.
func cornellWalls(b *Builder, light material.Material, x0, x1, z0, z1 float64) material.Material {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	b.Add(
		geometry.NewFlipNormal(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)), // left wall
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),                                 // right wall
		geometry.NewXZRect(x0, x1, z0, z1, boxSize-1, light),                               // ceiling light
		geometry.NewFlipNormal(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white)), // ceiling
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),                               // floor
		geometry.NewFlipNormal(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)), // back wall
	)
	return white
}

// cornellBlocks returns the short block rotated -18° and the tall block rotated 15°
func cornellBlocks(mat material.Material) (short, tall geometry.Shape) {
	short = geometry.NewTranslate(
		geometry.NewRotate(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), geometry.AxisY, -18),
		core.NewVec3(130, 0, 65),
	)
	tall = geometry.NewTranslate(
		geometry.NewRotate(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), geometry.AxisY, 15),
		core.NewVec3(265, 0, 295),
	)
	return short, tall
}

// NewCornellScene creates a classic Cornell box with two rotated blocks
func NewCornellScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.random())
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	white := cornellWalls(b, light, 213, 343, 227, 332)

	short, tall := cornellBlocks(white)
	b.Add(short, tall)

	sampling := renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: integrator.DefaultMaxDepth}
	return finish("cornell", b, cornellCamera(opts), integrator.NewBlackBackground(), sampling)
}

// NewCornellSmokeScene replaces the Cornell blocks with constant-density
// white and black smoke under a larger, dimmer light
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.random())
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	white := cornellWalls(b, light, 113, 443, 127, 432)

	short, tall := cornellBlocks(white)
	b.Add(
		geometry.NewConstantMedium(short, 0.01, material.NewSolidColor(core.NewVec3(1, 1, 1))),
		geometry.NewConstantMedium(tall, 0.01, material.NewSolidColor(core.NewVec3(0, 0, 0))),
	)

	sampling := renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: integrator.DefaultMaxDepth}
	return finish("cornell-smoke", b, cornellCamera(opts), integrator.NewBlackBackground(), sampling)
}
