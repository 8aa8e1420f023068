package scene

import (
	"fmt"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

const (
	finalGroundTiles    = 20   // Ground is a finalGroundTiles² grid of boxes
	finalGroundTile     = 100  // Box footprint
	finalClusterSpheres = 1000 // Spheres in the rotated cluster
)

// NewFinalScene creates the closing showcase: a terrain of random-height
// boxes, a moving sphere, five feature spheres, a glass sphere filled
// with blue medium, thin global fog and a rotated cluster of small spheres
func NewFinalScene(opts Options) (*Scene, error) {
	config := renderer.CameraConfig{
		Center:        core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   opts.aspectRatio(1.0),
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	}
	t0, t1 := config.ShutterOpen, config.ShutterClose

	random := opts.random()
	b := NewBuilder(random)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	b.Add(geometry.NewXZRect(123, 423, 147, 412, 554, light))

	// ground
	terrain := NewBuilder(random)
	for i := 0; i < finalGroundTiles; i++ {
		for j := 0; j < finalGroundTiles; j++ {
			pmin := core.NewVec3(-1000+float64(i)*finalGroundTile, 0, -1000+float64(j)*finalGroundTile)
			pmax := core.NewVec3(pmin.X+finalGroundTile, 100*(random.Float64()+0.01), pmin.Z+finalGroundTile)
			terrain.Add(geometry.NewBox(pmin, pmax, ground))
		}
	}
	terrainBVH, err := terrain.BuildBVH(t0, t1)
	if err != nil {
		return nil, fmt.Errorf("scene final: terrain: %w", err)
	}
	b.Add(terrainBVH)

	// large spheres
	moving, err := geometry.NewMovingSphere(core.NewVec3(400, 400, 400), core.NewVec3(30, 0, 0), t0, t1-t0, 50,
		material.NewLambertian(core.NewVec3(0.8, 0.1, 0.1)))
	if err != nil {
		return nil, fmt.Errorf("scene final: %w", err)
	}

	venus, err := loadTexture(opts, "venusmap.jpg")
	if err != nil {
		return nil, fmt.Errorf("scene final: %w", err)
	}

	noise := material.NewNoiseTexture(material.NewPerlin(random), 0.05)

	b.Add(
		moving,
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 10.0)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(noise)),
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(venus)),
	)

	// glass shell around a blue medium, plus thin fog over everything
	shell := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	b.Add(
		shell,
		geometry.NewConstantMedium(shell, 0.2, material.NewSolidColor(core.NewVec3(0.2, 0.4, 0.9))),
		geometry.NewConstantMedium(
			geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5)),
			0.0001,
			material.NewSolidColor(core.NewVec3(1, 1, 1)),
		),
	)

	// sphere cluster
	cluster := NewBuilder(random)
	for i := 0; i < finalClusterSpheres; i++ {
		center := core.NewVec3(random.Float64(), random.Float64(), random.Float64()).Multiply(165)
		cluster.Add(geometry.NewSphere(center, 10, white))
	}
	clusterBVH, err := cluster.BuildBVH(t0, t1)
	if err != nil {
		return nil, fmt.Errorf("scene final: cluster: %w", err)
	}
	b.Add(geometry.NewTranslate(
		geometry.NewRotate(clusterBVH, geometry.AxisY, 15),
		core.NewVec3(-100, 270, 395),
	))

	return finish("final", b, config, integrator.NewBlackBackground(), renderer.DefaultSamplingConfig())
}
