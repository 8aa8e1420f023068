package scene

import (
	"fmt"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

// randomGridHalfSize spheres are scattered over [-n, n) on both ground axes
const randomGridHalfSize = 11

// NewRandomScene creates the random sphere field: small diffuse spheres that
// bounce upward during the shutter interval, metal and glass spheres, and
// three large feature spheres on a checkered ground
func NewRandomScene(opts Options) (*Scene, error) {
	config := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   opts.aspectRatio(2.0),
		Aperture:      0.1,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	}

	random := opts.random()
	b := NewBuilder(random)

	checker := material.NewSolidChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	b.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	glass := material.NewDielectric(1.5)
	feature := core.NewVec3(4, 0.2, 0)

	for a := -randomGridHalfSize; a < randomGridHalfSize; a++ {
		for c := -randomGridHalfSize; c < randomGridHalfSize; c++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(c)+0.9*random.Float64(),
			)

			if center.Subtract(feature).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// diffuse, bouncing upward
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				offset := core.NewVec3(0, 0.5*random.Float64(), 0)
				sphere, err := geometry.NewMovingSphere(center, offset, config.ShutterOpen,
					config.ShutterClose-config.ShutterOpen, 0.2, material.NewLambertian(albedo))
				if err != nil {
					return nil, fmt.Errorf("scene random: %w", err)
				}
				b.Add(sphere)
			case chooseMat < 0.95:
				// metal
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				b.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*random.Float64())))
			default:
				b.Add(geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	b.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return finish("random", b, config, integrator.NewSkyBackground(), renderer.DefaultSamplingConfig())
}
