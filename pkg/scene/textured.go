package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
	"github.com/df07/go-nextweek-raytracer/pkg/loaders"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

// outdoorCamera is the (13,2,3) view shared by the noise and texture scenes
func outdoorCamera(opts Options) renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   opts.aspectRatio(2.0),
		FocusDistance: 10.0,
	}
}

// NewPerlinScene creates a small and a ground sphere with marble noise
func NewPerlinScene(opts Options) (*Scene, error) {
	random := opts.random()
	noise := material.NewNoiseTexture(material.NewPerlin(random), 4.0)
	marble := material.NewTexturedLambertian(noise)

	b := NewBuilder(random)
	b.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return finish("perlin", b, outdoorCamera(opts), integrator.NewSkyBackground(), renderer.DefaultSamplingConfig())
}

// NewEarthScene creates a globe textured with earthmap.jpg from the texture
// directory, or a UV debug texture when the file is absent
func NewEarthScene(opts Options) (*Scene, error) {
	texture, err := loadTexture(opts, "earthmap.jpg")
	if err != nil {
		return nil, fmt.Errorf("scene earth: %w", err)
	}

	b := NewBuilder(opts.random())
	b.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))

	return finish("earth", b, outdoorCamera(opts), integrator.NewSkyBackground(), renderer.DefaultSamplingConfig())
}

// NewSimpleLightScene lights the noise spheres with an emissive sphere and
// rectangle against a black background. The marble uses the permutation-hash
// noise basis.
func NewSimpleLightScene(opts Options) (*Scene, error) {
	config := renderer.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: opts.aspectRatio(2.0),
	}

	random := opts.random()
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlinImproved(random), 4.0))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	b := NewBuilder(random)
	b.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
	)

	sampling := renderer.SamplingConfig{SamplesPerPixel: 400, MaxDepth: integrator.DefaultMaxDepth}
	return finish("light", b, config, integrator.NewBlackBackground(), sampling)
}

// loadTexture loads name from the texture directory. A missing file falls
// back to a UV debug pattern; any other failure is returned.
func loadTexture(opts Options, name string) (material.Texture, error) {
	path := filepath.Join(opts.TextureDir, name)

	texture, err := loaders.LoadImageTexture(path, opts.MaxTextureSize)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warningf("texture %s not found, using UV debug texture", path)
		return material.NewUVDebugTexture(256, 128), nil
	}
	if err != nil {
		return nil, err
	}
	return texture, nil
}
