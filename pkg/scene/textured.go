package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewPerlinSpheresScene creates a marble ground and a marble sphere
func NewPerlinSpheresScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))
	camera := defaultCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20, 16.0/9.0)

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(random), 4))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return newScene("perlin-spheres", world, camera, skyBackground, 400, 100,
		integrator.NewPathTracingIntegrator(), opts), nil
}

// NewEarthScene creates a single globe wrapped in the image at opts.TexturePath.
// Without a path the globe shows the missing-texture color.
func NewEarthScene(opts Options) (*Scene, error) {
	camera := defaultCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20, 16.0/9.0)

	texture, err := loadOptionalTexture(opts.TexturePath)
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	)

	return newScene("earth", world, camera, skyBackground, 400, 100,
		integrator.NewPathTracingIntegrator(), opts), nil
}

// NewSimpleLightScene creates the marble spheres lit only by a rectangular light
// and a small spherical light overhead
func NewSimpleLightScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))
	camera := defaultCamera(core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), 20, 16.0/9.0)

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(random), 4))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)

	return newScene("simple-light", world, camera, core.NewVec3(0, 0, 0), 400, 400,
		integrator.NewPathTracingIntegrator(), opts), nil
}

// loadOptionalTexture loads path, or returns an empty image texture when path is empty
func loadOptionalTexture(path string) (material.Texture, error) {
	if path == "" {
		return material.NewImageTexture(0, 0, nil), nil
	}
	texture, err := loaders.LoadImageTexture(path)
	if err != nil {
		return nil, err
	}
	return texture, nil
}
