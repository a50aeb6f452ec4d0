package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTwoSpheresScene creates a small sphere resting on a huge ground sphere,
// seen from the origin looking down -Z
func NewTwoSpheresScene(opts Options) (*Scene, error) {
	camera := defaultCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 90, 16.0/9.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
	)

	return newScene("two-spheres", world, camera, skyBackground, 400, 100,
		integrator.NewPathTracingIntegrator(), opts), nil
}

// NewRandomSpheresScene creates a grid of randomly placed small spheres on a
// checkered ground, with three large feature spheres. Diffuse spheres bounce
// upward during the shutter interval.
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))

	camera := defaultCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20, 16.0/9.0)
	camera.Aperture = 0.1
	camera.FocusDistance = 10.0
	camera.Time0, camera.Time1 = 0.0, 1.0

	checker := material.NewCheckerColors(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.3, 0.1))
	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	clearance := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			chooseMat := random.Float64()
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				center1 := center.Add(core.NewVec3(0, core.SampleRange(random.Float64(), 0, 0.5), 0))
				objects = append(objects, geometry.NewMovingSphere(center, center1, 0.0, 1.0, 0.2,
					material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					core.SampleRange(random.Float64(), 0.5, 1),
					core.SampleRange(random.Float64(), 0.5, 1),
					core.SampleRange(random.Float64(), 0.5, 1),
				)
				fuzz := core.SampleRange(random.Float64(), 0, 0.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	world, err := buildBVH(objects, camera, random)
	if err != nil {
		return nil, err
	}

	return newScene("random-spheres", world, camera, skyBackground, 400, 100,
		integrator.NewPathTracingIntegrator(), opts), nil
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
