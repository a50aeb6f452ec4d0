package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	groundBoxesPerSide = 20
	groundBoxWidth     = 100.0
	clusterSpheres     = 1000
)

// NewFinalScene creates a scene using every primitive, material and volume:
// a field of ground boxes, a moving sphere, glass, fuzzed metal, a subsurface
// glass ball, global fog, an image-textured globe, marble and a rotated sphere cluster
func NewFinalScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))

	camera := defaultCamera(core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), 40, 1.0)
	camera.Time0, camera.Time1 = 0.0, 1.0

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := make([]core.Hittable, 0, groundBoxesPerSide*groundBoxesPerSide)
	for i := 0; i < groundBoxesPerSide; i++ {
		for j := 0; j < groundBoxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*groundBoxWidth
			z0 := -1000.0 + float64(j)*groundBoxWidth
			y1 := core.SampleRange(random.Float64(), 1, 101)
			boxes = append(boxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+groundBoxWidth, y1, z0+groundBoxWidth),
				ground,
			))
		}
	}
	groundBVH, err := buildBVH(boxes, camera, random)
	if err != nil {
		return nil, err
	}

	light := integrator.LightRect{X0: 123, X1: 423, Z0: 147, Z1: 412, Y: 554}
	lamp := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))

	subsurface := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	fogBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))

	globe, err := loadOptionalTexture(opts.TexturePath)
	if err != nil {
		return nil, err
	}

	marble := material.NewNoiseTexture(material.NewPerlin(random), 0.1)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]core.Hittable, 0, clusterSpheres)
	for i := 0; i < clusterSpheres; i++ {
		center := core.NewVec3(
			core.SampleRange(random.Float64(), 0, 165),
			core.SampleRange(random.Float64(), 0, 165),
			core.SampleRange(random.Float64(), 0, 165),
		)
		cluster = append(cluster, geometry.NewSphere(center, 10, white))
	}
	clusterBVH, err := buildBVH(cluster, camera, random)
	if err != nil {
		return nil, err
	}

	objects := []core.Hittable{
		groundBVH,
		geometry.NewFlipFace(geometry.NewXZRect(light.X0, light.X1, light.Z0, light.Z1, light.Y, lamp)),
		geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
		subsurface,
		geometry.NewConstantMedium(subsurface, 0.2, core.NewVec3(0.2, 0.4, 0.9)),
		geometry.NewConstantMedium(fogBoundary, 0.0001, core.NewVec3(1, 1, 1)),
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globe)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(marble)),
		geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)),
	}

	world, err := buildBVH(objects, camera, random)
	if err != nil {
		return nil, err
	}

	return newScene("final", world, camera, core.NewVec3(0, 0, 0), 400, 200,
		integrator.NewPathTracingIntegrator(), opts), nil
}
