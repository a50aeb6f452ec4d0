package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const cornellSize = 555.0

// cornellCamera positions the camera outside the open side of the box looking in
func cornellCamera() renderer.CameraConfig {
	return defaultCamera(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40, 1.0)
}

// cornellWalls returns the five walls of the box plus the given ceiling light.
// The light is flipped so that it emits downward into the box.
func cornellWalls(light integrator.LightRect, emission core.Vec3) []core.Hittable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	lamp := material.NewDiffuseLight(emission)

	return []core.Hittable{
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green), // Left wall seen from the camera
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),
		geometry.NewFlipFace(geometry.NewXZRect(light.X0, light.X1, light.Z0, light.Z1, light.Y, lamp)),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),           // Floor
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white), // Ceiling
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white), // Back wall
	}
}

// cornellBlocks returns the tall and short boxes, rotated and moved into place
func cornellBlocks(mat core.Material) (tall, short core.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellBoxScene creates the classic Cornell box with two rotated blocks.
// Diffuse bounces sample the ceiling light directly.
func NewCornellBoxScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))
	camera := cornellCamera()

	objects := cornellWalls(integrator.CornellLight, core.NewVec3(15, 15, 15))
	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	objects = append(objects, tall, short)

	world, err := buildBVH(objects, camera, random)
	if err != nil {
		return nil, err
	}

	return newScene("cornell-box", world, camera, core.NewVec3(0, 0, 0), 300, 100,
		integrator.NewLightSampledIntegrator(integrator.CornellLight), opts), nil
}

// NewCornellSmokeScene replaces the blocks with dark smoke and white fog under a larger light
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))
	camera := cornellCamera()

	light := integrator.LightRect{X0: 113, X1: 443, Z0: 127, Z1: 432, Y: 554}
	objects := cornellWalls(light, core.NewVec3(7, 7, 7))

	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	objects = append(objects,
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	world, err := buildBVH(objects, camera, random)
	if err != nil {
		return nil, err
	}

	return newScene("cornell-smoke", world, camera, core.NewVec3(0, 0, 0), 300, 200,
		integrator.NewPathTracingIntegrator(), opts), nil
}
