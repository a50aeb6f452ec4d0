package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          core.Hittable // Usually a BVH over every object
	CameraConfig   renderer.CameraConfig
	Background     core.Color // Radiance returned by rays that escape
	SamplingConfig renderer.SamplingConfig
	Integrator     integrator.Integrator

	camera *renderer.Camera
}

// Options are the external inputs a scene builder may use
type Options struct {
	Seed        int64  // Seeds object placement, noise tables and BVH axis choice
	TexturePath string // Image used by textured scenes; empty keeps the missing-texture color
}

// DefaultOptions returns the options used when nothing is overridden
func DefaultOptions() Options {
	return Options{Seed: 42}
}

// GetWorld returns the scene geometry
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

// GetCamera returns the camera, building it from CameraConfig on first use
func (s *Scene) GetCamera() *renderer.Camera {
	if s.camera == nil {
		s.camera = renderer.NewCamera(s.CameraConfig)
	}
	return s.camera
}

// GetBackground returns the color seen by rays that miss everything
func (s *Scene) GetBackground() core.Color {
	return s.Background
}

// GetIntegrator returns the light transport algorithm for this scene
func (s *Scene) GetIntegrator() integrator.Integrator {
	return s.Integrator
}

// SetWidth changes the output width and derives the height from the camera
// aspect ratio so the framing stays the same
func (s *Scene) SetWidth(width int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = max(1, int(math.Round(float64(width)/s.CameraConfig.AspectRatio)))
}

// BVHStats returns statistics for the scene's BVH, false if the world is not a BVH
func (s *Scene) BVHStats() (geometry.BVHStats, bool) {
	node, ok := s.World.(*geometry.BVHNode)
	if !ok {
		return geometry.BVHStats{}, false
	}
	return node.Stats(), true
}

// newScene fills in sampling defaults shared by every built-in scene
func newScene(name string, world core.Hittable, camera renderer.CameraConfig, background core.Color,
	width, samples int, integ integrator.Integrator, opts Options) *Scene {
	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = samples
	sampling.Seed = opts.Seed

	s := &Scene{
		Name:           name,
		World:          world,
		CameraConfig:   camera,
		Background:     background,
		SamplingConfig: sampling,
		Integrator:     integ,
	}
	s.SetWidth(width)
	return s
}

// buildBVH wraps objects in a BVH spanning the camera shutter interval
func buildBVH(objects []core.Hittable, camera renderer.CameraConfig, random *rand.Rand) (*geometry.BVHNode, error) {
	bvh, err := geometry.NewBVHNode(objects, camera.Time0, camera.Time1, random)
	if err != nil {
		return nil, fmt.Errorf("failed to build BVH: %w", err)
	}
	return bvh, nil
}

// skyBackground is the light blue used by outdoor scenes
var skyBackground = core.NewVec3(0.7, 0.8, 1.0)

// defaultCamera looks from lookFrom at lookAt with +Y up and a pinhole lens
func defaultCamera(lookFrom, lookAt core.Vec3, vfov, aspectRatio float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    lookFrom,
		LookAt:      lookAt,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        vfov,
		AspectRatio: aspectRatio,
	}
}
