package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// PathTracingIntegrator follows the material's own scattered ray at every bounce.
// Unlike LightSampledIntegrator it needs no knowledge of where the lights are.
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor implements the Integrator interface
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hittable, background core.Color, depth int, sampler core.Sampler) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, tMin, tMax)
	if !isHit {
		return background
	}

	emitted := hit.Material.Emitted(ray, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return emitted
	}

	// Sampling from the material's own distribution cancels scattering_pdf against pdf
	incoming := pt.RayColor(scatter.Scattered, world, background, depth-1, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
