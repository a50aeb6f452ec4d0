package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// minLightCosine rejects light samples seen edge-on
const minLightCosine = 1e-6

// LightRect is a horizontal rectangular area light [X0,X1] × [Z0,Z1] at height Y
type LightRect struct {
	X0, X1 float64
	Z0, Z1 float64
	Y      float64
}

// CornellLight is the ceiling light of the standard Cornell box
var CornellLight = LightRect{X0: 213, X1: 343, Z0: 227, Z1: 332, Y: 554}

// Area returns the light's surface area
func (l LightRect) Area() float64 {
	return (l.X1 - l.X0) * (l.Z1 - l.Z0)
}

// Sample returns a uniformly distributed point on the light
func (l LightRect) Sample(sample core.Vec2) core.Vec3 {
	return core.NewVec3(
		core.SampleRange(sample.X, l.X0, l.X1),
		l.Y,
		core.SampleRange(sample.Y, l.Z0, l.Z1),
	)
}

// LightSampledIntegrator estimates radiance by sending every diffuse bounce
// toward a uniformly sampled point on one known rectangular light.
// Specular bounces follow their scattered ray.
type LightSampledIntegrator struct {
	Light LightRect
}

// NewLightSampledIntegrator creates an integrator sampling the given light
func NewLightSampledIntegrator(light LightRect) *LightSampledIntegrator {
	return &LightSampledIntegrator{Light: light}
}

// RayColor implements the Integrator interface
func (li *LightSampledIntegrator) RayColor(ray core.Ray, world core.Hittable, background core.Color, depth int, sampler core.Sampler) core.Color {
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
		return emitted
	}

	if scatter.IsSpecular() {
		return emitted.Add(scatter.Attenuation.MultiplyVec(
			li.RayColor(scatter.Scattered, world, background, depth-1, sampler)))
	}

	onLight := li.Light.Sample(sampler.Get2D())
	toLight := onLight.Subtract(hit.Point)
	distanceSquared := toLight.LengthSquared()
	toLight = toLight.Normalize()

	if toLight.Dot(hit.Normal) < 0 {
		// Light is behind the surface
		return emitted
	}

	lightCosine := math.Abs(toLight.Y)
	if lightCosine < minLightCosine {
		return emitted
	}

	pdf := distanceSquared / (lightCosine * li.Light.Area())
	scattered := core.NewRayAtTime(hit.Point, toLight, ray.Time)

	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
	incoming := li.RayColor(scattered, world, background, depth-1, sampler)

	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdf))
}
