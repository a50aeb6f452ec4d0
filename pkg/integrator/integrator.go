package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// tMin keeps a scattered ray from re-hitting the surface it just left
const tMin = 0.001

var tMax = math.Inf(1)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most depth bounces.
	// It returns exactly black when depth <= 0.
	RayColor(ray core.Ray, world core.Hittable, background core.Color, depth int, sampler core.Sampler) core.Color
}
