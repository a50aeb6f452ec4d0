package geometry

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boundaryEpsilon separates the entry crossing from the exit crossing
const boundaryEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium filling a boundary shape.
// The boundary must be convex: a ray enters it at most once.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64

	// Free-flight distances are drawn from generators pooled per goroutine,
	// since Hit is called concurrently from every render worker.
	randoms sync.Pool
}

var mediumSeed atomic.Int64

// NewConstantMedium creates a medium of the given density with an isotropic phase function of color albedo
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium creates a medium whose isotropic albedo comes from a texture
func NewTexturedConstantMedium(boundary core.Hittable, density float64, albedo material.Texture) *ConstantMedium {
	m := &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1 / density,
	}
	m.randoms.New = func() any {
		return rand.New(rand.NewSource(mediumSeed.Add(1)))
	}
	return m
}

// Hit finds where the ray crosses the boundary and samples an exponential
// free-flight distance inside it. The ray passes through when the sampled
// distance falls beyond the exit point.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+boundaryEpsilon, math.Inf(1))
	if !ok {
		return nil, false
	}

	t0 := math.Max(entry.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	t0 = math.Max(t0, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t1 - t0) * rayLength
	hitDistance := m.negInvDensity * math.Log(m.uniform())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// uniform returns a sample in (0, 1]
func (m *ConstantMedium) uniform() float64 {
	random := m.randoms.Get().(*rand.Rand)
	u := 1 - random.Float64()
	m.randoms.Put(random)
	return u
}

// BoundingBox is the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
