package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const uniformSpherePDF = 1.0 / (4.0 * math.Pi)

// Isotropic is the phase function of a participating medium: it scatters uniformly in all directions
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with a solid albedo
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a textured albedo
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction on the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	direction := core.SampleOnUnitSphere(sampler.Get2D())
	return core.ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: i.Albedo.Value(hit.UV, hit.Point),
		PDF:         uniformSpherePDF,
	}, true
}

// Emitted returns black
func (i *Isotropic) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is the uniform sphere density 1/(4π)
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return uniformSpherePDF
}
