package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter samples a cosine-weighted direction around the surface normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	normal := hit.Normal.Normalize()
	direction := core.SampleCosineHemisphere(normal, sampler.Get2D())
	if direction.NearZero() {
		direction = normal
	}
	direction = direction.Normalize()

	// PDF: cos(θ) / π where θ is angle from normal
	pdf := normal.Dot(direction) / math.Pi

	return core.ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: l.Albedo.Value(hit.UV, hit.Point),
		PDF:         pdf,
	}, true
}

// Emitted returns black; lambertian surfaces do not emit
func (l *Lambertian) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF returns cos(θ)/π for the scattered direction, clamped to zero below the surface
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	return math.Max(0, cosine/math.Pi)
}
