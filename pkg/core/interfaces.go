package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always facing against the incoming ray
	T         float64  // Parameter t along the ray
	UV        Vec2     // Surface parameterization at the hit point
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection with t in (tMin, tMax]
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the object for all times in [time0, time1].
	// The second result is false for objects without a finite extent.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation (albedo)
	PDF         float64
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// Material describes how a surface scatters and emits light
type Material interface {
	// Scatter samples an outgoing ray. The second result is false when the ray is absorbed.
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)

	// Emitted returns light emitted at the hit point, black for non-emissive materials
	Emitted(rayIn Ray, hit HitRecord) Vec3

	// ScatteringPDF is the density of scattering from rayIn into scattered
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64
}
