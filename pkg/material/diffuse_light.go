package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emissive material; it emits from its front face only
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return NewTexturedDiffuseLight(NewSolidColor(emission))
}

// NewTexturedDiffuseLight creates a light whose emission comes from a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter never scatters - lights absorb all incoming rays
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the texture color on the front face and black on the back face
func (e *DiffuseLight) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Emit.Value(hit.UV, hit.Point)
}

// ScatteringPDF is zero since nothing scatters
func (e *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}
