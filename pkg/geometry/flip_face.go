package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// FlipFace reverses which side of an object counts as its front face.
// Used to make one-sided emitters such as a ceiling light face downward.
type FlipFace struct {
	Object core.Hittable
}

// NewFlipFace wraps object with its front face reversed
func NewFlipFace(object core.Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit forwards to the wrapped object and inverts FrontFace
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox forwards to the wrapped object
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}
