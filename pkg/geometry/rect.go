package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// rectThickness pads the flat axis of a rectangle's bounding box so the box has volume
const rectThickness = 0.0001

// AARect is an axis-aligned rectangle lying in the plane Axis = K.
// A and B are the two in-plane axes in increasing order; the rectangle covers
// [A0, A1] × [B0, B1]. The outward normal points along +Axis.
type AARect struct {
	Axis     int // 0 = x, 1 = y, 2 = z
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material core.Material

	a, b int
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *AARect {
	return newAARect(2, x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *AARect {
	return newAARect(1, x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *AARect {
	return newAARect(0, y0, y1, z0, z1, k, material)
}

func newAARect(axis int, a0, a1, b0, b1, k float64, material core.Material) *AARect {
	a, b := (axis+1)%3, (axis+2)%3
	if a > b {
		a, b = b, a
	}
	return &AARect{
		Axis:     axis,
		A0:       a0,
		A1:       a1,
		B0:       b0,
		B1:       b1,
		K:        k,
		Material: material,
		a:        a,
		b:        b,
	}
}

// Hit intersects the ray with the rectangle's plane and tests the in-plane bounds
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	d := ray.Direction.Axis(r.Axis)
	if d == 0 {
		// Parallel to the plane
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(r.Axis)) / d
	if t <= tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Axis(r.a) + t*ray.Direction.Axis(r.a)
	b := ray.Origin.Axis(r.b) + t*ray.Direction.Axis(r.b)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.Vec3{}.WithAxis(r.Axis, 1))

	return hitRecord, true
}

// BoundingBox returns the rectangle padded to a small thickness along its normal
func (r *AARect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	lo := core.Vec3{}.
		WithAxis(r.Axis, r.K-rectThickness).
		WithAxis(r.a, r.A0).
		WithAxis(r.b, r.B0)
	hi := core.Vec3{}.
		WithAxis(r.Axis, r.K+rectThickness).
		WithAxis(r.a, r.A1).
		WithAxis(r.b, r.B1)
	return core.NewAABB(lo, hi), true
}
