package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RotateY rotates an object about the Y axis
type RotateY struct {
	Object   core.Hittable
	sinTheta float64
	cosTheta float64
}

// NewRotateY wraps object rotated by angle degrees about +Y (counter-clockwise
// looking down from +Y)
func NewRotateY(object core.Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	return &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// toWorld rotates an object-space vector by +theta
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toObject rotates a world-space vector by -theta
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, intersects, and rotates the result back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}

	// Rotation preserves dot products, so FrontFace still holds
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)

	return hit, true
}

// BoundingBox rotates the eight corners of the object's box for the same
// time interval and bounds the result
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := make([]core.Vec3, 0, 8)
	for _, x := range []float64{box.Min.X, box.Max.X} {
		for _, y := range []float64{box.Min.Y, box.Max.Y} {
			for _, z := range []float64{box.Min.Z, box.Max.Z} {
				corners = append(corners, r.toWorld(core.NewVec3(x, y, z)))
			}
		}
	}
	return core.NewAABBFromPoints(corners...), true
}
