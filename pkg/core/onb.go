package core

import "math"

// ONB is an orthonormal basis; W is the axis local directions are built around
type ONB struct {
	axis [3]Vec3
}

// NewONBFromW builds a basis whose W axis is the normalized n
func NewONBFromW(n Vec3) ONB {
	w := n.Normalize()
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{axis: [3]Vec3{u, v, w}}
}

func (o ONB) U() Vec3 { return o.axis[0] }
func (o ONB) V() Vec3 { return o.axis[1] }
func (o ONB) W() Vec3 { return o.axis[2] }

// Local maps local coordinates (a, b, c) to world space
func (o ONB) Local(a, b, c float64) Vec3 {
	return o.axis[0].Multiply(a).Add(o.axis[1].Multiply(b)).Add(o.axis[2].Multiply(c))
}

// LocalVec maps a local-frame vector to world space
func (o ONB) LocalVec(v Vec3) Vec3 {
	return o.Local(v.X, v.Y, v.Z)
}
