package core

import (
	"math/rand"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"negative direction on all axes", NewRay(NewVec3(5, 5, 5), NewVec3(-1, -1, -1)), true},
		{"miss above", NewRay(NewVec3(0, 5, 5), NewVec3(0, 0, -1)), false},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"zero component inside slab", NewRay(NewVec3(0.5, 0, 5), NewVec3(0, 0, -1)), true},
		{"zero component outside slab", NewRay(NewVec3(2, 0, 5), NewVec3(0, 0, -1)), false},
		{"origin inside box", NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, 1000); got != tt.expected {
				t.Errorf("Expected hit=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAABB_HitRespectsInterval(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))

	// Box spans t in [4, 6]
	if box.Hit(ray, 0.001, 3.5) {
		t.Error("Expected miss when tMax ends before the box")
	}
	if box.Hit(ray, 6.5, 100) {
		t.Error("Expected miss when tMin starts after the box")
	}
	if !box.Hit(ray, 4.5, 5.5) {
		t.Error("Expected hit when interval overlaps the box")
	}
}

func TestAABB_FlatBoxRejected(t *testing.T) {
	// A zero-thickness box degenerates the slab interval along its flat axis
	flat := NewAABB(NewVec3(-1, 0, -1), NewVec3(1, 0, 1))
	ray := NewRay(NewVec3(0, 5, 0), NewVec3(0, -1, 0))
	if flat.Hit(ray, 0.001, 100) {
		t.Error("Expected zero-thickness box to reject the ray")
	}

	padded := NewAABB(NewVec3(-1, -0.0001, -1), NewVec3(1, 0.0001, 1))
	if !padded.Hit(ray, 0.001, 100) {
		t.Error("Expected padded box to accept the ray")
	}
}

func TestSurroundingBox_CommutativeAndContaining(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	randomBox := func() AABB {
		a := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		b := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		return NewAABBFromPoints(a, b)
	}

	for i := 0; i < 200; i++ {
		a, b := randomBox(), randomBox()
		ab := SurroundingBox(a, b)
		ba := SurroundingBox(b, a)

		if ab != ba {
			t.Fatalf("SurroundingBox not commutative: %v vs %v", ab, ba)
		}
		if !boxContains(ab, a) || !boxContains(ab, b) {
			t.Fatalf("SurroundingBox %v does not contain inputs %v and %v", ab, a, b)
		}
		if !ab.IsValid() {
			t.Fatalf("SurroundingBox produced invalid box %v", ab)
		}
	}
}

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-1, 2, 0), NewVec3(0, 0, 5))
	if box.Min != NewVec3(-1, -2, 0) || box.Max != NewVec3(1, 2, 5) {
		t.Errorf("Unexpected box %v", box)
	}

	if (NewAABBFromPoints() != AABB{}) {
		t.Error("Expected zero box for no points")
	}
}

// boxContains reports whether inner lies entirely inside outer
func boxContains(outer, inner AABB) bool {
	return outer.Min.X <= inner.Min.X && outer.Min.Y <= inner.Min.Y && outer.Min.Z <= inner.Min.Z &&
		outer.Max.X >= inner.Max.X && outer.Max.Y >= inner.Max.Y && outer.Max.Z >= inner.Max.Z
}
