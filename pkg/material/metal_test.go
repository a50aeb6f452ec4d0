package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestMetal_PerfectMirror(t *testing.T) {
	mirror := NewMetal(core.NewVec3(0.9, 0.8, 0.7), 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	incoming := core.NewVec3(1, -1, 0)
	ray := core.NewRay(core.NewVec3(-1, 1, 0), incoming)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	result, scattered := mirror.Scatter(ray, hit, sampler)
	if !scattered {
		t.Fatal("Perfect mirror should scatter a ray arriving from above")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected reflection %v, got %v", expected, result.Scattered.Direction)
	}
	if result.Attenuation != mirror.Albedo {
		t.Errorf("Expected attenuation %v, got %v", mirror.Albedo, result.Attenuation)
	}
	if !result.IsSpecular() {
		t.Errorf("Metal scatter should be specular, got PDF %f", result.PDF)
	}
}

func TestMetal_FuzzClamping(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{2.0, 1.0},
	}

	for _, tt := range tests {
		m := NewMetal(core.NewVec3(1, 1, 1), tt.input)
		if m.Fuzzness != tt.expected {
			t.Errorf("NewMetal fuzz %f: expected %f, got %f", tt.input, tt.expected, m.Fuzzness)
		}
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	// Fully fuzzy metal at grazing incidence sometimes scatters below the surface
	fuzzy := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	absorbed := 0
	for i := 0; i < 1000; i++ {
		result, scattered := fuzzy.Scatter(ray, hit, sampler)
		above := result.Scattered.Direction.Dot(hit.Normal) > 0
		if scattered != above {
			t.Fatalf("scatter flag %t disagrees with direction %v", scattered, result.Scattered.Direction)
		}
		if !scattered {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing fuzzy reflections to be absorbed")
	}
}

func TestMetal_ZeroPDFAndNoEmission(t *testing.T) {
	m := NewMetal(core.NewVec3(1, 1, 1), 0.2)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := core.HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	if pdf := m.ScatteringPDF(ray, hit, ray); pdf != 0 {
		t.Errorf("Expected zero scattering PDF, got %f", pdf)
	}
	if e := m.Emitted(ray, hit); e != (core.Vec3{}) {
		t.Errorf("Expected no emission, got %v", e)
	}
}
