package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLightEmitsFromFrontFaceOnly(t *testing.T) {
	emission := core.NewVec3(15, 15, 15)
	light := NewDiffuseLight(emission)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	front := core.HitRecord{Point: core.NewVec3(0, 1, 0), Normal: core.NewVec3(0, -1, 0), FrontFace: true}
	if got := light.Emitted(ray, front); got != emission {
		t.Errorf("Front face: expected %v, got %v", emission, got)
	}

	back := front
	back.FrontFace = false
	if got := light.Emitted(ray, back); got != (core.Vec3{}) {
		t.Errorf("Back face: expected black, got %v", got)
	}
}

func TestTexturedDiffuseLightEmitsTexture(t *testing.T) {
	bright := core.NewVec3(4, 4, 4)
	dim := core.NewVec3(1, 1, 1)
	light := NewTexturedDiffuseLight(NewCheckerColors(bright, dim))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	// sin(10·0.15)³ > 0 picks the even color; flipping x to -0.15 makes the product negative
	even := core.HitRecord{Point: core.NewVec3(0.15, 0.15, 0.15), FrontFace: true}
	if got := light.Emitted(ray, even); got != bright {
		t.Errorf("Even cell: expected %v, got %v", bright, got)
	}

	odd := core.HitRecord{Point: core.NewVec3(-0.15, 0.15, 0.15), FrontFace: true}
	if got := light.Emitted(ray, odd); got != dim {
		t.Errorf("Odd cell: expected %v, got %v", dim, got)
	}
}

func TestDiffuseLightNeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	hit := core.HitRecord{Normal: core.NewVec3(0, -1, 0), FrontFace: true}

	if _, scattered := light.Scatter(ray, hit, sampler); scattered {
		t.Error("DiffuseLight should absorb every ray")
	}
}

func TestIsotropicScatter(t *testing.T) {
	albedo := core.NewVec3(0.3, 0.3, 0.3)
	iso := NewIsotropic(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRayAtTime(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0.4)
	hit := core.HitRecord{Point: core.NewVec3(1, 0, 0), Normal: core.NewVec3(1, 0, 0), FrontFace: true}

	const n = 20000
	var mean core.Vec3
	for i := 0; i < n; i++ {
		result, scattered := iso.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Isotropic should always scatter")
		}
		dir := result.Scattered.Direction
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", dir.Length())
		}
		if result.Scattered.Time != ray.Time {
			t.Fatalf("Scattered ray should keep time %f", ray.Time)
		}
		if result.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, result.Attenuation)
		}
		if math.Abs(result.PDF-1/(4*math.Pi)) > 1e-12 {
			t.Fatalf("Expected PDF 1/4π, got %f", result.PDF)
		}
		mean = mean.Add(dir)
	}

	// Uniform sphere directions average to the origin
	mean = mean.Divide(n)
	if mean.Length() > 0.03 {
		t.Errorf("Mean scatter direction %v should be near zero", mean)
	}

	if pdf := iso.ScatteringPDF(ray, hit, ray); math.Abs(pdf-1/(4*math.Pi)) > 1e-12 {
		t.Errorf("ScatteringPDF should be 1/4π, got %f", pdf)
	}
}
