package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	// Create a glass material (refractive index of 1.5)
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRayAtTime(core.NewVec3(-1, 1, 0), rayDirection, 0.25)

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0), // Normal pointing up
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	result, scattered := glass.Scatter(ray, hit, sampler)

	if !scattered {
		t.Error("Dielectric should always scatter")
	}

	// Check that attenuation is white (no color absorption)
	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}

	if !result.IsSpecular() {
		t.Errorf("Expected specular scatter, got PDF %f", result.PDF)
	}

	if result.Scattered.Time != ray.Time {
		t.Errorf("Scattered ray should keep time %f, got %f", ray.Time, result.Scattered.Time)
	}

	// Verify that both reflection and refraction can occur
	hasReflection := false
	hasRefraction := false

	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, _ := glass.Scatter(ray, hit, sampler)

		scatteredDirection := result.Scattered.Direction.Normalize()

		// Reflection leaves the surface, refraction bends toward -normal
		if scatteredDirection.Y > 0 {
			hasReflection = true
		} else if scatteredDirection.Y < -0.5 {
			hasRefraction = true
		} else {
			t.Fatalf("Unexpected scatter direction %v", scatteredDirection)
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
	if !hasReflection {
		t.Error("Expected to see Fresnel reflection in at least some cases")
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Ray traveling inside glass toward the surface at a grazing angle.
	// sin(60°) * 1.5 > 1 so refraction is impossible.
	angle := 60.0 * math.Pi / 180.0
	rayDirection := core.NewVec3(math.Sin(angle), math.Cos(angle), 0)
	ray := core.NewRay(core.NewVec3(0, -1, 0), rayDirection)

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, -1, 0), // Faces against the ray
		T:         1.0,
		FrontFace: false,
		Material:  glass,
	}

	for seed := int64(0); seed < 100; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}

		expected := core.Reflect(rayDirection, hit.Normal)
		got := result.Scattered.Direction
		if got.Subtract(expected).Length() > 1e-9 {
			t.Fatalf("Seed %d: expected total internal reflection %v, got %v", seed, expected, got)
		}
	}
}

func TestDielectricMatchedIndexPassesStraightThrough(t *testing.T) {
	// An interface with index 1.0 neither bends nor reflects at normal incidence
	air := NewDielectric(1.0)

	direction := core.NewVec3(0, 0, -1)
	ray := core.NewRay(core.NewVec3(0, 0, 1), direction)

	for _, frontFace := range []bool{true, false} {
		hit := core.HitRecord{
			Point:     core.NewVec3(0, 0, 0),
			Normal:    core.NewVec3(0, 0, 1),
			T:         1.0,
			FrontFace: frontFace,
			Material:  air,
		}

		for seed := int64(0); seed < 50; seed++ {
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
			result, scattered := air.Scatter(ray, hit, sampler)
			if !scattered {
				t.Fatal("Dielectric should always scatter")
			}
			got := result.Scattered.Direction
			if got.Subtract(direction).Length() > 1e-9 {
				t.Fatalf("frontFace=%t seed %d: expected undeviated direction %v, got %v",
					frontFace, seed, direction, got)
			}
		}
	}
}

func TestSchlickReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"normal incidence glass", 1.0, 1.0 / 1.5, 0.04},
		{"grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"matched index normal", 1.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Reflectance(%f, %f) = %f, expected %f", tt.cosine, tt.ratio, got, tt.expected)
			}
		})
	}
}
