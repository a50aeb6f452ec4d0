package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MockScene implements Scene for tests
type MockScene struct {
	world      core.Hittable
	camera     *Camera
	background core.Color
	integrator integrator.Integrator
}

func (m MockScene) GetWorld() core.Hittable               { return m.world }
func (m MockScene) GetCamera() *Camera                    { return m.camera }
func (m MockScene) GetBackground() core.Color             { return m.background }
func (m MockScene) GetIntegrator() integrator.Integrator { return m.integrator }

// recordingLogger counts messages
type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Printf(format string, args ...interface{}) {
	r.messages = append(r.messages, format)
}

func TestRaytracer_EmptyWorldIsBackground(t *testing.T) {
	background := core.NewVec3(0.25, 0.5, 1)
	scene := MockScene{
		world:      geometry.NewHittableList(),
		camera:     NewCamera(pinholeConfig()),
		background: background,
		integrator: integrator.NewPathTracingIntegrator(),
	}
	config := SamplingConfig{Width: 16, Height: 9, SamplesPerPixel: 4, MaxDepth: 5, NumWorkers: 3, Seed: 1}

	frame, stats, err := NewRaytracer(scene, config, nil).Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	expected := background.Multiply(4)
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			if c := frame.Accumulated(x, y); c.Subtract(expected).Length() > 1e-12 {
				t.Fatalf("Pixel (%d,%d) = %v, expected %v", x, y, c, expected)
			}
		}
	}

	if stats.TotalPixels != 144 || stats.TotalSamples != 576 || stats.Rows != 9 || stats.Workers != 3 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	rows := 0
	for _, r := range stats.RowsPerWorker {
		rows += r
	}
	if rows != 9 {
		t.Errorf("Workers rendered %d rows, expected 9", rows)
	}
}

func TestRaytracer_ImageOrientation(t *testing.T) {
	// Bright ground plane below the horizon, black sky above
	ground := geometry.NewXZRect(-1000, 1000, -1000, 1000, -1, material.NewDiffuseLight(core.NewVec3(1, 1, 1)))
	scene := MockScene{
		world:      geometry.NewHittableList(ground),
		camera:     NewCamera(pinholeConfig()),
		integrator: integrator.NewPathTracingIntegrator(),
	}
	config := SamplingConfig{Width: 8, Height: 6, SamplesPerPixel: 2, MaxDepth: 3, NumWorkers: 2, Seed: 9}

	frame, _, err := NewRaytracer(scene, config, nil).Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := frame.Image()
	if top := img.RGBAAt(4, 0); top.R != 0 {
		t.Errorf("Top row should see the black sky, got %v", top)
	}
	if bottom := img.RGBAAt(4, 5); bottom.R != 255 {
		t.Errorf("Bottom row should see the lit ground, got %v", bottom)
	}
}

func TestRaytracer_LightSampledCornellIsFinite(t *testing.T) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	world := geometry.NewHittableList(
		geometry.NewYZRect(0, 555, 0, 555, 555, white),
		geometry.NewYZRect(0, 555, 0, 555, 0, white),
		geometry.NewFlipFace(geometry.NewXZRect(213, 343, 227, 332, 554, light)),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	)
	scene := MockScene{
		world: world,
		camera: NewCamera(CameraConfig{
			LookFrom:    core.NewVec3(278, 278, -800),
			LookAt:      core.NewVec3(278, 278, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40,
			AspectRatio: 1,
		}),
		integrator: integrator.NewLightSampledIntegrator(integrator.CornellLight),
	}
	logger := &recordingLogger{}
	config := SamplingConfig{Width: 12, Height: 12, SamplesPerPixel: 8, MaxDepth: 10, NumWorkers: 4, Seed: 42}

	frame, _, err := NewRaytracer(scene, config, logger).Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	lit := 0
	for _, c := range frame.Pixels {
		if !c.IsFinite() || c.X < 0 || c.Y < 0 || c.Z < 0 {
			t.Fatalf("Invalid accumulated color %v", c)
		}
		if c.X > 0 {
			lit++
		}
	}
	if lit < len(frame.Pixels)/2 {
		t.Errorf("Expected most of the box to be lit, got %d of %d pixels", lit, len(frame.Pixels))
	}
	if len(logger.messages) < 2 {
		t.Errorf("Expected start and completion log lines, got %v", logger.messages)
	}
}

func TestRaytracer_InvalidConfig(t *testing.T) {
	scene := MockScene{
		world:      geometry.NewHittableList(),
		camera:     NewCamera(pinholeConfig()),
		integrator: integrator.NewPathTracingIntegrator(),
	}

	_, _, err := NewRaytracer(scene, SamplingConfig{Width: 0, Height: 10, SamplesPerPixel: 1}, nil).Render()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestSamplingConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SamplingConfig)
		wantErr bool
	}{
		{"default", func(c *SamplingConfig) {}, false},
		{"zero width", func(c *SamplingConfig) { c.Width = 0 }, true},
		{"negative height", func(c *SamplingConfig) { c.Height = -2 }, true},
		{"no samples", func(c *SamplingConfig) { c.SamplesPerPixel = 0 }, true},
		{"negative depth", func(c *SamplingConfig) { c.MaxDepth = -1 }, true},
		{"zero depth", func(c *SamplingConfig) { c.MaxDepth = 0 }, false},
		{"negative workers", func(c *SamplingConfig) { c.NumWorkers = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultSamplingConfig()
			tt.mutate(&config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %t", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if ar := DefaultSamplingConfig().AspectRatio(); math.Abs(ar-16.0/9.0) > 1e-9 {
		t.Errorf("Default aspect ratio should be 16:9, got %f", ar)
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	if s := (RenderStats{TotalSamples: 100}).SamplesPerSecond(); s != 0 {
		t.Errorf("Zero duration should report 0, got %f", s)
	}
}
