package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() core.Hittable
	GetCamera() *Camera
	GetBackground() core.Color
	GetIntegrator() integrator.Integrator
}

// Raytracer renders a scene with a fixed pool of scanline workers
type Raytracer struct {
	world      core.Hittable
	camera     *Camera
	background core.Color
	integrator integrator.Integrator
	config     SamplingConfig
	logger     core.Logger

	progressMu   sync.Mutex
	lastReported int
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		world:      scene.GetWorld(),
		camera:     scene.GetCamera(),
		background: scene.GetBackground(),
		integrator: scene.GetIntegrator(),
		config:     config,
		logger:     logger,
	}
}

// Render traces every pixel and returns the accumulated frame. Workers pull
// scanlines from a shared counter; rows are assembled only after all workers finish.
func (rt *Raytracer) Render() (*Frame, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d, %d workers...\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth, numWorkers)

	startTime := time.Now()
	rt.lastReported = rt.config.Height

	counter := newScanlineCounter(rt.config.Height)
	// Buffer for all rows so workers never block on the collector
	results := make(chan rowResult, rt.config.Height)

	workers := make([]*worker, numWorkers)
	var wg sync.WaitGroup
	for i := range workers {
		workers[i] = newWorker(i, rt)
		wg.Add(1)
		go workers[i].run(counter, results, &wg)
	}
	wg.Wait()
	close(results)

	frame := NewFrame(rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel)
	for result := range results {
		frame.setRow(result.Row, result.Pixels)
	}

	stats := RenderStats{
		TotalPixels:   rt.config.Width * rt.config.Height,
		TotalSamples:  rt.config.Width * rt.config.Height * rt.config.SamplesPerPixel,
		Rows:          rt.config.Height,
		Workers:       numWorkers,
		RowsPerWorker: make([]int, numWorkers),
		Duration:      time.Since(startTime),
	}
	for i, w := range workers {
		stats.RowsPerWorker[i] = w.rows
	}

	rt.logger.Printf("Render completed in %v\n", stats.Duration)
	return frame, stats, nil
}

// renderRow accumulates SamplesPerPixel jittered camera rays for every pixel of
// scanline j, counted from the bottom of the image
func (rt *Raytracer) renderRow(j int, sampler core.Sampler) []core.Color {
	width, height := rt.config.Width, rt.config.Height
	// A one-pixel dimension would divide by zero; its only pixel sits at 0
	sDenom := float64(max(width-1, 1))
	tDenom := float64(max(height-1, 1))

	pixels := make([]core.Color, width)
	for i := 0; i < width; i++ {
		var colorAccum core.Color
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			jitter := sampler.Get2D()
			s := (float64(i) + jitter.X) / sDenom
			t := (float64(j) + jitter.Y) / tDenom

			ray := rt.camera.GetRay(s, t, sampler)
			colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, rt.background, rt.config.MaxDepth, sampler))
		}
		pixels[i] = colorAccum
	}
	return pixels
}

// reportProgress logs roughly every tenth of the image
func (rt *Raytracer) reportProgress(counter *scanlineCounter) {
	remaining := counter.remaining()
	step := max(rt.config.Height/10, 1)

	rt.progressMu.Lock()
	defer rt.progressMu.Unlock()
	if rt.lastReported-remaining >= step {
		rt.lastReported = remaining
		rt.logger.Printf("Scanlines remaining: %d\n", remaining)
	}
}
