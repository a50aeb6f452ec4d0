package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Total number of pixels rendered
	TotalSamples  int           // Total number of camera rays traced
	Rows          int           // Scanlines rendered
	Workers       int           // Goroutines that rendered them
	RowsPerWorker []int         // Scanlines rendered by each worker
	Duration      time.Duration // Wall-clock render time
}

// SamplesPerSecond returns camera-ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
