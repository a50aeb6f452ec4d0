package renderer

import (
	"math/rand"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// scanlineCounter hands out each row index in [0, total) exactly once
type scanlineCounter struct {
	mu    sync.Mutex
	next  int
	total int
}

func newScanlineCounter(total int) *scanlineCounter {
	return &scanlineCounter{total: total}
}

// take returns the next unrendered row, or false when every row has been handed out
func (c *scanlineCounter) take() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.next >= c.total {
		return 0, false
	}
	row := c.next
	c.next++
	return row, true
}

// remaining returns how many rows have not been handed out yet
func (c *scanlineCounter) remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total - c.next
}

// rowResult is one finished scanline; Row counts from the bottom of the image
type rowResult struct {
	Row    int
	Pixels []core.Color
}

// worker renders whole scanlines until the counter runs dry
type worker struct {
	ID        int
	raytracer *Raytracer
	sampler   core.Sampler
	rows      int
}

func newWorker(id int, rt *Raytracer) *worker {
	random := rand.New(rand.NewSource(rt.config.Seed + int64(id)))
	return &worker{
		ID:        id,
		raytracer: rt,
		sampler:   core.NewRandomSampler(random),
	}
}

// run is the main worker loop
func (w *worker) run(counter *scanlineCounter, results chan<- rowResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		row, ok := counter.take()
		if !ok {
			return
		}
		results <- rowResult{Row: row, Pixels: w.raytracer.renderRow(row, w.sampler)}
		w.rows++
		w.raytracer.reportProgress(counter)
	}
}
