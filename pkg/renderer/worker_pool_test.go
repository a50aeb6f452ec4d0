package renderer

import (
	"sync"
	"testing"
)

func TestScanlineCounter_ExactlyOnce(t *testing.T) {
	const rows = 5000
	const goroutines = 16

	counter := newScanlineCounter(rows)
	seen := make([][]int, goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for {
				row, ok := counter.take()
				if !ok {
					return
				}
				seen[g] = append(seen[g], row)
			}
		}(g)
	}
	wg.Wait()

	counts := make([]int, rows)
	for _, rowsTaken := range seen {
		for _, row := range rowsTaken {
			if row < 0 || row >= rows {
				t.Fatalf("Row %d out of range", row)
			}
			counts[row]++
		}
	}
	for row, count := range counts {
		if count != 1 {
			t.Errorf("Row %d handed out %d times", row, count)
		}
	}

	if _, ok := counter.take(); ok {
		t.Error("Exhausted counter should hand out nothing")
	}
	if r := counter.remaining(); r != 0 {
		t.Errorf("Expected 0 rows remaining, got %d", r)
	}
}

func TestScanlineCounter_Empty(t *testing.T) {
	counter := newScanlineCounter(0)
	if _, ok := counter.take(); ok {
		t.Error("Empty counter should hand out nothing")
	}
}
