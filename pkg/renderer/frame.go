package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Frame holds the accumulated, unnormalized linear color of every pixel.
// Pixels are stored row-major with row 0 at the top of the image.
type Frame struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Pixels          []core.Color
}

// NewFrame allocates a black frame
func NewFrame(width, height, samplesPerPixel int) *Frame {
	return &Frame{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		Pixels:          make([]core.Color, width*height),
	}
}

// Accumulated returns the summed color of pixel (x, y), y = 0 being the top row
func (f *Frame) Accumulated(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// setRow stores a scanline counted from the bottom of the image
func (f *Frame) setRow(j int, pixels []core.Color) {
	y := f.Height - 1 - j
	copy(f.Pixels[y*f.Width:(y+1)*f.Width], pixels)
}

// Image tone maps the frame into an 8-bit image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, ToneMap(f.Accumulated(x, y), f.SamplesPerPixel))
		}
	}
	return img
}

// ToneMap divides an accumulated color by its sample count, applies gamma-2
// correction, and scales into [0, 255]. NaN and infinite components map to 0.
func ToneMap(accumulated core.Color, samples int) color.RGBA {
	scale := 1.0
	if samples > 0 {
		scale = 1.0 / float64(samples)
	}
	averaged := core.NewVec3(
		sanitize(accumulated.X*scale),
		sanitize(accumulated.Y*scale),
		sanitize(accumulated.Z*scale),
	)
	corrected := averaged.GammaCorrect(2.0).Clamp(0, 0.999)
	return color.RGBA{
		R: uint8(256 * corrected.X),
		G: uint8(256 * corrected.Y),
		B: uint8(256 * corrected.Z),
		A: 255,
	}
}

// sanitize maps NaN, infinite and negative components to black
func sanitize(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0
	}
	return value
}
