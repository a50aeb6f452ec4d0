package material

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// debugColor marks lookups into a texture that has no pixel data
var debugColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromImage converts a decoded image into a texture.
// Channels are read as 8-bit values and scaled by 1/255.
func NewImageTextureFromImage(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	const colorScale = 1.0 / 255.0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			pixels[y*width+x] = core.NewVec3(
				float64(c.R)*colorScale,
				float64(c.G)*colorScale,
				float64(c.B)*colorScale,
			)
		}
	}

	return NewImageTexture(width, height, pixels)
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering.
// UV is clamped to [0,1]; V=0 is the bottom row of the image.
func (t *ImageTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return debugColor
	}

	u := clamp(uv.X, 0, 1)
	v := 1.0 - clamp(uv.Y, 0, 1)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// u or v of exactly 1.0 lands one past the last pixel
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
