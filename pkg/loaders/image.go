package loaders

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/fogleman/gg"
)

// jpegQuality is used when the output path ends in .jpg or .jpeg
const jpegQuality = 95

// LoadImageTexture loads a PNG or JPEG image and converts it to an image texture
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	img, err := gg.LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %q: %w", filename, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("texture %q has no pixels", filename)
	}

	return material.NewImageTextureFromImage(img), nil
}

// SaveImage writes img to filename. The encoder is chosen by extension:
// .jpg and .jpeg produce JPEG, anything else PNG.
func SaveImage(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return saveJPEG(filename, img)
	default:
		if err := gg.SavePNG(filename, img); err != nil {
			return fmt.Errorf("failed to save PNG %q: %w", filename, err)
		}
		return nil
	}
}

func saveJPEG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode JPEG %q: %w", filename, err)
	}
	return file.Close()
}
