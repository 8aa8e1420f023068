package loaders

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/log"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// ErrEmptyImage is returned when a decoded image has no pixels
var ErrEmptyImage = errors.New("image has zero width or height")

var logger = log.New("loaders")

// ImageData contains a decoded image as a column-major color grid
type ImageData struct {
	Width  int
	Height int
	Pixels [][]core.Color // Pixels[x][y], y=0 is the top row
}

// LoadImage loads a PNG, JPEG, GIF, BMP, TIFF or WebP image. Images larger
// than maxSize on either side are scaled down to fit, preserving aspect
// ratio; maxSize <= 0 disables scaling.
func LoadImage(filename string, maxSize int) (*ImageData, error) {
	img, err := imaging.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, ErrEmptyImage)
	}

	if maxSize > 0 && (bounds.Dx() > maxSize || bounds.Dy() > maxSize) {
		img = resize.Thumbnail(uint(maxSize), uint(maxSize), img, resize.Lanczos3)
		logger.Infof("scaled %s from %dx%d to %dx%d", filename,
			bounds.Dx(), bounds.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	return FromImage(img), nil
}

// FromImage converts any image to a normalized [x][y] color grid
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	pixels := make([][]core.Color, width)
	for x := 0; x < width; x++ {
		pixels[x] = make([]core.Color, height)
		for y := 0; y < height; y++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[x][y] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// LoadImageTexture loads an image file straight into a texture
func LoadImageTexture(filename string, maxSize int) (*material.ImageTexture, error) {
	data, err := LoadImage(filename, maxSize)
	if err != nil {
		return nil, err
	}
	return material.NewImageTexture(data.Pixels), nil
}
