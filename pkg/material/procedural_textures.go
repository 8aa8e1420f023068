package material

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// newPixelGrid allocates a [x][y] color grid
func newPixelGrid(width, height int) [][]core.Color {
	pixels := make([][]core.Color, width)
	for x := range pixels {
		pixels[x] = make([]core.Color, height)
	}
	return pixels
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := newPixelGrid(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width-1)
			v := 1.0 - float64(y)/float64(height-1)
			pixels[x][y] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Color) *ImageTexture {
	pixels := newPixelGrid(width, height)

	for y := 0; y < height; y++ {
		// Interpolate from top to bottom
		t := float64(y) / float64(height-1)
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[x][y] = color
		}
	}

	return NewImageTexture(pixels)
}
