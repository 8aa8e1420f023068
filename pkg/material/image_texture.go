package material

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// ImageTexture provides color from a decoded 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels [][]core.Color // Column-major: Pixels[x][y], y=0 is the top row
}

// NewImageTexture creates a new image texture from a [x][y] grid of normalized colors
func NewImageTexture(pixels [][]core.Color) *ImageTexture {
	t := &ImageTexture{Pixels: pixels, Width: len(pixels)}
	if t.Width > 0 {
		t.Height = len(pixels[0])
	}
	return t
}

// Value samples the texture at the given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Color {
	if t.Width == 0 || t.Height == 0 {
		return core.NewVec3(0, 1, 1)
	}

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1-v)*float64(t.Height) - 0.001)

	// Clamp to image bounds
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[x][y]
}
