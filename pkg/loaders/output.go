package loaders

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// SaveFrame encodes img to filename, choosing the format from the extension
// (png, jpg, jpeg, gif, bmp, tif, tiff). Missing parent directories are created.
func SaveFrame(img image.Image, filename string) error {
	if _, err := imaging.FormatFromFilename(filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := imaging.Save(img, filename, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	logger.Debugf("saved %dx%d frame to %s", img.Bounds().Dx(), img.Bounds().Dy(), filename)
	return nil
}

// ContentType returns the MIME type matching filename's image format
func ContentType(filename string) string {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return "application/octet-stream"
	}
	switch format {
	case imaging.JPEG:
		return "image/jpeg"
	case imaging.PNG:
		return "image/png"
	case imaging.GIF:
		return "image/gif"
	case imaging.TIFF:
		return "image/tiff"
	case imaging.BMP:
		return "image/bmp"
	}
	return "application/octet-stream"
}
