package renderer

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MaxSamples     int     // Target samples per pixel
	MinSamples     int     // Minimum samples taken per pixel
	MaxSamplesUsed int     // Maximum samples actually used by any pixel
}

// PixelStats accumulates samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Color // Sum of all radiance samples
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Color{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// WriteStatsTable renders a per-pass summary of a progressive render to w
func WriteStatsTable(w io.Writer, passes []PassResult) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pass", "Samples/pixel", "Total samples", "Min", "Max", "Pass time"})

	var total time.Duration
	for _, pass := range passes {
		total += pass.Duration
		table.Append([]string{
			fmt.Sprintf("%d", pass.PassNumber),
			fmt.Sprintf("%.1f", pass.Stats.AverageSamples),
			fmt.Sprintf("%d", pass.Stats.TotalSamples),
			fmt.Sprintf("%d", pass.Stats.MinSamples),
			fmt.Sprintf("%d", pass.Stats.MaxSamplesUsed),
			pass.Duration.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{"", "", "", "", "TOTAL", total.Round(time.Millisecond).String()})

	table.Render()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img with
// channels normalized to [0,1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			sum += 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
		}
	}
	return sum / float64(bounds.Dx()*bounds.Dy())
}
