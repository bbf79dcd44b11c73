package renderer

import (
	"image"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of camera rays traced
	AverageSamples float64       // Average samples per pixel
	TilesRendered  int           // Number of tiles finished
	Duration       time.Duration // Wall time of the render
}

// Add folds the counts of another stats record into s
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.TilesRendered += other.TilesRendered
	s.finalize()
}

func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// PixelStats accumulates the samples taken for a single pixel
type PixelStats struct {
	ColorAccum  core.Tuple // RGB accumulator for final result
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Tuple) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Tuple {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColorAccum.Divide(float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean perceptual luminance of an
// image, with channels scaled to [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	luminance := make([]float64, 0, pixels)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := core.Color(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
			luminance = append(luminance, c.Luminance())
		}
	}
	return stat.Mean(luminance, nil)
}
