package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a width x height grid of unclamped float colors stored row by row
type Canvas struct {
	Width  int
	Height int
	pixels []core.Tuple
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Tuple, width*height),
	}
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Tuple {
	return c.pixels[y*c.Width+x]
}

// WritePixel sets the color at (x, y). Writers on different pixels may run
// concurrently.
func (c *Canvas) WritePixel(x, y int, color core.Tuple) {
	c.pixels[y*c.Width+x] = color
}

// ToRGBA encodes the whole canvas, clamping each channel to [0, 1]
func (c *Canvas) ToRGBA() *image.RGBA {
	return c.SubImage(image.Rect(0, 0, c.Width, c.Height))
}

// SubImage encodes the pixels inside bounds into an image whose origin is
// bounds.Min
func (c *Canvas) SubImage(bounds image.Rectangle) *image.RGBA {
	bounds = bounds.Intersect(image.Rect(0, 0, c.Width, c.Height))
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, tupleToRGBA(c.PixelAt(x, y)))
		}
	}
	return img
}

// tupleToRGBA clamps a color to [0, 1] and scales it to 8 bits
func tupleToRGBA(c core.Tuple) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(255 * v))
}
