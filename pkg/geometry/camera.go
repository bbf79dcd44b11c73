package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes a camera by where it sits and what it looks at
type CameraConfig struct {
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	FieldOfView float64    // Horizontal (or vertical, if taller than wide) field of view in radians
	From        core.Tuple // Eye position
	To          core.Tuple // Point being looked at
	Up          core.Tuple // Approximate up direction
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	return result
}

// Camera maps pixels onto a canvas one unit in front of the eye.
// Untransformed, the eye is at the origin looking toward -z.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	HalfWidth   float64
	HalfHeight  float64
	PixelSize   float64

	transform core.Matrix
	inverse   core.Matrix
}

// NewCamera creates a camera for an hsize x vsize image
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity4(),
		inverse:     core.Identity4(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.HalfWidth = halfView
		c.HalfHeight = halfView / aspect
	} else {
		c.HalfWidth = halfView * aspect
		c.HalfHeight = halfView
	}
	c.PixelSize = c.HalfWidth * 2 / float64(hsize)

	return c
}

// NewCameraFromConfig creates a camera oriented by a view transform
func NewCameraFromConfig(config CameraConfig) *Camera {
	c := NewCamera(config.Width, config.Height, config.FieldOfView)
	c.SetTransform(core.ViewTransform(config.From, config.To, config.Up))
	return c
}

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform sets the view transform and caches its inverse
func (c *Camera) SetTransform(m core.Matrix) {
	c.transform = m
	c.inverse = m.Inverse()
}

// RayForPixel returns the ray through the centre of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	return c.RayForPixelOffset(px, py, 0, 0)
}

// RayForPixelOffset returns a ray through pixel (px, py) displaced from
// the centre by (dx, dy) pixel widths. Offsets in [-0.5, 0.5) stay inside
// the pixel.
func (c *Camera) RayForPixelOffset(px, py int, dx, dy float64) core.Ray {
	// Offset from the canvas edge to the sample point
	xOffset := (float64(px) + 0.5 + dx) * c.PixelSize
	yOffset := (float64(py) + 0.5 + dy) * c.PixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.HalfWidth - xOffset
	worldY := c.HalfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
