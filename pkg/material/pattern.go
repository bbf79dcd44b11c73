package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern generates a color from a point in pattern space
type Pattern interface {
	// PatternAt returns the color at a point already in pattern space
	PatternAt(point core.Tuple) core.Tuple
	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix)
}

// PatternAtObject maps an object-space point into pattern space and
// evaluates the pattern there
func PatternAtObject(p Pattern, objectPoint core.Tuple) core.Tuple {
	return p.PatternAt(p.InverseTransform().MultiplyTuple(objectPoint))
}

// patternTransform holds the transform shared by every pattern and its
// cached inverse
type patternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newPatternTransform() patternTransform {
	return patternTransform{transform: core.Identity4(), inverse: core.Identity4()}
}

// Transform returns the pattern-to-object transform
func (pt *patternTransform) Transform() core.Matrix {
	return pt.transform
}

// InverseTransform returns the cached inverse of the transform
func (pt *patternTransform) InverseTransform() core.Matrix {
	return pt.inverse
}

// SetTransform replaces the transform and recomputes its inverse
func (pt *patternTransform) SetTransform(m core.Matrix) {
	pt.transform = m
	pt.inverse = m.Inverse()
}

// StripePattern alternates between A and B along x
type StripePattern struct {
	patternTransform
	A, B core.Tuple
}

// NewStripePattern creates a stripe pattern with unit-wide bands
func NewStripePattern(a, b core.Tuple) *StripePattern {
	return &StripePattern{patternTransform: newPatternTransform(), A: a, B: b}
}

// PatternAt returns A when floor(x) is even
func (s *StripePattern) PatternAt(p core.Tuple) core.Tuple {
	if isEven(math.Floor(p.X)) {
		return s.A
	}
	return s.B
}

// GradientPattern blends linearly from A to B over each unit of x
type GradientPattern struct {
	patternTransform
	A, B core.Tuple
}

// NewGradientPattern creates a gradient pattern
func NewGradientPattern(a, b core.Tuple) *GradientPattern {
	return &GradientPattern{patternTransform: newPatternTransform(), A: a, B: b}
}

// PatternAt interpolates by the fractional part of x
func (g *GradientPattern) PatternAt(p core.Tuple) core.Tuple {
	fraction := p.X - math.Floor(p.X)
	return g.A.Add(g.B.Subtract(g.A).Multiply(fraction))
}

// RingPattern draws concentric rings around the y axis
type RingPattern struct {
	patternTransform
	A, B core.Tuple
}

// NewRingPattern creates a ring pattern
func NewRingPattern(a, b core.Tuple) *RingPattern {
	return &RingPattern{patternTransform: newPatternTransform(), A: a, B: b}
}

// PatternAt returns A when the floored distance from the y axis is even
func (r *RingPattern) PatternAt(p core.Tuple) core.Tuple {
	if isEven(math.Floor(math.Sqrt(p.X*p.X + p.Z*p.Z))) {
		return r.A
	}
	return r.B
}

// CheckersPattern alternates A and B in unit cubes
type CheckersPattern struct {
	patternTransform
	A, B core.Tuple
}

// NewCheckersPattern creates a 3D checkerboard pattern
func NewCheckersPattern(a, b core.Tuple) *CheckersPattern {
	return &CheckersPattern{patternTransform: newPatternTransform(), A: a, B: b}
}

// PatternAt returns A when the sum of the floored coordinates is even
func (c *CheckersPattern) PatternAt(p core.Tuple) core.Tuple {
	if isEven(math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)) {
		return c.A
	}
	return c.B
}

// SolidPattern returns the same color everywhere. Useful as a leaf when
// patterns are built from scene files.
type SolidPattern struct {
	patternTransform
	Color core.Tuple
}

// NewSolidPattern creates a solid pattern
func NewSolidPattern(color core.Tuple) *SolidPattern {
	return &SolidPattern{patternTransform: newPatternTransform(), Color: color}
}

// PatternAt returns the solid color
func (s *SolidPattern) PatternAt(core.Tuple) core.Tuple {
	return s.Color
}

func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}
