package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCone_Hit(t *testing.T) {
	tests := []struct {
		origin    core.Tuple
		direction core.Tuple
		t0, t1    float64
	}{
		{core.Point(0, 0, -5), core.Vector(0, 0, 1), 5, 5},
		{core.Point(0, 0, -5), core.Vector(1, 1, 1), 8.66025, 8.66025},
		{core.Point(1, 1, -5), core.Vector(-0.5, -1, 1), 4.55006, 49.44994},
	}

	c := NewCone()
	for _, tt := range tests {
		xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction.Normalize()))
		if len(xs) != 2 {
			t.Fatalf("Ray from %v: expected 2 intersections, got %d", tt.origin, len(xs))
		}
		if !core.FloatEqual(xs[0].T, tt.t0) || !core.FloatEqual(xs[1].T, tt.t1) {
			t.Errorf("Ray from %v: expected t=%f,%f, got t=%f,%f", tt.origin, tt.t0, tt.t1, xs[0].T, xs[1].T)
		}
	}
}

func TestCone_ParallelToOneHalf(t *testing.T) {
	c := NewCone()
	xs := c.LocalIntersect(core.NewRay(core.Point(0, 0, -1), core.Vector(0, 1, 1).Normalize()))
	if len(xs) != 1 {
		t.Fatalf("Expected 1 intersection, got %d", len(xs))
	}
	if !core.FloatEqual(xs[0].T, 0.35355) {
		t.Errorf("Expected t=0.35355, got t=%f", xs[0].T)
	}

	// The single root is still subject to the bounds
	truncated := NewTruncatedCone(1, 2, false)
	if xs := truncated.LocalIntersect(core.NewRay(core.Point(0, 0, -1), core.Vector(0, 1, 1).Normalize())); len(xs) != 0 {
		t.Errorf("Expected the out-of-bounds root to be dropped, got %v", xs)
	}
}

func TestCone_Caps(t *testing.T) {
	tests := []struct {
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{core.Point(0, 0, -5), core.Vector(0, 1, 0), 0},
		{core.Point(0, 0, -0.25), core.Vector(0, 1, 1), 2},
		{core.Point(0, 0, -0.25), core.Vector(0, 1, 0), 4},
	}

	c := NewTruncatedCone(-0.5, 0.5, true)
	for _, tt := range tests {
		xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction.Normalize()))
		if len(xs) != tt.count {
			t.Errorf("Ray from %v along %v: expected %d intersections, got %d", tt.origin, tt.direction, tt.count, len(xs))
		}
	}
}

func TestCone_Normal(t *testing.T) {
	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.Point(0, 0, 0), core.Vector(0, 0, 0)},
		{core.Point(1, 1, 1), core.Vector(1, -math.Sqrt2, 1)},
		{core.Point(-1, -1, 0), core.Vector(-1, 1, 0)},
	}

	c := NewCone()
	for _, tt := range tests {
		if n := c.LocalNormalAt(tt.point); !n.Equals(tt.expected) {
			t.Errorf("Normal at %v: expected %v, got %v", tt.point, tt.expected, n)
		}
	}
}

func TestCone_CapNormalUsesCapRadius(t *testing.T) {
	c := NewTruncatedCone(0, 2, true)

	// Inside the top cap (radius 2) but outside the unit circle
	if n := c.LocalNormalAt(core.Point(1.5, 2, 0)); !n.Equals(core.Vector(0, 1, 0)) {
		t.Errorf("Expected cap normal vector(0, 1, 0), got %v", n)
	}
	// On the wall well below the cap
	if n := c.LocalNormalAt(core.Point(1, 1, 0)); !n.Equals(core.Vector(1, -1, 0)) {
		t.Errorf("Expected wall normal vector(1, -1, 0), got %v", n)
	}
}
