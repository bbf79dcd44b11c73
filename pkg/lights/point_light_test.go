package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestPointLight_Construct(t *testing.T) {
	light := NewPointLight(core.Point(0, 0, 0), core.Color(1, 1, 1))
	if light.Position != core.Point(0, 0, 0) || light.Intensity != core.White {
		t.Errorf("Unexpected light %+v", light)
	}
}

func TestLighting_Phong(t *testing.T) {
	s2 := math.Sqrt2 / 2
	position := core.Point(0, 0, 0)
	normalv := core.Vector(0, 0, -1)

	tests := []struct {
		name     string
		eyev     core.Tuple
		light    core.Tuple
		inShadow bool
		expected core.Tuple
	}{
		{"eye between light and surface", core.Vector(0, 0, -1), core.Point(0, 0, -10), false, core.Color(1.9, 1.9, 1.9)},
		{"eye offset 45 degrees", core.Vector(0, s2, -s2), core.Point(0, 0, -10), false, core.Color(1.0, 1.0, 1.0)},
		{"light offset 45 degrees", core.Vector(0, 0, -1), core.Point(0, 10, -10), false, core.Color(0.7364, 0.7364, 0.7364)},
		{"eye in the reflection path", core.Vector(0, -s2, -s2), core.Point(0, 10, -10), false, core.Color(1.6364, 1.6364, 1.6364)},
		{"light behind the surface", core.Vector(0, 0, -1), core.Point(0, 0, 10), false, core.Color(0.1, 0.1, 0.1)},
		{"surface in shadow", core.Vector(0, 0, -1), core.Point(0, 0, -10), true, core.Color(0.1, 0.1, 0.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := material.DefaultMaterial()
			light := NewPointLight(tt.light, core.White)
			got := Lighting(&m, geometry.NewSphere(), light, position, tt.eyev, normalv, tt.inShadow)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLighting_Pattern(t *testing.T) {
	m := material.DefaultMaterial()
	m.Pattern = material.NewStripePattern(core.White, core.Black)
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0
	eyev := core.Vector(0, 0, -1)
	normalv := core.Vector(0, 0, -1)
	light := NewPointLight(core.Point(0, 0, -10), core.White)
	s := geometry.NewSphere()

	if c := Lighting(&m, s, light, core.Point(0.9, 0, 0), eyev, normalv, false); !c.Equals(core.White) {
		t.Errorf("Expected white at x=0.9, got %v", c)
	}
	if c := Lighting(&m, s, light, core.Point(1.1, 0, 0), eyev, normalv, false); !c.Equals(core.Black) {
		t.Errorf("Expected black at x=1.1, got %v", c)
	}
}

func TestLighting_PatternSpaces(t *testing.T) {
	eyev := core.Vector(0, 0, -1)
	normalv := core.Vector(0, 0, -1)
	light := NewPointLight(core.Point(0, 0, -10), core.White)

	flat := func() material.Material {
		m := material.DefaultMaterial()
		m.Ambient = 1
		m.Diffuse = 0
		m.Specular = 0
		return m
	}

	tests := []struct {
		name             string
		objectTransform  core.Matrix
		patternTransform core.Matrix
		point            core.Tuple
	}{
		{"object transform", core.Scaling(2, 2, 2), core.Identity4(), core.Point(1.5, 0, 0)},
		{"pattern transform", core.Identity4(), core.Scaling(2, 2, 2), core.Point(1.5, 0, 0)},
		{"both transforms", core.Scaling(2, 2, 2), core.Translation(0.5, 0, 0), core.Point(2.5, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := geometry.NewSphere()
			s.SetTransform(tt.objectTransform)
			pattern := material.NewStripePattern(core.White, core.Black)
			pattern.SetTransform(tt.patternTransform)
			m := flat()
			m.Pattern = pattern

			// Without either transform these points would land on a black stripe
			if c := Lighting(&m, s, light, tt.point, eyev, normalv, false); !c.Equals(core.White) {
				t.Errorf("Expected white, got %v", c)
			}
		})
	}
}

func TestLighting_PatternInsideGroup(t *testing.T) {
	g := geometry.NewGroup("scaled")
	g.SetTransform(core.Scaling(2, 2, 2))
	s := geometry.NewSphere()
	g.AddChild(s)

	m := material.DefaultMaterial()
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0
	m.Pattern = material.NewStripePattern(core.White, core.Black)

	light := NewPointLight(core.Point(0, 0, -10), core.White)
	c := Lighting(&m, s, light, core.Point(1.5, 0, 0), core.Vector(0, 0, -1), core.Vector(0, 0, -1), false)
	if !c.Equals(core.White) {
		t.Errorf("Expected the group's scale to apply to the pattern, got %v", c)
	}
}
