package loaders

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Errors reported while building a scene file
var (
	ErrUnknownShape     = errors.New("unknown shape type")
	ErrUnknownMaterial  = errors.New("unknown material")
	ErrUnknownPattern   = errors.New("unknown pattern type")
	ErrInvalidTransform = errors.New("invalid transform")
)

// SceneFile is the YAML layout of a scene
type SceneFile struct {
	Metadata  scene.Metadata          `yaml:"metadata"`
	Camera    CameraSpec              `yaml:"camera"`
	Render    RenderSettings          `yaml:"render"`
	Light     *LightSpec              `yaml:"light"` // Omit for an unlit scene
	Materials map[string]MaterialSpec `yaml:"materials"`
	Shapes    []ShapeSpec             `yaml:"shapes"`
}

// CameraSpec places the camera. FieldOfView is in radians.
type CameraSpec struct {
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	FieldOfView float64   `yaml:"field_of_view"`
	From        []float64 `yaml:"from"`
	To          []float64 `yaml:"to"`
	Up          []float64 `yaml:"up"`
}

// RenderSettings controls sampling for the scene
type RenderSettings struct {
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	MaxDepth        int `yaml:"max_depth"`
}

// LightSpec describes the scene's point light
type LightSpec struct {
	Position  []float64 `yaml:"position"`
	Intensity []float64 `yaml:"intensity"`
}

// MaterialSpec is either a bare name, referring to a named material or a
// preset, or a map of overrides applied on top of Preset
type MaterialSpec struct {
	Ref             string       `yaml:"-"`
	Preset          string       `yaml:"preset"`
	Color           []float64    `yaml:"color"`
	Ambient         *float64     `yaml:"ambient"`
	Diffuse         *float64     `yaml:"diffuse"`
	Specular        *float64     `yaml:"specular"`
	Shininess       *float64     `yaml:"shininess"`
	Reflective      *float64     `yaml:"reflective"`
	Transparency    *float64     `yaml:"transparency"`
	RefractiveIndex *IndexSpec   `yaml:"refractive_index"`
	Pattern         *PatternSpec `yaml:"pattern"`
}

// UnmarshalYAML accepts either a material name or a mapping
func (m *MaterialSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		*m = MaterialSpec{Ref: name}
		return nil
	}

	type plain MaterialSpec
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*m = MaterialSpec(p)
	return nil
}

// IndexSpec is a refractive index given as a number or a medium name
type IndexSpec float64

var namedIndices = map[string]float64{
	"vacuum":      material.Vacuum,
	"air":         material.Air,
	"water":       material.Water,
	"glass":       material.Glass,
	"crown_glass": material.CrownGlass,
	"diamond":     material.Diamond,
}

// UnmarshalYAML accepts a number or a medium name such as air or crown_glass
func (ix *IndexSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v float64
	if err := unmarshal(&v); err == nil {
		*ix = IndexSpec(v)
		return nil
	}

	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	v, ok := namedIndices[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown refractive medium %q", name)
	}
	*ix = IndexSpec(v)
	return nil
}

// PatternSpec describes a two-color pattern, or a solid color when only A is set
type PatternSpec struct {
	Type      string          `yaml:"type"`
	A         []float64       `yaml:"a"`
	B         []float64       `yaml:"b"`
	Transform []TransformStep `yaml:"transform"`
}

// TransformStep is one operation such as [translate, 1, 2, 3] or [rotate_y, 0.5]
type TransformStep []interface{}

// ShapeSpec describes one shape or group in the scene tree
type ShapeSpec struct {
	Type      string          `yaml:"type"`
	Name      string          `yaml:"name"`
	Material  *MaterialSpec   `yaml:"material"`
	Transform []TransformStep `yaml:"transform"`

	// Cylinder and cone bounds. Missing bounds are infinite.
	Minimum *float64 `yaml:"minimum"`
	Maximum *float64 `yaml:"maximum"`
	Closed  bool     `yaml:"closed"`

	// Triangle corners
	Points [][]float64 `yaml:"points"`

	// Group members. A group's material is inherited by children that do
	// not set their own.
	Children []ShapeSpec `yaml:"children"`
}

// DefaultRenderSettings returns one sample per pixel and depth 5
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		SamplesPerPixel: 1,
		MaxDepth:        5,
	}
}

// defaultSceneFile holds the values a scene file overlays
func defaultSceneFile() *SceneFile {
	return &SceneFile{
		Camera: CameraSpec{
			Width:       400,
			Height:      200,
			FieldOfView: math.Pi / 3,
			From:        []float64{0, 1.5, -5},
			To:          []float64{0, 1, 0},
			Up:          []float64{0, 1, 0},
		},
		Render: DefaultRenderSettings(),
	}
}

// LoadSceneFile reads and builds a YAML scene. The scene is named after
// the file.
func LoadSceneFile(path string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := ParseScene(data, name, cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene builds a scene from YAML. Fields missing from data keep
// their defaults.
func ParseScene(data []byte, name string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	file := defaultSceneFile()
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("error parsing scene: %w", err)
	}
	return file.Build(name, cameraOverrides...)
}

// Build converts the parsed file into a scene
func (f *SceneFile) Build(name string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	cameraConfig, err := f.Camera.config()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	if cameraConfig.Width <= 0 || cameraConfig.Height <= 0 {
		return nil, fmt.Errorf("camera: invalid size %dx%d", cameraConfig.Width, cameraConfig.Height)
	}

	world := scene.NewWorld()
	if f.Light != nil {
		light, err := f.Light.build()
		if err != nil {
			return nil, fmt.Errorf("light: %w", err)
		}
		world.SetLight(light)
	}

	b := &builder{materials: f.Materials}
	for i, spec := range f.Shapes {
		shape, err := b.shape(spec, nil)
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		world.Add(shape)
	}

	sampling := scene.SamplingConfig{
		SamplesPerPixel: max(1, f.Render.SamplesPerPixel),
		MaxDepth:        max(0, f.Render.MaxDepth),
	}
	sc := scene.NewScene(name, world, cameraConfig, sampling)
	sc.Metadata = f.Metadata
	return sc, nil
}

func (c CameraSpec) config() (geometry.CameraConfig, error) {
	from, err := tupleFrom(c.From, 1, "from")
	if err != nil {
		return geometry.CameraConfig{}, err
	}
	to, err := tupleFrom(c.To, 1, "to")
	if err != nil {
		return geometry.CameraConfig{}, err
	}
	up, err := tupleFrom(c.Up, 0, "up")
	if err != nil {
		return geometry.CameraConfig{}, err
	}

	return geometry.CameraConfig{
		Width:       c.Width,
		Height:      c.Height,
		FieldOfView: c.FieldOfView,
		From:        from,
		To:          to,
		Up:          up,
	}, nil
}

func (l LightSpec) build() (lights.PointLight, error) {
	position, err := tupleFrom(l.Position, 1, "position")
	if err != nil {
		return lights.PointLight{}, err
	}
	intensity := core.White
	if l.Intensity != nil {
		if intensity, err = tupleFrom(l.Intensity, 0, "intensity"); err != nil {
			return lights.PointLight{}, err
		}
	}
	return lights.NewPointLight(position, intensity), nil
}

// builder resolves material references while walking the shape tree
type builder struct {
	materials map[string]MaterialSpec
}

func (b *builder) shape(spec ShapeSpec, inherited *material.Material) (geometry.Shape, error) {
	m := inherited
	if spec.Material != nil {
		resolved, err := b.material(*spec.Material, 0)
		if err != nil {
			return nil, err
		}
		m = &resolved
	}

	var s geometry.Shape
	switch strings.ToLower(spec.Type) {
	case "sphere":
		s = geometry.NewSphere()
	case "glass_sphere":
		s = geometry.NewGlassSphere()
	case "plane":
		s = geometry.NewPlane()
	case "cube":
		s = geometry.NewCube()
	case "cylinder":
		minimum, maximum := bounds(spec)
		s = geometry.NewTruncatedCylinder(minimum, maximum, spec.Closed)
	case "cone":
		minimum, maximum := bounds(spec)
		s = geometry.NewTruncatedCone(minimum, maximum, spec.Closed)
	case "triangle":
		if len(spec.Points) != 3 {
			return nil, fmt.Errorf("triangle needs 3 points, got %d", len(spec.Points))
		}
		var p [3]core.Tuple
		for i, pt := range spec.Points {
			var err error
			if p[i], err = tupleFrom(pt, 1, fmt.Sprintf("points[%d]", i)); err != nil {
				return nil, err
			}
		}
		s = geometry.NewTriangle(p[0], p[1], p[2])
	case "group":
		g := geometry.NewGroup(spec.Name)
		for i, childSpec := range spec.Children {
			child, err := b.shape(childSpec, m)
			if err != nil {
				return nil, fmt.Errorf("children[%d]: %w", i, err)
			}
			g.AddChild(child)
		}
		s = g
	default:
		return nil, fmt.Errorf("%q: %w", spec.Type, ErrUnknownShape)
	}

	if len(spec.Transform) > 0 {
		transform, err := buildTransform(spec.Transform)
		if err != nil {
			return nil, err
		}
		s.SetTransform(transform)
	}

	// Groups have no surface of their own
	if _, isGroup := s.(*geometry.Group); !isGroup && m != nil {
		s.SetMaterial(*m)
	}
	return s, nil
}

func bounds(spec ShapeSpec) (float64, float64) {
	minimum, maximum := math.Inf(-1), math.Inf(1)
	if spec.Minimum != nil {
		minimum = *spec.Minimum
	}
	if spec.Maximum != nil {
		maximum = *spec.Maximum
	}
	return minimum, maximum
}

// maxMaterialDepth bounds chains of named materials that refer to each other
const maxMaterialDepth = 16

func (b *builder) material(spec MaterialSpec, depth int) (material.Material, error) {
	if depth > maxMaterialDepth {
		return material.Material{}, fmt.Errorf("material references nested too deeply: %w", ErrUnknownMaterial)
	}

	if spec.Ref != "" {
		if named, ok := b.materials[spec.Ref]; ok {
			return b.material(named, depth+1)
		}
		if preset, ok := presetMaterial(spec.Ref); ok {
			return preset, nil
		}
		return material.Material{}, fmt.Errorf("%q: %w", spec.Ref, ErrUnknownMaterial)
	}

	m := material.DefaultMaterial()
	if spec.Preset != "" {
		base, err := b.material(MaterialSpec{Ref: spec.Preset}, depth+1)
		if err != nil {
			return material.Material{}, err
		}
		m = base
	}

	if spec.Color != nil {
		c, err := tupleFrom(spec.Color, 0, "color")
		if err != nil {
			return material.Material{}, err
		}
		m.Color = c
	}
	overrides := []struct {
		value *float64
		field *float64
	}{
		{spec.Ambient, &m.Ambient},
		{spec.Diffuse, &m.Diffuse},
		{spec.Specular, &m.Specular},
		{spec.Shininess, &m.Shininess},
		{spec.Reflective, &m.Reflective},
		{spec.Transparency, &m.Transparency},
	}
	for _, o := range overrides {
		if o.value != nil {
			*o.field = *o.value
		}
	}
	if spec.RefractiveIndex != nil {
		m.RefractiveIndex = float64(*spec.RefractiveIndex)
	}

	if spec.Pattern != nil {
		p, err := buildPattern(*spec.Pattern)
		if err != nil {
			return material.Material{}, err
		}
		m.Pattern = p
	}
	return m, nil
}

func presetMaterial(name string) (material.Material, bool) {
	switch strings.ToLower(name) {
	case "default":
		return material.DefaultMaterial(), true
	case "glass":
		return material.NewGlass(), true
	case "mirror":
		return material.NewMirror(), true
	}
	return material.Material{}, false
}

func buildPattern(spec PatternSpec) (material.Pattern, error) {
	a, err := tupleFrom(spec.A, 0, "pattern a")
	if err != nil {
		return nil, err
	}
	b := core.Black
	if spec.B != nil {
		if b, err = tupleFrom(spec.B, 0, "pattern b"); err != nil {
			return nil, err
		}
	}

	var p material.Pattern
	switch strings.ToLower(spec.Type) {
	case "stripe", "stripes":
		p = material.NewStripePattern(a, b)
	case "gradient":
		p = material.NewGradientPattern(a, b)
	case "ring", "rings":
		p = material.NewRingPattern(a, b)
	case "checkers", "checker":
		p = material.NewCheckersPattern(a, b)
	case "solid":
		p = material.NewSolidPattern(a)
	default:
		return nil, fmt.Errorf("%q: %w", spec.Type, ErrUnknownPattern)
	}

	if len(spec.Transform) > 0 {
		transform, err := buildTransform(spec.Transform)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		p.SetTransform(transform)
	}
	return p, nil
}

// buildTransform composes steps so the first listed is applied first. The
// result must be invertible.
func buildTransform(steps []TransformStep) (core.Matrix, error) {
	matrices := make([]core.Matrix, 0, len(steps))
	for i, step := range steps {
		m, err := step.matrix()
		if err != nil {
			return core.Matrix{}, fmt.Errorf("transform[%d]: %w", i, err)
		}
		matrices = append(matrices, m)
	}

	transform := core.Chain(matrices...)
	if _, err := transform.TryInverse(); err != nil {
		return core.Matrix{}, fmt.Errorf("transform: %w", err)
	}
	return transform, nil
}

func (step TransformStep) matrix() (core.Matrix, error) {
	if len(step) == 0 {
		return core.Matrix{}, fmt.Errorf("empty step: %w", ErrInvalidTransform)
	}
	op, ok := step[0].(string)
	if !ok {
		return core.Matrix{}, fmt.Errorf("operation %v is not a name: %w", step[0], ErrInvalidTransform)
	}

	args := make([]float64, 0, len(step)-1)
	for _, v := range step[1:] {
		f, ok := toFloat(v)
		if !ok {
			return core.Matrix{}, fmt.Errorf("%s: argument %v is not a number: %w", op, v, ErrInvalidTransform)
		}
		args = append(args, f)
	}

	want := map[string]int{
		"translate": 3, "scale": 3, "rotate_x": 1, "rotate_y": 1, "rotate_z": 1, "shear": 6,
	}
	n, known := want[op]
	if !known {
		return core.Matrix{}, fmt.Errorf("unknown operation %q: %w", op, ErrInvalidTransform)
	}
	if len(args) != n {
		return core.Matrix{}, fmt.Errorf("%s takes %d arguments, got %d: %w", op, n, len(args), ErrInvalidTransform)
	}

	switch op {
	case "translate":
		return core.Translation(args[0], args[1], args[2]), nil
	case "scale":
		return core.Scaling(args[0], args[1], args[2]), nil
	case "rotate_x":
		return core.RotationX(args[0]), nil
	case "rotate_y":
		return core.RotationY(args[0]), nil
	case "rotate_z":
		return core.RotationZ(args[0]), nil
	default:
		return core.Shearing(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func tupleFrom(v []float64, w float64, field string) (core.Tuple, error) {
	if len(v) != 3 {
		return core.Tuple{}, fmt.Errorf("%s needs 3 components, got %d", field, len(v))
	}
	return core.NewTuple(v[0], v[1], v[2], w), nil
}

// ValidateScenePath rejects paths that are not YAML files under a scenes/
// directory. Paths come from untrusted callers such as the web server.
func ValidateScenePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	// Clean the path to resolve . and .. components
	cleanPath := filepath.ToSlash(filepath.Clean(filename))

	// The only traversal allowed is a sibling scenes/ directory
	if strings.Contains(cleanPath, "..") && !strings.HasPrefix(cleanPath, "../scenes/") {
		return fmt.Errorf("invalid file path: directory traversal not allowed")
	}
	if strings.Count(cleanPath, "..") > 1 {
		return fmt.Errorf("invalid file path: directory traversal not allowed")
	}
	if !strings.HasPrefix(cleanPath, "scenes/") && !strings.Contains(cleanPath, "/scenes/") {
		return fmt.Errorf("file path must be in scenes/ directory")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("invalid file type: only .yaml files are allowed")
	}

	// Check for extremely long paths that could cause issues
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	return nil
}
