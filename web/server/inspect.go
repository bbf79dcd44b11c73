package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"` // Refractive index on the incoming side
	N2           float64                `json:"n2"` // Refractive index on the far side
	Color        [3]float64             `json:"color"`
	Path         []string               `json:"path"` // Enclosing group names, outermost first
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo classifies a material and reports its coefficients
func (s *Server) extractMaterialInfo(m *material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"color":           tupleArray(m.Color),
		"hex":             hexColor(m.Color),
		"ambient":         m.Ambient,
		"diffuse":         m.Diffuse,
		"specular":        m.Specular,
		"shininess":       m.Shininess,
		"reflective":      m.Reflective,
		"transparency":    m.Transparency,
		"refractiveIndex": m.RefractiveIndex,
	}

	if m.Pattern != nil {
		properties["pattern"] = patternName(m.Pattern)
	}

	switch {
	case m.Transparency > 0 && m.Reflective > 0:
		return "glass", properties
	case m.Transparency > 0:
		return "transparent", properties
	case m.Reflective > 0:
		return "reflective", properties
	case m.Pattern != nil:
		return "patterned", properties
	default:
		return "phong", properties
	}
}

func patternName(p material.Pattern) string {
	switch p.(type) {
	case *material.StripePattern:
		return "stripe"
	case *material.GradientPattern:
		return "gradient"
	case *material.RingPattern:
		return "ring"
	case *material.CheckersPattern:
		return "checkers"
	case *material.SolidPattern:
		return "solid"
	default:
		return fmt.Sprintf("%T", p)
	}
}

// extractGeometryInfo reports the shape kind and its parameters
func (s *Server) extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		return "sphere", properties

	case *geometry.Plane:
		return "plane", properties

	case *geometry.Cube:
		return "cube", properties

	case *geometry.Cylinder:
		properties["minimum"] = boundValue(geom.Minimum)
		properties["maximum"] = boundValue(geom.Maximum)
		properties["closed"] = geom.Closed
		return "cylinder", properties

	case *geometry.Cone:
		properties["minimum"] = boundValue(geom.Minimum)
		properties["maximum"] = boundValue(geom.Maximum)
		properties["closed"] = geom.Closed
		return "cone", properties

	case *geometry.Triangle:
		properties["p1"] = tupleArray(geom.P1)
		properties["p2"] = tupleArray(geom.P2)
		properties["p3"] = tupleArray(geom.P3)
		return "triangle", properties

	default:
		return "unknown", properties
	}
}

// boundValue keeps infinite bounds representable in JSON
func boundValue(v float64) interface{} {
	if v > 1e300 {
		return "inf"
	}
	if v < -1e300 {
		return "-inf"
	}
	return v
}

// InspectResult holds what the camera ray through a pixel hit
type InspectResult struct {
	Hit   bool
	Comps integrator.Computations
	Color core.Tuple
}

// inspectPixel casts the ray through the centre of a pixel and shades the
// first visible surface
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	ray := sceneObj.Camera.RayForPixel(pixelX, pixelY)

	xs := sceneObj.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResult{Hit: false}
	}

	comps := integrator.PrepareComputations(hit, ray, xs)
	whitted := integrator.NewWhittedIntegrator(sceneObj.SamplingConfig.MaxDepth)
	return InspectResult{
		Hit:   true,
		Comps: comps,
		Color: whitted.ShadeHit(sceneObj.World, comps, sceneObj.SamplingConfig.MaxDepth),
	}
}

// groupPath lists the names of the groups enclosing shape
func groupPath(shape geometry.Shape) []string {
	var path []string
	for g := shape.Parent(); g != nil; g = g.Parent() {
		path = append([]string{g.Name}, path...)
	}
	return path
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	camera := sceneObj.Camera
	if pixelX < 0 || pixelX >= camera.HSize || pixelY < 0 || pixelY >= camera.VSize {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	comps := result.Comps
	materialType, materialProps := s.extractMaterialInfo(comps.Object.Material())
	geometryType, geometryProps := s.extractGeometryInfo(comps.Object)

	response := InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        tupleArray(comps.Point),
		Normal:       tupleArray(comps.NormalV),
		Distance:     comps.T,
		Inside:       comps.Inside,
		N1:           comps.N1,
		N2:           comps.N2,
		Color:        tupleArray(result.Color),
		Path:         groupPath(comps.Object),
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}
	writeJSON(w, http.StatusOK, response)
}

func tupleArray(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

func hexColor(c core.Tuple) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}
