package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned when a scene id names no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

type builtinScene struct {
	info  SceneInfo
	build func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info: SceneInfo{
			Name:        "Default World",
			Description: "Two nested spheres lit by a single point light",
		},
		build: NewDefaultScene,
	},
	"showcase": {
		info: SceneInfo{
			Name:        "Showcase",
			Description: "Checkered floor with a mirror sphere and a hollow glass sphere",
		},
		build: NewShowcaseScene,
	},
	"hexagon": {
		info: SceneInfo{
			Name:        "Hexagon",
			Description: "Nested groups of spheres and cylinders",
		},
		build: NewHexagonScene,
	},
	"primitives": {
		info: SceneInfo{
			Name:        "Primitives",
			Description: "Cube, cylinder, cone and triangle on a ringed floor",
		},
		build: NewPrimitivesScene,
	},
}

// NewBuiltin builds the built-in scene with the given id
func NewBuiltin(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	b, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("scene %q: %w", id, ErrUnknownScene)
	}
	s := b.build(cameraOverrides...)
	s.Metadata = Metadata{
		Name:        b.info.Name,
		Description: b.info.Description,
		Group:       BuiltinGroup,
	}
	return s, nil
}

// BuiltinScenes lists the built-in scenes sorted by id
func BuiltinScenes() []SceneInfo {
	ids := make([]string, 0, len(builtinScenes))
	for id := range builtinScenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	infos := make([]SceneInfo, 0, len(ids))
	for _, id := range ids {
		info := builtinScenes[id].info
		info.ID = id
		info.DisplayName = info.Name
		info.Group = BuiltinGroup
		info.Type = "builtin"
		infos = append(infos, info)
	}
	return infos
}
