package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v2"
)

// FileScenePrefix marks scene ids that refer to scene files
const FileScenePrefix = "yaml:"

// Group names used when a scene does not declare one
const (
	BuiltinGroup = "Built-in Scenes"
	FileGroup    = "Scene Files"
)

// SceneDirs are the directories searched for scene files, in order.
// Only the first one that exists is scanned.
var SceneDirs = []string{"scenes", "../scenes"}

// Metadata is the optional metadata mapping at the top of a scene file:
//
//	metadata:
//	  name: Glass
//	  variant: Nested Spheres
//	  description: A glass sphere holding an air bubble
//	  group: Refraction
type Metadata struct {
	Name        string `yaml:"name" json:"name"`
	Variant     string `yaml:"variant" json:"variant,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
	Group       string `yaml:"group" json:"group,omitempty"`
}

// DisplayName is "Name - Variant", or just Name without a variant
func (m Metadata) DisplayName() string {
	if m.Variant == "" {
		return m.Name
	}
	return m.Name + " - " + m.Variant
}

// SceneInfo is a listing entry for a built-in scene or a scene file
type SceneInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Group       string `json:"group"`
	Type        string `json:"type"`     // "builtin" or "yaml"
	FilePath    string `json:"filePath"` // yaml only
	Variant     string `json:"variant"`
}

// SceneGroup is a named bucket of scenes in a listing
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse is the body of /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// DecodeMetadata reads the metadata mapping from scene file data.
// All other keys are ignored.
func DecodeMetadata(data []byte) (Metadata, error) {
	var doc struct {
		Metadata Metadata `yaml:"metadata"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Metadata{}, err
	}
	return doc.Metadata, nil
}

// ParseSceneMetadata describes the scene file at path. A missing name
// is derived from the file name and a missing group becomes FileGroup.
func ParseSceneMetadata(path string) (SceneInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneInfo{}, err
	}
	meta, err := DecodeMetadata(data)
	if err != nil {
		return SceneInfo{}, fmt.Errorf("%s: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if meta.Name == "" {
		meta.Name = nameFromStem(stem)
	}
	if meta.Group == "" {
		meta.Group = FileGroup
	}

	return SceneInfo{
		ID:          FileScenePrefix + stem,
		Name:        meta.Name,
		DisplayName: meta.DisplayName(),
		Description: meta.Description,
		Group:       meta.Group,
		Type:        "yaml",
		FilePath:    path,
		Variant:     meta.Variant,
	}, nil
}

// ListSceneFiles describes the scene files in the first of SceneDirs that
// exists. Files whose metadata cannot be decoded are left out; loading
// them directly reports the error.
func ListSceneFiles() ([]SceneInfo, error) {
	for _, dir := range SceneDirs {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return ScanSceneDir(dir)
		}
	}
	return []SceneInfo{}, nil
}

// ScanSceneDir describes the .yaml and .yml files in dir, ordered by
// display name
func ScanSceneDir(dir string) ([]SceneInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		info, err := ParseSceneMetadata(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		scenes = append(scenes, info)
	}

	sort.SliceStable(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ListAllScenes returns the built-in scenes and the scene files, grouped
func ListAllScenes() (ScenesResponse, error) {
	files, err := ListSceneFiles()
	if err != nil {
		return ScenesResponse{}, fmt.Errorf("failed to list scene files: %w", err)
	}
	return ScenesResponse{Groups: groupScenes(append(BuiltinScenes(), files...))}, nil
}

// groupScenes buckets scenes by group, keeping their order within a
// group. The built-in group sorts first, the rest alphabetically.
func groupScenes(scenes []SceneInfo) []SceneGroup {
	index := make(map[string]int)
	var groups []SceneGroup
	for _, s := range scenes {
		i, ok := index[s.Group]
		if !ok {
			i = len(groups)
			index[s.Group] = i
			groups = append(groups, SceneGroup{Name: s.Group})
		}
		groups[i].Scenes = append(groups[i].Scenes, s)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		bi, bj := groups[i].Name == BuiltinGroup, groups[j].Name == BuiltinGroup
		if bi != bj {
			return bi
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}

// nameFromStem turns a file stem like "glass-spheres" into "Glass Spheres"
func nameFromStem(stem string) string {
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
