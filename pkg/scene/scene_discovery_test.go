package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNameFromStem(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"glass-spheres", "Glass Spheres"},
		{"mirror_room", "Mirror Room"},
		{"my--custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := nameFromStem(tc.input); got != tc.expected {
				t.Errorf("nameFromStem(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestMetadata_DisplayName(t *testing.T) {
	if got := (Metadata{Name: "Glass", Variant: "Bubble"}).DisplayName(); got != "Glass - Bubble" {
		t.Errorf("Expected %q, got %q", "Glass - Bubble", got)
	}
	if got := (Metadata{Name: "Glass"}).DisplayName(); got != "Glass" {
		t.Errorf("Expected %q, got %q", "Glass", got)
	}
}

func TestDecodeMetadata(t *testing.T) {
	data := `
camera:
  width: 100
metadata:
  name: Glass Spheres
  variant: Air Bubble
  description: "A glass sphere: hollow centre"
  group: Refraction
shapes:
  - type: sphere
    material:
      refractive_index: air
`
	got, err := DecodeMetadata([]byte(data))
	if err != nil {
		t.Fatalf("DecodeMetadata() error: %v", err)
	}
	want := Metadata{
		Name:        "Glass Spheres",
		Variant:     "Air Bubble",
		Description: "A glass sphere: hollow centre",
		Group:       "Refraction",
	}
	if got != want {
		t.Errorf("DecodeMetadata() = %+v, want %+v", got, want)
	}

	empty, err := DecodeMetadata(nil)
	if err != nil || empty != (Metadata{}) {
		t.Errorf("Expected zero metadata for empty data, got %+v, %v", empty, err)
	}

	if _, err := DecodeMetadata([]byte("metadata: [unclosed")); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.yaml",
			content: `metadata:
  name: Glass Spheres
  variant: Air Bubble
  description: A glass sphere with a hollow centre
  group: Refraction
camera:
  width: 100`,
			expected: SceneInfo{
				ID:          "yaml:complete_metadata",
				Name:        "Glass Spheres",
				DisplayName: "Glass Spheres - Air Bubble",
				Description: "A glass sphere with a hollow centre",
				Group:       "Refraction",
				Type:        "yaml",
				Variant:     "Air Bubble",
			},
		},
		{
			name: "partial_metadata.yaml",
			content: `metadata:
  name: Mirror Room
  description: Two facing mirrors
camera:
  width: 100`,
			expected: SceneInfo{
				ID:          "yaml:partial_metadata",
				Name:        "Mirror Room",
				DisplayName: "Mirror Room",
				Description: "Two facing mirrors",
				Group:       FileGroup,
				Type:        "yaml",
			},
		},
		{
			name:    "no_metadata.yml",
			content: `camera: {width: 100}`,
			expected: SceneInfo{
				ID:          "yaml:no_metadata",
				Name:        "No Metadata",
				DisplayName: "No Metadata",
				Group:       FileGroup,
				Type:        "yaml",
			},
		},
		{
			name: "variant_only.yaml",
			content: `metadata:
  variant: Night`,
			expected: SceneInfo{
				ID:          "yaml:variant_only",
				Name:        "Variant Only",
				DisplayName: "Variant Only - Night",
				Group:       FileGroup,
				Type:        "yaml",
				Variant:     "Night",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.name, tc.content)

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("ParseSceneMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata_Errors(t *testing.T) {
	if _, err := ParseSceneMetadata(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist for a missing file, got %v", err)
	}

	path := writeSceneFile(t, t.TempDir(), "broken.yaml", "metadata:\n  name: [unclosed\n")
	_, err := ParseSceneMetadata(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("Expected an error naming %s, got %v", path, err)
	}
}

func TestScanSceneDir(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "b.yaml", "metadata:\n  name: Beta\n")
	writeSceneFile(t, dir, "a.yml", "metadata:\n  name: Alpha\n")
	writeSceneFile(t, dir, "broken.yaml", "metadata: [unclosed\n")
	writeSceneFile(t, dir, "ignored.txt", "metadata:\n  name: Ignored\n")
	if err := os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}

	scenes, err := ScanSceneDir(dir)
	if err != nil {
		t.Fatalf("ScanSceneDir() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d: %+v", len(scenes), scenes)
	}
	if scenes[0].DisplayName != "Alpha" || scenes[1].DisplayName != "Beta" {
		t.Errorf("Expected scenes sorted by display name, got %q, %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}

	empty, err := ScanSceneDir(t.TempDir())
	if err != nil {
		t.Fatalf("ScanSceneDir() error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", empty)
	}

	if _, err := ScanSceneDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}

func TestScanSceneDir_ExampleScenes(t *testing.T) {
	scenes, err := ScanSceneDir("../../scenes")
	if err != nil {
		t.Fatalf("ScanSceneDir() error: %v", err)
	}

	groups := map[string]string{}
	for _, s := range scenes {
		groups[s.ID] = s.Group
		if s.Description == "" || s.Variant == "" {
			t.Errorf("Example scene %s lacks description or variant: %+v", s.ID, s)
		}
	}
	expected := map[string]string{
		"yaml:glass":   "Refraction",
		"yaml:group":   "Geometry",
		"yaml:mirrors": "Reflection",
	}
	for id, group := range expected {
		if groups[id] != group {
			t.Errorf("Expected %s in group %q, got %q", id, group, groups[id])
		}
	}
}

func TestGroupScenes(t *testing.T) {
	scenes := []SceneInfo{
		{ID: "yaml:z", Group: "Reflection"},
		{ID: "b", Group: BuiltinGroup},
		{ID: "yaml:a", Group: "Geometry"},
		{ID: "a", Group: BuiltinGroup},
		{ID: "yaml:y", Group: "Reflection"},
	}

	groups := groupScenes(scenes)
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	if strings.Join(names, ",") != BuiltinGroup+",Geometry,Reflection" {
		t.Fatalf("Unexpected group order %v", names)
	}
	if groups[0].Scenes[0].ID != "b" || groups[0].Scenes[1].ID != "a" {
		t.Errorf("Expected input order kept within a group, got %+v", groups[0].Scenes)
	}
	if len(groups[2].Scenes) != 2 {
		t.Errorf("Expected 2 reflection scenes, got %d", len(groups[2].Scenes))
	}
}

func TestListAllScenes(t *testing.T) {
	response, err := ListAllScenes()
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}
	if len(response.Groups) == 0 {
		t.Fatal("ListAllScenes() returned no groups")
	}

	builtInGroup := response.Groups[0]
	if builtInGroup.Name != BuiltinGroup {
		t.Fatalf("Expected %q first, got %q", BuiltinGroup, builtInGroup.Name)
	}

	expectedScenes := []string{"default", "hexagon", "primitives", "showcase"}
	if len(builtInGroup.Scenes) != len(expectedScenes) {
		t.Fatalf("Built-in scenes count = %d, want %d", len(builtInGroup.Scenes), len(expectedScenes))
	}
	for i, id := range expectedScenes {
		if builtInGroup.Scenes[i].ID != id {
			t.Errorf("Built-in scene %d = %q, want %q", i, builtInGroup.Scenes[i].ID, id)
		}
	}

	for _, group := range response.Groups {
		for _, scene := range group.Scenes {
			if scene.ID == "" || scene.DisplayName == "" {
				t.Errorf("Scene missing id or display name: %+v", scene)
			}
			if scene.Type != "builtin" && scene.Type != "yaml" {
				t.Errorf("Invalid scene type: %s", scene.Type)
			}
			if scene.Type == "yaml" && (scene.FilePath == "" || !strings.HasPrefix(scene.ID, FileScenePrefix)) {
				t.Errorf("Malformed file scene: %+v", scene)
			}
		}
	}
}
