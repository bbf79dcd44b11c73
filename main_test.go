package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"showcase scene", "showcase", false},
		{"hexagon scene", "hexagon", false},
		{"primitives scene", "primitives", false},

		// YAML scenes
		{"yaml id", "yaml:glass", false},
		{"bare yaml name", "mirrors", false},
		{"direct yaml path", "scenes/group.yaml", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid yaml path", "scenes/nonexistent.yaml", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, geometry.CameraConfig{})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.CameraConfig.Width <= 0 || scene.CameraConfig.Height <= 0 {
				t.Errorf("Scene camera size should be positive, got %dx%d", scene.CameraConfig.Width, scene.CameraConfig.Height)
			}
			if len(scene.World.Objects) == 0 {
				t.Errorf("Expected objects in scene '%s'", tt.sceneType)
			}
		})
	}
}

func TestCreateScene_SizeOverride(t *testing.T) {
	for _, sceneType := range []string{"default", "yaml:glass"} {
		s, err := createScene(sceneType, geometry.CameraConfig{Width: 40, Height: 30})
		if err != nil {
			t.Fatalf("%s: %v", sceneType, err)
		}
		if s.Camera.HSize != 40 || s.Camera.VSize != 30 {
			t.Errorf("%s: expected 40x30 camera, got %dx%d", sceneType, s.Camera.HSize, s.Camera.VSize)
		}
	}
}

func TestFindSceneFile(t *testing.T) {
	tests := []struct {
		sceneType string
		expected  string
		found     bool
	}{
		{"yaml:glass", filepath.Join("scenes", "glass.yaml"), true},
		{"glass", filepath.Join("scenes", "glass.yaml"), true},
		{"scenes/mirrors.yaml", "scenes/mirrors.yaml", true},
		{"default", "", false},
		{"scenes/missing.yaml", "", false},
	}

	for _, tt := range tests {
		path, ok := findSceneFile(tt.sceneType)
		if ok != tt.found || path != tt.expected {
			t.Errorf("findSceneFile(%q) = %q, %v; expected %q, %v", tt.sceneType, path, ok, tt.expected, tt.found)
		}
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		sceneType string
		expected  string
	}{
		{"built-in scene", "default", filepath.Join("output", "default")},
		{"yaml id", "yaml:glass", filepath.Join("output", "glass")},
		{"yaml path", "scenes/glass.yaml", filepath.Join("output", "glass")},
		{"nested yaml path", "scenes/subdir/my-scene.yml", filepath.Join("output", "my-scene")},
		{"empty", "", filepath.Join("output", "scene")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := createOutputDir(tt.sceneType); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRun_WritesPNG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out", "render.png")
	args := []string{
		"-scene", "default",
		"-width", "24",
		"-height", "12",
		"-tile", "8",
		"-workers", "2",
		"-log-level", "error",
		"-output", output,
	}

	if err := run(args, &bytes.Buffer{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	file, err := os.Open(output)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 12 {
		t.Errorf("Expected 24x12 image, got %v", b)
	}
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-help"}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"Whitted Raytracer", "-scene", "showcase", "yaml:glass"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Help output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"-scene", "nonexistent", "-log-level", "error"}},
		{"bad flag", []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args, &bytes.Buffer{}); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
