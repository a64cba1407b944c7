package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/df07/go-raycaster/pkg/scene"
)

func TestBuildScene(t *testing.T) {
	tests := []struct {
		name         string
		sceneName    string
		mode         string
		size         int
		expectedID   string
		expectedMode scene.Mode
		expectedSize int
		expectedErr  error
	}{
		// Built-in scenes
		{"default scene", "default", "", 0, "default", scene.ModeShaded, 480, nil},
		{"silhouette scene", "silhouette", "", 0, "silhouette", scene.ModeSilhouette, 480, nil},

		// Scene files (by name and by path)
		{"scene file by name", "blue-giant", "", 0, "blue-giant", scene.ModeShaded, 480, nil},
		{"scene file by path", "scenes/offset-silhouette.json", "", 0, "offset-silhouette", scene.ModeSilhouette, 480, nil},

		// Overrides
		{"mode override", "default", "silhouette", 0, "default", scene.ModeSilhouette, 480, nil},
		{"size override", "default", "", 120, "default", scene.ModeShaded, 120, nil},

		// Invalid scenes
		{"unknown scene", "nonexistent", "", 0, "", "", 0, scene.ErrUnknownScene},
		{"missing scene file", "scenes/nonexistent.json", "", 0, "", "", 0, scene.ErrUnknownScene},
		{"empty scene name", "", "", 0, "", "", 0, scene.ErrUnknownScene},
		{"invalid mode", "default", "wireframe", 0, "", "", 0, scene.ErrInvalidConfig},
		{"oversized canvas", "default", "", scene.MaxCanvasSize + 1, "", "", 0, scene.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := buildScene(tt.sceneName, "", tt.mode, tt.size)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("Expected %v for scene '%s', got %v", tt.expectedErr, tt.sceneName, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene on error, got %+v", s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneName, err)
			}
			if s.Name != tt.expectedID {
				t.Errorf("Expected scene name '%s', got '%s'", tt.expectedID, s.Name)
			}
			if s.Mode != tt.expectedMode {
				t.Errorf("Expected mode %s, got %s", tt.expectedMode, s.Mode)
			}
			if s.Width != tt.expectedSize || s.Height != tt.expectedSize {
				t.Errorf("Expected %dx%d canvas, got %dx%d", tt.expectedSize, tt.expectedSize, s.Width, s.Height)
			}
		})
	}
}

func TestBuildScene_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.json")
	if err := os.WriteFile(path, []byte(`{"canvasSize": 40, "mode": "silhouette"}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	// -config takes precedence over -scene
	s, err := buildScene("default", path, "", 0)
	if err != nil {
		t.Fatalf("Failed to build scene from config: %v", err)
	}
	if s.Name != "tiny" || s.Mode != scene.ModeSilhouette || s.Width != 40 {
		t.Errorf("Unexpected scene from config: name=%s mode=%s width=%d", s.Name, s.Mode, s.Width)
	}
}

func TestOutputPath(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := outputPath("output", "blue-giant", at)
	expected := filepath.Join("output", "blue-giant", "render_20240309_140507.png")
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestRun_WritesPNG(t *testing.T) {
	outputDir := t.TempDir()
	opts := Options{
		Scene:     "default",
		Size:      48,
		Workers:   2,
		Overlay:   true,
		OutputDir: outputDir,
	}

	if err := run(opts); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(outputDir, "default", "render_*.png"))
	if err != nil || len(files) != 1 {
		t.Fatalf("Expected one rendered PNG, got %v (err %v)", files, err)
	}

	file, err := os.Open(files[0])
	if err != nil {
		t.Fatalf("Failed to open render: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Errorf("Expected 48x48 render, got %v", b)
	}
}

func TestRun_UnknownScene(t *testing.T) {
	err := run(Options{Scene: "nonexistent", OutputDir: t.TempDir()})
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
