package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
)

// Mode selects what the renderer writes for a pixel whose ray hits the sphere
type Mode string

const (
	ModeSilhouette Mode = "silhouette" // Write a fixed marker color
	ModeShaded     Mode = "shaded"     // Write the Phong-shaded color
)

// ParseMode converts a mode name to a Mode
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeSilhouette, ModeShaded:
		return Mode(name), nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q (want %q or %q)", ErrInvalidConfig, name, ModeSilhouette, ModeShaded)
	}
}

// Wall is the projection plane rays are cast through
type Wall struct {
	Z    float64 // Depth of the plane
	Size float64 // Side length of the square visible region
}

// Scene contains all the elements needed for rendering one frame
type Scene struct {
	Name        string
	Mode        Mode
	Width       int
	Height      int
	Camera      core.Point
	Wall        Wall
	Object      *geometry.Shape
	Light       *lights.PointLight
	Background  core.Color
	MarkerColor core.Color
}

// Material returns the material of the scene's object
func (s *Scene) Material() *material.Phong {
	return s.Object.Material()
}

// Validate checks the invariants the renderer relies on
func (s *Scene) Validate() error {
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: canvas must be non-empty, got %dx%d", ErrInvalidConfig, s.Width, s.Height)
	}
	// Pixel size is derived from the width alone
	if s.Width != s.Height {
		return fmt.Errorf("%w: canvas must be square, got %dx%d", ErrInvalidConfig, s.Width, s.Height)
	}
	if math.IsNaN(s.Wall.Size) || math.IsInf(s.Wall.Size, 0) || s.Wall.Size <= 0 {
		return fmt.Errorf("%w: wall size must be positive, got %f", ErrInvalidConfig, s.Wall.Size)
	}
	if math.IsNaN(s.Wall.Z) || math.IsInf(s.Wall.Z, 0) {
		return fmt.Errorf("%w: wall depth must be finite, got %f", ErrInvalidConfig, s.Wall.Z)
	}
	if !s.Camera.IsFinite() {
		return fmt.Errorf("%w: camera must be finite, got %v", ErrInvalidConfig, s.Camera)
	}
	if s.Camera.Z == s.Wall.Z {
		return fmt.Errorf("%w: camera must not lie on the wall plane z=%f", ErrInvalidConfig, s.Wall.Z)
	}
	if s.Object == nil || s.Light == nil {
		return fmt.Errorf("%w: scene needs an object and a light", ErrInvalidConfig)
	}
	if err := s.Object.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := s.Light.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if s.Mode == ModeShaded && s.Material() == nil {
		return fmt.Errorf("%w: shaded mode requires a material", ErrInvalidConfig)
	}
	return nil
}
