package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid scene config")

// MaxCanvasSize bounds the canvas side length
const MaxCanvasSize = 8192

// Triple is a JSON-friendly x/y/z or r/g/b value
type Triple [3]float64

func (t Triple) point() core.Point { return core.NewPoint(t[0], t[1], t[2]) }
func (t Triple) color() core.Color { return core.NewColor(t[0], t[1], t[2]) }

func (t Triple) isFinite() bool {
	for _, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaterialConfig holds Phong material parameters
type MaterialConfig struct {
	Color     Triple  `json:"color"`
	Ambient   float64 `json:"ambient"`
	Diffuse   float64 `json:"diffuse"`
	Specular  float64 `json:"specular"`
	Shininess float64 `json:"shininess"`
}

// Config is the host-facing description of a scene
type Config struct {
	Mode           string         `json:"mode"`           // "silhouette" or "shaded"
	CanvasSize     int            `json:"canvasSize"`     // Square canvas side in pixels
	WallZ          float64        `json:"wallZ"`          // Depth of the projection wall
	WallSize       float64        `json:"wallSize"`       // Side length of the projection wall
	Camera         Triple         `json:"camera"`         // Eye point
	SphereOrigin   Triple         `json:"sphereOrigin"`   // Sphere center
	SphereRadius   float64        `json:"sphereRadius"`   // Sphere radius
	LightPosition  Triple         `json:"lightPosition"`  // Point light position
	LightIntensity Triple         `json:"lightIntensity"` // Point light color
	Material       MaterialConfig `json:"material"`       // Sphere surface
	Background     Triple         `json:"background"`     // Color of pixels that miss
	MarkerColor    Triple         `json:"markerColor"`    // Color of hits in silhouette mode
}

// DefaultConfig returns the reference scene: a magenta unit sphere lit from
// the upper left, seen from z=-5 through a 10x10 wall at z=10
func DefaultConfig() Config {
	m := material.DefaultPhong()
	return Config{
		Mode:           string(ModeShaded),
		CanvasSize:     480,
		WallZ:          10,
		WallSize:       10,
		Camera:         Triple{0, 0, -5},
		SphereOrigin:   Triple{0, 0, 0},
		SphereRadius:   1,
		LightPosition:  Triple{-10, 10, -10},
		LightIntensity: Triple{1, 1, 1},
		Material: MaterialConfig{
			Color:     Triple{1, 0.2, 1}, // #ff33ff
			Ambient:   m.Ambient,
			Diffuse:   m.Diffuse,
			Specular:  m.Specular,
			Shininess: m.Shininess,
		},
		Background:  Triple{1, 1, 1},
		MarkerColor: Triple{1, 0, 0},
	}
}

// LoadConfig reads a JSON config file. Fields absent from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read scene config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Validate reports the first configuration problem that would make the
// render degenerate
func (c Config) Validate() error {
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	if c.CanvasSize <= 0 || c.CanvasSize > MaxCanvasSize {
		return fmt.Errorf("%w: canvas size must be between 1 and %d, got %d", ErrInvalidConfig, MaxCanvasSize, c.CanvasSize)
	}
	if math.IsNaN(c.WallSize) || math.IsInf(c.WallSize, 0) || c.WallSize <= 0 {
		return fmt.Errorf("%w: wall size must be positive, got %f", ErrInvalidConfig, c.WallSize)
	}
	if math.IsNaN(c.WallZ) || math.IsInf(c.WallZ, 0) {
		return fmt.Errorf("%w: wall depth must be finite, got %f", ErrInvalidConfig, c.WallZ)
	}

	triples := []struct {
		name  string
		value Triple
	}{
		{"camera", c.Camera},
		{"sphere origin", c.SphereOrigin},
		{"light position", c.LightPosition},
		{"light intensity", c.LightIntensity},
		{"background", c.Background},
		{"marker color", c.MarkerColor},
	}
	for _, tr := range triples {
		if !tr.value.isFinite() {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, tr.name, tr.value)
		}
	}

	// Rays from a camera on the wall plane could have zero length
	if c.Camera[2] == c.WallZ {
		return fmt.Errorf("%w: camera must not lie on the wall plane z=%f", ErrInvalidConfig, c.WallZ)
	}

	sphere := geometry.NewSphere(c.SphereOrigin.point(), c.SphereRadius, c.phong())
	if err := sphere.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	light := lights.NewPointLight(c.LightPosition.point(), c.LightIntensity.color())
	if err := light.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Build validates the config and assembles a Scene
func (c Config) Build(name string) (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	mode, _ := ParseMode(c.Mode)
	sphere := geometry.NewSphere(c.SphereOrigin.point(), c.SphereRadius, c.phong())

	return &Scene{
		Name:        name,
		Mode:        mode,
		Width:       c.CanvasSize,
		Height:      c.CanvasSize,
		Camera:      c.Camera.point(),
		Wall:        Wall{Z: c.WallZ, Size: c.WallSize},
		Object:      geometry.NewSphereShape(sphere),
		Light:       lights.NewPointLight(c.LightPosition.point(), c.LightIntensity.color()),
		Background:  c.Background.color(),
		MarkerColor: c.MarkerColor.color(),
	}, nil
}

func (c Config) phong() *material.Phong {
	return material.NewPhong(
		c.Material.Color.color(),
		c.Material.Ambient,
		c.Material.Diffuse,
		c.Material.Specular,
		c.Material.Shininess,
	)
}
