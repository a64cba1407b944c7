package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Phong holds the surface reflectance parameters of the Phong model
type Phong struct {
	Color     core.Color // Base surface color
	Ambient   float64    // Fraction of light reflected regardless of geometry
	Diffuse   float64    // Lambertian reflectance
	Specular  float64    // Highlight reflectance
	Shininess float64    // Highlight exponent, larger is tighter
}

// NewPhong creates a new Phong material
func NewPhong(color core.Color, ambient, diffuse, specular, shininess float64) *Phong {
	return &Phong{
		Color:     color,
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// DefaultPhong returns a white material with ambient 0.1, diffuse 0.9,
// specular 0.9 and shininess 200
func DefaultPhong() *Phong {
	return NewPhong(core.White, 0.1, 0.9, 0.9, 200.0)
}

// WithColor returns a copy of the material with a different base color
func (m Phong) WithColor(color core.Color) *Phong {
	m.Color = color
	return &m
}

// Validate rejects parameters that would produce NaN or negative light
func (m *Phong) Validate() error {
	if m == nil {
		return errors.New("material is nil")
	}
	if !m.Color.IsFinite() || m.Color.R < 0 || m.Color.G < 0 || m.Color.B < 0 {
		return fmt.Errorf("material color must be finite and non-negative, got %v", m.Color)
	}

	terms := []struct {
		name  string
		value float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
	}
	for _, term := range terms {
		if math.IsNaN(term.value) || math.IsInf(term.value, 0) || term.value < 0 {
			return fmt.Errorf("material %s must be finite and non-negative, got %f", term.name, term.value)
		}
	}

	if math.IsNaN(m.Shininess) || math.IsInf(m.Shininess, 0) || m.Shininess <= 0 {
		return fmt.Errorf("material shininess must be positive, got %f", m.Shininess)
	}
	return nil
}
