package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// PointLight is a non-attenuating light emitting from a single point
type PointLight struct {
	Position  core.Point
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, intensity core.Color) *PointLight {
	return &PointLight{
		Position:  position,
		Intensity: intensity,
	}
}

// Validate rejects lights that would poison shading with NaN
func (l *PointLight) Validate() error {
	if !l.Position.IsFinite() {
		return fmt.Errorf("light position must be finite, got %v", l.Position)
	}
	if !l.Intensity.IsFinite() || l.Intensity.R < 0 || l.Intensity.G < 0 || l.Intensity.B < 0 {
		return fmt.Errorf("light intensity must be finite and non-negative, got %v", l.Intensity)
	}
	return nil
}

// Lighting evaluates the Phong model for one light at a surface point.
// eye and normal must be unit vectors. The result is not clamped.
func Lighting(m *material.Phong, light *PointLight, point core.Point, eye, normal core.Vec3) core.Color {
	effectiveColor := m.Color.Hadamard(light.Intensity)
	toLight := light.Position.Subtract(point).Normalize()
	ambient := effectiveColor.Multiply(m.Ambient)

	lightDotNormal := toLight.Dot(normal)
	if lightDotNormal < 0 {
		// Light is on the far side of the surface
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflected := toLight.Negate().Reflect(normal)
	if reflectDotEye := reflected.Dot(eye); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
