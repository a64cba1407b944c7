package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point
	Radius   float64
	Material *material.Phong // Optional when only silhouettes are rendered
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, material *material.Phong) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Roots solves the ray-sphere quadratic. ok is false when the ray misses;
// otherwise t1 <= t2, and a tangent ray yields t1 == t2.
func (s *Sphere) Roots(ray core.Ray) (t1, t2 float64, ok bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	// Also rejects NaN from a degenerate ray
	if !(discriminant >= 0) {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 = (-b - sqrtD) / (2 * a)
	t2 = (-b + sqrtD) / (2 * a)
	return t1, t2, true
}

// NormalAt returns the outward unit normal at a point on the surface
func (s *Sphere) NormalAt(p core.Point) core.Vec3 {
	return p.Subtract(s.Center).Normalize()
}

// Validate checks that the sphere can be intersected without NaN results
func (s *Sphere) Validate() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("sphere center must be finite, got %v", s.Center)
	}
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius <= 0 {
		return fmt.Errorf("sphere radius must be positive, got %f", s.Radius)
	}
	if s.Material != nil {
		if err := s.Material.Validate(); err != nil {
			return fmt.Errorf("sphere material: %w", err)
		}
	}
	return nil
}
