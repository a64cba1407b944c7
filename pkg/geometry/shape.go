package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// ShapeKind tags which primitive a Shape holds
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota + 1
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// Shape is a tagged union over the supported primitives.
// Dispatch is a switch on Kind rather than an interface call.
type Shape struct {
	Kind   ShapeKind
	sphere *Sphere
}

// NewSphereShape wraps a sphere as a Shape
func NewSphereShape(s *Sphere) *Shape {
	return &Shape{Kind: ShapeSphere, sphere: s}
}

// Sphere returns the sphere payload, or nil if the shape is another kind
func (sh *Shape) Sphere() *Sphere {
	if sh.Kind != ShapeSphere {
		return nil
	}
	return sh.sphere
}

// Intersect returns every parametric intersection of the ray with the shape
func (sh *Shape) Intersect(ray core.Ray) Intersections {
	switch sh.Kind {
	case ShapeSphere:
		t1, t2, ok := sh.sphere.Roots(ray)
		if !ok {
			return Intersections{}
		}
		return NewIntersections(
			Intersection{T: t1, Object: sh},
			Intersection{T: t2, Object: sh},
		)
	default:
		return Intersections{}
	}
}

// NormalAt returns the outward unit normal at p
func (sh *Shape) NormalAt(p core.Point) core.Vec3 {
	switch sh.Kind {
	case ShapeSphere:
		return sh.sphere.NormalAt(p)
	default:
		return core.Vec3{}
	}
}

// Material returns the shape's surface material, which may be nil
func (sh *Shape) Material() *material.Phong {
	switch sh.Kind {
	case ShapeSphere:
		return sh.sphere.Material
	default:
		return nil
	}
}

// Validate checks the shape payload
func (sh *Shape) Validate() error {
	switch sh.Kind {
	case ShapeSphere:
		if sh.sphere == nil {
			return errors.New("sphere shape has no sphere")
		}
		return sh.sphere.Validate()
	default:
		return fmt.Errorf("unsupported shape kind %s", sh.Kind)
	}
}
