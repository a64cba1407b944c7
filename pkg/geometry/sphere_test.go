package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

func unitSphere() *Shape {
	return NewSphereShape(NewSphere(core.NewPoint(0, 0, 0), 1.0, material.DefaultPhong()))
}

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name         string
		rayOrigin    core.Point
		rayDirection core.Vec3
		expectedT    []float64
	}{
		{
			name:         "through the center",
			rayOrigin:    core.NewPoint(0, 0, -5),
			rayDirection: core.NewVec3(0, 0, 1),
			expectedT:    []float64{4.0, 6.0},
		},
		{
			name:         "tangent yields two equal roots",
			rayOrigin:    core.NewPoint(0, 1, -5),
			rayDirection: core.NewVec3(0, 0, 1),
			expectedT:    []float64{5.0, 5.0},
		},
		{
			name:         "miss",
			rayOrigin:    core.NewPoint(0, 2, -5),
			rayDirection: core.NewVec3(0, 0, 1),
			expectedT:    nil,
		},
		{
			name:         "origin inside the sphere",
			rayOrigin:    core.NewPoint(0, 0, 0),
			rayDirection: core.NewVec3(0, 0, 1),
			expectedT:    []float64{-1.0, 1.0},
		},
		{
			name:         "sphere behind the ray",
			rayOrigin:    core.NewPoint(0, 0, 5),
			rayDirection: core.NewVec3(0, 0, 1),
			expectedT:    []float64{-6.0, -4.0},
		},
		{
			name:         "unnormalized direction scales t",
			rayOrigin:    core.NewPoint(0, 0, -5),
			rayDirection: core.NewVec3(0, 0, 2),
			expectedT:    []float64{2.0, 3.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := unitSphere()
			xs := shape.Intersect(core.NewRay(tt.rayOrigin, tt.rayDirection))

			if xs.Len() != len(tt.expectedT) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expectedT), xs.Len())
			}
			for i, expected := range tt.expectedT {
				x := xs.At(i)
				if math.Abs(x.T-expected) > 1e-9 {
					t.Errorf("Intersection %d: expected t=%f, got t=%f", i, expected, x.T)
				}
				if x.Object != shape {
					t.Errorf("Intersection %d: expected object to be the intersected shape", i)
				}
			}
		})
	}
}

func TestSphere_IntersectUsesRadius(t *testing.T) {
	shape := NewSphereShape(NewSphere(core.NewPoint(0, 0, 0), 2.0, nil))
	xs := shape.Intersect(core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 0, 1)))

	if xs.Len() != 2 {
		t.Fatalf("Expected 2 intersections, got %d", xs.Len())
	}
	if math.Abs(xs.At(0).T-3) > 1e-9 || math.Abs(xs.At(1).T-7) > 1e-9 {
		t.Errorf("Expected t=3 and t=7 for radius 2, got %f and %f", xs.At(0).T, xs.At(1).T)
	}
}

func TestSphere_IntersectOffCenter(t *testing.T) {
	shape := NewSphereShape(NewSphere(core.NewPoint(3, 0, 0), 1.0, nil))

	hit := shape.Intersect(core.NewRay(core.NewPoint(3, 0, -5), core.NewVec3(0, 0, 1)))
	if hit.Len() != 2 || math.Abs(hit.At(0).T-4) > 1e-9 {
		t.Errorf("Expected hit at t=4 on translated sphere, got %d intersections", hit.Len())
	}

	miss := shape.Intersect(core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 0, 1)))
	if miss.Len() != 0 {
		t.Errorf("Expected miss for ray through the origin, got %d intersections", miss.Len())
	}
}

func TestSphere_NormalAt(t *testing.T) {
	s := math.Sqrt(3) / 3

	tests := []struct {
		name     string
		center   core.Point
		point    core.Point
		expected core.Vec3
	}{
		{"x axis", core.NewPoint(0, 0, 0), core.NewPoint(1, 0, 0), core.NewVec3(1, 0, 0)},
		{"y axis", core.NewPoint(0, 0, 0), core.NewPoint(0, 1, 0), core.NewVec3(0, 1, 0)},
		{"z axis", core.NewPoint(0, 0, 0), core.NewPoint(0, 0, 1), core.NewVec3(0, 0, 1)},
		{"nonaxial", core.NewPoint(0, 0, 0), core.NewPoint(s, s, s), core.NewVec3(s, s, s)},
		{"translated center", core.NewPoint(0, 1, 0), core.NewPoint(0, 2, 0), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := NewSphereShape(NewSphere(tt.center, 1.0, nil))
			n := shape.NormalAt(tt.point)

			const tolerance = 1e-9
			if n.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expected, n)
			}
			if math.Abs(n.Length()-1) > tolerance {
				t.Errorf("Expected unit normal, got length %f", n.Length())
			}
		})
	}
}

func TestSphere_Validate(t *testing.T) {
	tests := []struct {
		name        string
		sphere      *Sphere
		expectError bool
	}{
		{"unit sphere", NewSphere(core.NewPoint(0, 0, 0), 1, material.DefaultPhong()), false},
		{"no material", NewSphere(core.NewPoint(0, 0, 0), 1, nil), false},
		{"zero radius", NewSphere(core.NewPoint(0, 0, 0), 0, nil), true},
		{"negative radius", NewSphere(core.NewPoint(0, 0, 0), -1, nil), true},
		{"NaN center", NewSphere(core.NewPoint(math.NaN(), 0, 0), 1, nil), true},
		{"bad material", NewSphere(core.NewPoint(0, 0, 0), 1, &material.Phong{Shininess: 0}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSphereShape(tt.sphere).Validate()
			if tt.expectError != (err != nil) {
				t.Errorf("Expected error=%t, got %v", tt.expectError, err)
			}
		})
	}

	if err := (&Shape{}).Validate(); err == nil {
		t.Error("Expected error for shape without a kind")
	}
}

func TestShape_Accessors(t *testing.T) {
	m := material.DefaultPhong()
	sphere := NewSphere(core.NewPoint(0, 0, 0), 1, m)
	shape := NewSphereShape(sphere)

	if shape.Kind != ShapeSphere || shape.Kind.String() != "sphere" {
		t.Errorf("Expected sphere kind, got %s", shape.Kind)
	}
	if shape.Sphere() != sphere {
		t.Error("Expected Sphere() to return the wrapped sphere")
	}
	if shape.Material() != m {
		t.Error("Expected Material() to return the sphere's material")
	}
}

func TestSphere_IntersectDegenerateRayMisses(t *testing.T) {
	nan := math.NaN()
	rays := []core.Ray{
		core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(nan, nan, nan)),
		core.NewRay(core.NewPoint(nan, 0, -5), core.NewVec3(0, 0, 1)),
	}

	for _, ray := range rays {
		xs := unitSphere().Intersect(ray)
		if xs.Len() != 0 {
			t.Errorf("Expected no intersections for %v, got %d", ray, xs.Len())
		}
		if xs.Hit() != nil {
			t.Errorf("Expected no hit for %v", ray)
		}
	}
}
