package geometry

import "math"

// Intersection records where along a ray a shape was crossed.
// T may be negative when the crossing lies behind the ray origin.
type Intersection struct {
	T      float64
	Object *Shape
}

// Intersections is the set produced by one intersect call, in production order
type Intersections struct {
	items []Intersection
}

// NewIntersections creates an intersection set
func NewIntersections(items ...Intersection) Intersections {
	return Intersections{items: items}
}

// Len returns the number of intersections
func (xs Intersections) Len() int {
	return len(xs.items)
}

// At returns the intersection at index, or nil when index is out of range
func (xs Intersections) At(index int) *Intersection {
	if index < 0 || index >= len(xs.items) {
		return nil
	}
	return &xs.items[index]
}

// Hit returns the visible intersection: the smallest non-negative T.
// Returns nil if every intersection lies behind the ray origin or is NaN.
func (xs Intersections) Hit() *Intersection {
	var hit *Intersection
	for i := range xs.items {
		x := &xs.items[i]
		if x.T < 0 || math.IsNaN(x.T) {
			continue
		}
		if hit == nil || x.T < hit.T {
			hit = x
		}
	}
	return hit
}
