package geometry

import (
	"sort"
)

// Intersection records where along a ray a shape was hit
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates an intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersections, usually in ascending T order
type Intersections []Intersection

// NewIntersections collects intersections and sorts them by T
func NewIntersections(xs ...Intersection) Intersections {
	result := Intersections(xs)
	result.Sort()
	return result
}

// Sort orders the intersections by ascending T. Equal T values keep
// their original order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the lowest positive T.
// Intersections behind the ray origin (T < 0) and exactly at it (T = 0)
// are never hits. For ties the earliest intersection in the list wins.
func (xs Intersections) Hit() (Intersection, bool) {
	best := -1
	for i, x := range xs {
		if x.T > 0 && (best < 0 || x.T < xs[best].T) {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}
