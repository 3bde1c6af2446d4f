package geometry

import "github.com/mkarlik/go-smallray/pkg/core"

// List is a flat aggregate of geometry, traversed in insertion order.
// For exactly-equal hit distances the earliest inserted geometry wins,
// since later hits must be strictly closer to replace the current one.
type List struct {
	geometry []Geometry
}

// NewList creates an empty geometry list
func NewList(geometry ...Geometry) *List {
	return &List{geometry: geometry}
}

// Add appends geometry to the list. The list takes ownership.
func (l *List) Add(g Geometry) {
	l.geometry = append(l.geometry, g)
}

// Len returns the number of geometry entries in the list
func (l *List) Len() int {
	return len(l.geometry)
}

// Intersect implements the Geometry interface closest-hit query.
// Each entry uses isect.Dist as its upper bound, so the closest hit
// across the whole list survives.
func (l *List) Intersect(ray core.Ray, isect *core.Isect) bool {
	hitAnything := false
	for _, g := range l.geometry {
		if g.Intersect(ray, isect) {
			hitAnything = true
		}
	}
	return hitAnything
}

// IntersectP implements the Geometry interface any-hit query,
// returning on the first entry that reports a hit
func (l *List) IntersectP(ray core.Ray, maxDist float64) bool {
	for _, g := range l.geometry {
		if g.IntersectP(ray, maxDist) {
			return true
		}
	}
	return false
}

// GrowBBox expands the given bound to include every owned geometry
func (l *List) GrowBBox(boxMin, boxMax *core.Vec3) {
	for _, g := range l.geometry {
		g.GrowBBox(boxMin, boxMax)
	}
}
