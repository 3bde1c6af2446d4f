package geometry

import "github.com/mkarlik/go-smallray/pkg/core"

// Geometry is the intersection contract shared by primitives and aggregates.
// A composite aggregate (List, BVH) satisfies the same interface as a single
// primitive, so callers never distinguish between the two.
type Geometry interface {
	// Intersect performs a closest-hit query. A hit is recorded only when its
	// distance is strictly greater than ray.TMin and strictly less than the
	// current isect.Dist, which therefore acts as the running upper bound.
	// Returns true and updates isect when a closer hit was found.
	Intersect(ray core.Ray, isect *core.Isect) bool

	// IntersectP performs an any-hit query with distances bounded by
	// (ray.TMin, maxDist). It may return on the first hit found; there is no
	// closest-hit guarantee and no result fields are produced.
	IntersectP(ray core.Ray, maxDist float64) bool

	// GrowBBox expands a running min/max bound to include this geometry.
	// Commutative and associative over primitive order.
	GrowBBox(boxMin, boxMax *core.Vec3)
}
