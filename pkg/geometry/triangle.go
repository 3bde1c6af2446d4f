package geometry

import "github.com/mkarlik/go-smallray/pkg/core"

// Triangle represents a single triangle defined by three vertices,
// tagged with a material id
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	MatID      int       // Material id of the triangle
	normal     core.Vec3 // Cached geometric normal
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, matID int) *Triangle {
	t := &Triangle{
		V0:    v0,
		V1:    v1,
		V2:    v2,
		MatID: matID,
	}
	t.computeNormal()
	return t
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Normal returns the triangle's geometric normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// hit runs the Möller-Trumbore test, returning the hit distance inside
// (ray.TMin, maxDist) or false
func (t *Triangle) hit(ray core.Ray, maxDist float64) (float64, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Determinant near zero means the ray lies in the triangle's plane
	if a > -epsilon && a < epsilon {
		return 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, false
	}

	dist := f * edge2.Dot(q)
	if dist <= ray.TMin || dist >= maxDist {
		return 0, false
	}

	return dist, true
}

// Intersect implements the Geometry interface closest-hit query
func (t *Triangle) Intersect(ray core.Ray, isect *core.Isect) bool {
	dist, ok := t.hit(ray, isect.Dist)
	if !ok {
		return false
	}

	isect.Dist = dist
	isect.MatID = t.MatID
	isect.Normal = t.normal
	return true
}

// IntersectP implements the Geometry interface any-hit query
func (t *Triangle) IntersectP(ray core.Ray, maxDist float64) bool {
	_, ok := t.hit(ray, maxDist)
	return ok
}

// GrowBBox expands the given bound to include all three vertices
func (t *Triangle) GrowBBox(boxMin, boxMax *core.Vec3) {
	*boxMin = boxMin.Min(t.V0).Min(t.V1).Min(t.V2)
	*boxMax = boxMax.Max(t.V0).Max(t.V1).Max(t.V2)
}
