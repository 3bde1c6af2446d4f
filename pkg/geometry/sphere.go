package geometry

import (
	"math"

	"github.com/mkarlik/go-smallray/pkg/core"
)

// Sphere represents a sphere shape tagged with a material id
type Sphere struct {
	Center core.Vec3
	Radius float64
	MatID  int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, matID int) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		MatID:  matID,
	}
}

// hit solves the ray-sphere quadratic, returning the nearest root inside
// (ray.TMin, maxDist) or false
func (s *Sphere) hit(ray core.Ray, maxDist float64) (float64, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= ray.TMin || root >= maxDist {
		root = (-halfB + sqrtD) / a
		if root <= ray.TMin || root >= maxDist {
			return 0, false
		}
	}

	return root, true
}

// Intersect implements the Geometry interface closest-hit query
func (s *Sphere) Intersect(ray core.Ray, isect *core.Isect) bool {
	dist, ok := s.hit(ray, isect.Dist)
	if !ok {
		return false
	}

	isect.Dist = dist
	isect.MatID = s.MatID
	isect.Normal = ray.At(dist).Subtract(s.Center).Multiply(1.0 / s.Radius)
	return true
}

// IntersectP implements the Geometry interface any-hit query
func (s *Sphere) IntersectP(ray core.Ray, maxDist float64) bool {
	_, ok := s.hit(ray, maxDist)
	return ok
}

// GrowBBox expands the given bound to include the sphere
func (s *Sphere) GrowBBox(boxMin, boxMax *core.Vec3) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	*boxMin = boxMin.Min(s.Center.Subtract(radius))
	*boxMax = boxMax.Max(s.Center.Add(radius))
}
