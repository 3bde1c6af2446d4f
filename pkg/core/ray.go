package core

// MaxDist is the sentinel "no hit yet" distance used to initialize
// intersection queries.
const MaxDist = 1e36

// Ray represents a ray with an origin, direction and minimum parametric distance.
// The direction is expected to be normalized by convention; TMin must be >= 0.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3, tMin float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Isect contains information about a ray-primitive intersection.
// Dist doubles as the running closest-hit bound during aggregate traversal:
// primitives only record a hit strictly closer than the current Dist.
type Isect struct {
	Dist    float64 // Distance to the hit along the ray
	MatID   int     // Material id of the hit surface
	LightID int     // Light id when the surface is a registered emitter, -1 otherwise
	Normal  Vec3    // Geometric normal at the hit point
}

// NewIsect returns an intersection result primed for a closest-hit query
func NewIsect() Isect {
	return Isect{Dist: MaxDist, MatID: -1, LightID: -1}
}
