package core

import (
	"math"
	"math/rand"
)

// Vec2 represents a 2D sample point
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleUniformTriangle maps a 2D sample onto barycentric coordinates
// distributed uniformly over a triangle's area
func SampleUniformTriangle(sample Vec2) (u, v float64) {
	term := math.Sqrt(sample.X)
	return 1.0 - term, sample.Y * term
}

// SampleUniformSphere maps a 2D sample onto a uniformly distributed
// direction over the full sphere
func SampleUniformSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SampleCosineHemisphere maps a 2D sample onto a direction with cosine/pi
// density over the hemisphere around normal. Estimators dividing by this
// density cancel their cosine term exactly.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	sinTheta := math.Sqrt(sample.Y)
	cosTheta := math.Sqrt(1.0 - sample.Y)

	// Orthonormal frame around the normal
	axis := NewVec3(1, 0, 0)
	if math.Abs(normal.X) > 0.1 {
		axis = NewVec3(0, 1, 0)
	}
	tangent := axis.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return tangent.Multiply(sinTheta * math.Cos(phi)).
		Add(bitangent.Multiply(sinTheta * math.Sin(phi))).
		Add(normal.Multiply(cosTheta))
}
