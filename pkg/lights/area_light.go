package lights

import (
	"math"

	"github.com/mkarlik/go-smallray/pkg/core"
)

// AreaLight represents a triangular area light
type AreaLight struct {
	P0        core.Vec3 // Anchor vertex
	E1, E2    core.Vec3 // Edge vectors from the anchor
	Intensity core.Vec3 // Emitted radiance
	normal    core.Vec3
	invArea   float64
}

// NewAreaLight creates an area light over the triangle (p0, p1, p2)
func NewAreaLight(p0, p1, p2 core.Vec3, intensity core.Vec3) *AreaLight {
	e1 := p1.Subtract(p0)
	e2 := p2.Subtract(p0)

	cross := e1.Cross(e2)
	area := cross.Length() * 0.5

	return &AreaLight{
		P0:        p0,
		E1:        e1,
		E2:        e2,
		Intensity: intensity,
		normal:    cross.Normalize(),
		invArea:   1.0 / area,
	}
}

func (al *AreaLight) Type() LightType {
	return LightTypeArea
}

// Illuminate implements the Light interface - samples a point on the triangle
// uniformly by area and converts the area PDF to a solid-angle PDF
func (al *AreaLight) Illuminate(receivePos core.Vec3, sample core.Vec2) (IlluminateSample, bool) {
	u, v := core.SampleUniformTriangle(sample)
	samplePoint := al.P0.Add(al.E1.Multiply(u)).Add(al.E2.Multiply(v))

	toLight := samplePoint.Subtract(receivePos)
	distSqr := toLight.LengthSquared()
	distance := math.Sqrt(distSqr)
	direction := toLight.Multiply(1.0 / distance)

	// Cosine at the light; emission only leaves the front face
	cosTheta := al.normal.Dot(direction.Negate())
	if cosTheta < 1e-8 {
		return IlluminateSample{}, false
	}

	// PDF_solid_angle = PDF_area * distance² / cos(θ)
	return IlluminateSample{
		Direction: direction,
		Distance:  distance,
		Radiance:  al.Intensity,
		PDF:       al.invArea * distSqr / cosTheta,
	}, true
}

// GetRadiance implements the Light interface - front face emission only
func (al *AreaLight) GetRadiance(rayDir core.Vec3) core.Vec3 {
	if al.normal.Dot(rayDir) < 0 {
		return al.Intensity
	}
	return core.Vec3{}
}

func (al *AreaLight) IsFinite() bool { return true }

func (al *AreaLight) IsDelta() bool { return false }
