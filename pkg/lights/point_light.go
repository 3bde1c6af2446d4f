package lights

import "github.com/mkarlik/go-smallray/pkg/core"

// PointLight represents an isotropic point light
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Illuminate implements the Light interface with inverse-square falloff
func (pl *PointLight) Illuminate(receivePos core.Vec3, sample core.Vec2) (IlluminateSample, bool) {
	toLight := pl.Position.Subtract(receivePos)
	distSqr := toLight.LengthSquared()
	if distSqr == 0 {
		return IlluminateSample{}, false
	}
	distance := toLight.Length()

	return IlluminateSample{
		Direction: toLight.Multiply(1.0 / distance),
		Distance:  distance,
		Radiance:  pl.Intensity.Multiply(1.0 / distSqr),
		PDF:       1.0,
	}, true
}

// GetRadiance implements the Light interface - a delta light is never hit by a ray
func (pl *PointLight) GetRadiance(rayDir core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (pl *PointLight) IsFinite() bool { return true }

func (pl *PointLight) IsDelta() bool { return true }
