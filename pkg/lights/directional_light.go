package lights

import "github.com/mkarlik/go-smallray/pkg/core"

// DirectionalLight represents a light infinitely far away shining along a
// fixed direction, like sunlight
type DirectionalLight struct {
	Direction core.Vec3 // Direction the light travels, normalized
	Intensity core.Vec3
}

// NewDirectionalLight creates a new directional light traveling along direction
func NewDirectionalLight(direction, intensity core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Intensity: intensity,
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Illuminate implements the Light interface. The light sits at infinity, so
// the occlusion distance is unbounded.
func (dl *DirectionalLight) Illuminate(receivePos core.Vec3, sample core.Vec2) (IlluminateSample, bool) {
	return IlluminateSample{
		Direction: dl.Direction.Negate(),
		Distance:  core.MaxDist,
		Radiance:  dl.Intensity,
		PDF:       1.0,
	}, true
}

// GetRadiance implements the Light interface - a delta light is never hit by a ray
func (dl *DirectionalLight) GetRadiance(rayDir core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (dl *DirectionalLight) IsFinite() bool { return false }

func (dl *DirectionalLight) IsDelta() bool { return true }
