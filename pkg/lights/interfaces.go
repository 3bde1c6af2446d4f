package lights

import "github.com/mkarlik/go-smallray/pkg/core"

type LightType string

const (
	LightTypeArea        LightType = "area"
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
	LightTypeBackground  LightType = "background"
)

// Light interface for objects that can be sampled for direct lighting.
// The scene stores lights opaquely and hands them out by index; shading and
// integration consume them through this capability set.
type Light interface {
	Type() LightType

	// Illuminate samples the light as seen from a receiving point.
	// Returns false when the light cannot contribute from that point
	// (e.g. sampling the back face of an area light).
	Illuminate(receivePos core.Vec3, sample core.Vec2) (IlluminateSample, bool)

	// GetRadiance evaluates the radiance carried by a ray traveling in
	// rayDir that hits the light (area) or escapes the scene (background).
	// Delta lights return zero, they cannot be hit by chance.
	GetRadiance(rayDir core.Vec3) core.Vec3

	// IsFinite reports whether the light has a position inside the scene
	IsFinite() bool

	// IsDelta reports whether the light is a delta distribution
	// (point/directional), which cannot be sampled by area techniques
	IsDelta() bool
}

// IlluminateSample contains information about a sampled direction toward a light
type IlluminateSample struct {
	Direction core.Vec3 // Direction from receiving point to the light
	Distance  float64   // Distance to the light along Direction
	Radiance  core.Vec3 // Radiance arriving from the sample
	PDF       float64   // Probability density of this sample (1 for delta lights)
}

// Preprocessor is implemented by lights that need the scene's bounding sphere
// before they can be sampled (e.g. background lights). The scene invokes it
// whenever the scene sphere is rebuilt.
type Preprocessor interface {
	Preprocess(sceneCenter core.Vec3, sceneRadius float64)
}
