package lights

import (
	"math"

	"github.com/mkarlik/go-smallray/pkg/core"
)

// BackgroundLight represents a constant environment light surrounding the
// whole scene. It needs the scene's bounding sphere to place samples outside
// all geometry, which the scene supplies through Preprocess after
// BuildSceneSphere.
type BackgroundLight struct {
	Color core.Vec3
	Scale float64

	sceneCenter core.Vec3
	sceneRadius float64
}

// Default sky tint, light blue
var defaultBackgroundColor = core.NewVec3(135, 206, 250).Multiply(1.0 / 255.0)

// NewBackgroundLight creates a background light with the default sky color
func NewBackgroundLight(scale float64) *BackgroundLight {
	return &BackgroundLight{
		Color: defaultBackgroundColor,
		Scale: scale,
	}
}

func (bl *BackgroundLight) Type() LightType {
	return LightTypeBackground
}

// Preprocess implements the Preprocessor interface, recording the scene sphere
func (bl *BackgroundLight) Preprocess(sceneCenter core.Vec3, sceneRadius float64) {
	bl.sceneCenter = sceneCenter
	bl.sceneRadius = sceneRadius
}

// Illuminate implements the Light interface - samples a uniform direction over
// the sphere of directions, with the sample pushed past the scene bounds
func (bl *BackgroundLight) Illuminate(receivePos core.Vec3, sample core.Vec2) (IlluminateSample, bool) {
	direction := core.SampleUniformSphere(sample)

	// Far enough to clear any geometry once the scene sphere is known
	distance := core.MaxDist
	if bl.sceneRadius > 0 {
		distance = 2.0 * bl.sceneRadius
	}

	return IlluminateSample{
		Direction: direction,
		Distance:  distance,
		Radiance:  bl.Color.Multiply(bl.Scale),
		PDF:       1.0 / (4.0 * math.Pi),
	}, true
}

// GetRadiance implements the Light interface - constant emission in every direction
func (bl *BackgroundLight) GetRadiance(rayDir core.Vec3) core.Vec3 {
	return bl.Color.Multiply(bl.Scale)
}

func (bl *BackgroundLight) IsFinite() bool { return false }

func (bl *BackgroundLight) IsDelta() bool { return false }
