package renderer

import (
	"math"

	"github.com/mkarlik/go-smallray/pkg/core"
)

// CameraConfig describes a perspective camera placement
type CameraConfig struct {
	Center  core.Vec3 // Camera position
	Forward core.Vec3 // Viewing direction
	Up      core.Vec3 // Up direction
	VFov    float64   // Vertical field of view in degrees
}

// Camera generates primary rays for raster coordinates
type Camera struct {
	origin  core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	width   float64
	height  float64
	tanHalf float64
	aspect  float64
}

// NewCamera creates a camera for the given raster resolution
func NewCamera(config CameraConfig, width, height int) *Camera {
	forward := config.Forward.Normalize()
	right := forward.Cross(config.Up).Normalize()
	up := right.Cross(forward)

	return &Camera{
		origin:  config.Center,
		forward: forward,
		right:   right,
		up:      up,
		width:   float64(width),
		height:  float64(height),
		tanHalf: math.Tan(config.VFov * 0.5 * math.Pi / 180.0),
		aspect:  float64(width) / float64(height),
	}
}

// GenerateRay creates a primary ray through raster position (x, y).
// Callers pass fractional coordinates for sub-pixel jitter.
func (c *Camera) GenerateRay(x, y float64) core.Ray {
	ndcX := (2.0*x/c.width - 1.0) * c.tanHalf * c.aspect
	ndcY := (1.0 - 2.0*y/c.height) * c.tanHalf

	direction := c.forward.
		Add(c.right.Multiply(ndcX)).
		Add(c.up.Multiply(ndcY)).
		Normalize()

	return core.NewRay(c.origin, direction, 0)
}
