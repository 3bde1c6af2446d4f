// Package scene composes geometry, materials and lights into a single
// queryable structure and answers the two questions every traced ray asks:
// what does this ray hit first, and is this point occluded.
package scene

import (
	"fmt"
	"math"

	"github.com/mkarlik/go-smallray/pkg/core"
	"github.com/mkarlik/go-smallray/pkg/geometry"
	"github.com/mkarlik/go-smallray/pkg/lights"
	"github.com/mkarlik/go-smallray/pkg/material"
)

// EpsRay is the epsilon offset used to nudge occlusion rays away from the
// surfaces at both endpoints, avoiding false self-intersection caused by
// floating-point distance error.
const EpsRay = 1e-3

// SceneSphere is a bounding sphere summarizing the scene's spatial extent.
// Derived state: rebuilt only by BuildSceneSphere, never kept in sync with
// geometry changes automatically.
type SceneSphere struct {
	Center       core.Vec3
	Radius       float64
	InvRadiusSqr float64
}

// Scene owns the geometry aggregate, the material table, the light collection
// and the material-to-light index. All query methods are read-only and safe to
// call concurrently once construction and BuildSceneSphere have completed.
type Scene struct {
	geometry       geometry.Geometry // nil until SetGeometry, meaning "no geometry yet"
	materials      []material.Material
	lights         []lights.Light
	material2Light map[int]int
	background     int // index into lights, -1 when no background light is registered
	sphere         SceneSphere
}

// New creates an empty scene with no geometry and no background light
func New() *Scene {
	return &Scene{
		material2Light: make(map[int]int),
		background:     -1,
	}
}

// SetGeometry installs the geometry aggregate. The scene takes ownership;
// callers must rebuild the scene sphere afterwards.
func (s *Scene) SetGeometry(g geometry.Geometry) {
	s.geometry = g
}

// AddMaterial appends a material to the table and returns its id
func (s *Scene) AddMaterial(m material.Material) int {
	s.materials = append(s.materials, m)
	return len(s.materials) - 1
}

// AddLight appends a light to the collection and returns its id
func (s *Scene) AddLight(l lights.Light) int {
	s.lights = append(s.lights, l)
	return len(s.lights) - 1
}

// AddBackgroundLight appends the distinguished background light and records
// its index. At most one background light may be registered; the collection
// stays the single owner, the background reference is just an index.
func (s *Scene) AddBackgroundLight(l *lights.BackgroundLight) (int, error) {
	if s.background >= 0 {
		return -1, fmt.Errorf("background light already registered at index %d", s.background)
	}
	s.background = s.AddLight(l)
	return s.background, nil
}

// RegisterEmitter maps a material id to a light id so that Intersect can
// annotate hits on emissive surfaces. The light id must reference an already
// added light.
func (s *Scene) RegisterEmitter(matID, lightID int) error {
	if lightID < 0 || lightID >= len(s.lights) {
		return fmt.Errorf("emitter material %d references invalid light id %d (have %d lights)",
			matID, lightID, len(s.lights))
	}
	s.material2Light[matID] = lightID
	return nil
}

// Intersect performs a closest-hit query against the scene. On a hit, the
// result's LightID is the light associated with the hit material, or -1 when
// the surface is not a registered emitter. A scene with no geometry never
// hits.
func (s *Scene) Intersect(ray core.Ray) (core.Isect, bool) {
	isect := core.NewIsect()
	if s.geometry == nil {
		return isect, false
	}

	hit := s.geometry.Intersect(ray, &isect)
	if hit {
		isect.LightID = -1
		if lightID, ok := s.material2Light[isect.MatID]; ok {
			isect.LightID = lightID
		}
	}
	return isect, hit
}

// Occluded reports whether anything blocks the path from aPoint along aDir
// strictly before aTMax. The ray origin is pushed EpsRay along the direction
// and the far bound is shrunk by another EpsRay, so neither the surface the
// point lies on nor a light exactly at aTMax registers as a blocker.
func (s *Scene) Occluded(aPoint, aDir core.Vec3, aTMax float64) bool {
	if s.geometry == nil {
		return false
	}

	ray := core.NewRay(aPoint.Add(aDir.Multiply(EpsRay)), aDir, 0)
	return s.geometry.IntersectP(ray, aTMax-2*EpsRay)
}

// GetMaterial returns the material record for a valid id. Out-of-range ids
// are a caller contract violation, no bounds check is performed.
func (s *Scene) GetMaterial(matID int) *material.Material {
	return &s.materials[matID]
}

// GetMaterialCount returns the number of materials in the table
func (s *Scene) GetMaterialCount() int {
	return len(s.materials)
}

// GetLight returns the light for the given id, clamped to [0, count-1].
// The clamp is deliberate: light-selection code derives indices from
// floating-point PDFs and may land slightly out of range. The collection
// must be non-empty; calling this on a scene with no lights is a caller
// contract violation, like an invalid GetMaterial id.
func (s *Scene) GetLight(lightID int) lights.Light {
	if lightID >= len(s.lights) {
		lightID = len(s.lights) - 1
	}
	if lightID < 0 {
		lightID = 0
	}
	return s.lights[lightID]
}

// GetLightCount returns the number of lights in the collection
func (s *Scene) GetLightCount() int {
	return len(s.lights)
}

// GetBackgroundLight returns the distinguished background light,
// or nil when none was registered
func (s *Scene) GetBackgroundLight() *lights.BackgroundLight {
	if s.background < 0 {
		return nil
	}
	return s.lights[s.background].(*lights.BackgroundLight)
}

// GetSceneSphere returns the bounding sphere computed by the last
// BuildSceneSphere call
func (s *Scene) GetSceneSphere() SceneSphere {
	return s.sphere
}

// BuildSceneSphere derives the scene's bounding sphere from the geometry's
// bounding box: center at the box midpoint, radius half the box diagonal.
// Must be called again after any geometry change; lights implementing the
// Preprocessor interface are handed the new sphere. Degenerate scenes
// (no geometry, or a single point) yield a zero sphere with InvRadiusSqr 0
// rather than dividing by zero.
func (s *Scene) BuildSceneSphere() {
	s.sphere = SceneSphere{}
	if s.geometry == nil {
		return
	}

	boxMin := core.NewVec3(core.MaxDist, core.MaxDist, core.MaxDist)
	boxMax := core.NewVec3(-core.MaxDist, -core.MaxDist, -core.MaxDist)
	s.geometry.GrowBBox(&boxMin, &boxMax)

	// An empty aggregate never grows the bound
	if boxMin.X > boxMax.X || boxMin.Y > boxMax.Y || boxMin.Z > boxMax.Z {
		return
	}

	radius := math.Sqrt(boxMax.Subtract(boxMin).LengthSquared()) * 0.5
	s.sphere.Center = boxMax.Add(boxMin).Multiply(0.5)
	s.sphere.Radius = radius
	if radius > 0 {
		s.sphere.InvRadiusSqr = 1.0 / (radius * radius)
	}

	for _, l := range s.lights {
		if preprocessor, ok := l.(lights.Preprocessor); ok {
			preprocessor.Preprocess(s.sphere.Center, s.sphere.Radius)
		}
	}
}
