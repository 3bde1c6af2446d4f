package scene

import (
	"math"

	"github.com/mkarlik/go-smallray/pkg/core"
	"github.com/mkarlik/go-smallray/pkg/geometry"
	"github.com/mkarlik/go-smallray/pkg/lights"
	"github.com/mkarlik/go-smallray/pkg/material"
	"github.com/mkarlik/go-smallray/pkg/renderer"
)

// AccelKind selects the geometry aggregate backing a loaded scene
type AccelKind string

const (
	AccelList AccelKind = "list"
	AccelBVH  AccelKind = "bvh"
)

// CornellOptions selects the contents of the Cornell box demo scene with
// named options instead of a bitmask. Exactly one of the two large spheres
// may be present; when both are requested the mirror one wins and a notice
// is logged.
type CornellOptions struct {
	Accel AccelKind

	CeilingLight    bool
	SunLight        bool
	PointLight      bool
	BackgroundLight bool

	LargeMirrorSphere bool
	LargeGlassSphere  bool
	SmallMirrorSphere bool
	SmallGlassSphere  bool
}

// DefaultCornellOptions returns the classic setup: ceiling area lights plus
// the two small spheres
func DefaultCornellOptions() CornellOptions {
	return CornellOptions{
		Accel:             AccelList,
		CeilingLight:      true,
		SmallMirrorSphere: true,
		SmallGlassSphere:  true,
	}
}

// resolve applies the documented precedence rule for conflicting options
func (o *CornellOptions) resolve(logger core.Logger) {
	if o.LargeMirrorSphere && o.LargeGlassSphere {
		if logger != nil {
			logger.Printf("Cannot have both large spheres, using mirror")
		}
		o.LargeGlassSphere = false
	}
	if o.Accel == "" {
		o.Accel = AccelList
	}
}

// NewCornellScene builds the Cornell box demo scene and the matching camera
// placement. The caller still owns the BuildSceneSphere call once it is done
// mutating the scene.
func NewCornellScene(opts CornellOptions, logger core.Logger) (*Scene, renderer.CameraConfig, error) {
	opts.resolve(logger)

	camera := renderer.CameraConfig{
		Center:  core.NewVec3(-0.0439815, -4.12529, 0.222539),
		Forward: core.NewVec3(0.00688625, 0.998505, -0.0542161),
		Up:      core.NewVec3(3.73896e-4, 0.0542148, 0.998529),
		VFov:    45.0,
	}

	s := New()

	// Materials. The first two only emit, their reflectance stays zero.
	matLight1 := s.AddMaterial(material.New())
	matLight2 := s.AddMaterial(material.New())

	glossyWhite := material.New()
	glossyWhite.DiffuseReflectance = core.NewVec3(0.3, 0.3, 0.3)
	glossyWhite.PhongReflectance = core.NewVec3(0.4, 0.4, 0.4)
	glossyWhite.Glossiness = 10.0
	s.AddMaterial(glossyWhite)

	diffuseGreen := material.New()
	diffuseGreen.DiffuseReflectance = core.NewVec3(0.156863, 0.803922, 0.172549)
	matGreen := s.AddMaterial(diffuseGreen)

	diffuseRed := material.New()
	diffuseRed.DiffuseReflectance = core.NewVec3(0.803922, 0.152941, 0.152941)
	matRed := s.AddMaterial(diffuseRed)

	diffuseWhite := material.New()
	diffuseWhite.DiffuseReflectance = core.NewVec3(0.803922, 0.803922, 0.803922)
	matWhite := s.AddMaterial(diffuseWhite)

	mirror := material.New()
	mirror.MirrorReflectance = core.NewVec3(1, 1, 1)
	matMirror := s.AddMaterial(mirror)

	glass := material.New()
	glass.MirrorReflectance = core.NewVec3(1, 1, 1)
	glass.IOR = 1.6
	matGlass := s.AddMaterial(glass)

	// Box corners
	p := [8]core.Vec3{
		core.NewVec3(-1.27029, 1.30455, -1.28002),
		core.NewVec3(1.28975, 1.30455, -1.28002),
		core.NewVec3(1.28975, 1.30455, 1.28002),
		core.NewVec3(-1.27029, 1.30455, 1.28002),
		core.NewVec3(-1.27029, -1.25549, -1.28002),
		core.NewVec3(1.28975, -1.25549, -1.28002),
		core.NewVec3(1.28975, -1.25549, 1.28002),
		core.NewVec3(-1.27029, -1.25549, 1.28002),
	}

	var primitives []geometry.Geometry

	// Floor
	primitives = append(primitives,
		geometry.NewTriangle(p[0], p[4], p[5], matWhite),
		geometry.NewTriangle(p[5], p[1], p[0], matWhite))

	// Back wall
	primitives = append(primitives,
		geometry.NewTriangle(p[0], p[1], p[2], matWhite),
		geometry.NewTriangle(p[2], p[3], p[0], matWhite))

	// Ceiling, split between the two light materials when lit
	ceilMat1, ceilMat2 := matWhite, matWhite
	if opts.CeilingLight {
		ceilMat1, ceilMat2 = matLight1, matLight2
	}
	primitives = append(primitives,
		geometry.NewTriangle(p[2], p[6], p[7], ceilMat1),
		geometry.NewTriangle(p[7], p[3], p[2], ceilMat2))

	// Left wall
	primitives = append(primitives,
		geometry.NewTriangle(p[3], p[7], p[4], matGreen),
		geometry.NewTriangle(p[4], p[0], p[3], matGreen))

	// Right wall
	primitives = append(primitives,
		geometry.NewTriangle(p[1], p[5], p[6], matRed),
		geometry.NewTriangle(p[6], p[2], p[1], matRed))

	// Central large sphere
	largeRadius := 0.8
	center := p[0].Add(p[1]).Add(p[4]).Add(p[5]).Multiply(0.25).Add(core.NewVec3(0, 0, largeRadius))
	if opts.LargeMirrorSphere {
		primitives = append(primitives, geometry.NewSphere(center, largeRadius, matMirror))
	}
	if opts.LargeGlassSphere {
		primitives = append(primitives, geometry.NewSphere(center, largeRadius, matGlass))
	}

	// Small spheres near the side walls
	smallRadius := 0.5
	leftWallCenter := p[0].Add(p[4]).Multiply(0.5).Add(core.NewVec3(0, 0, smallRadius))
	rightWallCenter := p[1].Add(p[5]).Multiply(0.5).Add(core.NewVec3(0, 0, smallRadius))
	xlen := rightWallCenter.X - leftWallCenter.X
	leftBallCenter := leftWallCenter.Add(core.NewVec3(2.0*xlen/7.0, 0, 0))
	rightBallCenter := rightWallCenter.Subtract(core.NewVec3(2.0*xlen/7.0, 0, 0))
	if opts.SmallMirrorSphere {
		primitives = append(primitives, geometry.NewSphere(leftBallCenter, smallRadius, matMirror))
	}
	if opts.SmallGlassSphere {
		primitives = append(primitives, geometry.NewSphere(rightBallCenter, smallRadius, matGlass))
	}

	switch opts.Accel {
	case AccelBVH:
		s.SetGeometry(geometry.NewBVH(primitives))
	default:
		s.SetGeometry(geometry.NewList(primitives...))
	}

	// Lights
	if opts.CeilingLight {
		intensity := core.NewVec3(0.95492965, 0.95492965, 0.95492965)

		light1 := s.AddLight(lights.NewAreaLight(p[2], p[6], p[7], intensity))
		if err := s.RegisterEmitter(matLight1, light1); err != nil {
			return nil, renderer.CameraConfig{}, err
		}

		light2 := s.AddLight(lights.NewAreaLight(p[7], p[3], p[2], intensity))
		if err := s.RegisterEmitter(matLight2, light2); err != nil {
			return nil, renderer.CameraConfig{}, err
		}
	}

	if opts.SunLight {
		s.AddLight(lights.NewDirectionalLight(
			core.NewVec3(-1, 1, -1),
			core.NewVec3(0.5, 0.2, 0).Multiply(1.5)))
	}

	if opts.PointLight {
		s.AddLight(lights.NewPointLight(
			core.NewVec3(0.0, -0.5, 1.0),
			core.NewVec3(70, 70, 70).Multiply(1.0/(4.0*math.Pi))))
	}

	if opts.BackgroundLight {
		if _, err := s.AddBackgroundLight(lights.NewBackgroundLight(1.0)); err != nil {
			return nil, renderer.CameraConfig{}, err
		}
	}

	return s, camera, nil
}
