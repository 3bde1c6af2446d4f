// Package material holds the plain surface-material records consulted by the
// shading stage. Materials carry no behavior here; the scene stores them in a
// dense table and primitives reference them by index only.
package material

import "github.com/mkarlik/go-smallray/pkg/core"

// Material is a plain data record describing a surface. The field layout is
// a stable contract relied on by external shading code.
type Material struct {
	DiffuseReflectance core.Vec3
	PhongReflectance   core.Vec3
	MirrorReflectance  core.Vec3
	Glossiness         float64
	IOR                float64 // Index of refraction, negative when not refractive
}

// New returns a material with all reflectance terms zeroed and no refraction
func New() Material {
	return Material{IOR: -1}
}

// Reset restores the material to its default (non-reflective, non-refractive) state
func (m *Material) Reset() {
	*m = New()
}
