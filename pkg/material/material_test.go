package material

import (
	"testing"

	"github.com/mkarlik/go-smallray/pkg/core"
)

func TestNew(t *testing.T) {
	m := New()

	if m.DiffuseReflectance != (core.Vec3{}) || m.PhongReflectance != (core.Vec3{}) ||
		m.MirrorReflectance != (core.Vec3{}) {
		t.Errorf("Expected zero reflectance, got %+v", m)
	}
	if m.Glossiness != 0 {
		t.Errorf("Expected zero glossiness, got %f", m.Glossiness)
	}
	if m.IOR >= 0 {
		t.Errorf("Expected negative IOR for non-refractive default, got %f", m.IOR)
	}
}

func TestReset(t *testing.T) {
	m := New()
	m.DiffuseReflectance = core.NewVec3(0.5, 0.5, 0.5)
	m.IOR = 1.5
	m.Glossiness = 90

	m.Reset()

	if m != New() {
		t.Errorf("Expected reset to restore defaults, got %+v", m)
	}
}
