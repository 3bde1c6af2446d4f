package lights

import (
	"math"
	"testing"

	"github.com/mkarlik/go-smallray/pkg/core"
)

func TestAreaLight_Illuminate(t *testing.T) {
	// Triangle in the XY plane with normal +Z
	light := NewAreaLight(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(-1, 1, 0),
		core.NewVec3(2, 2, 2))

	// Receiver above the light sees the front face
	sample, ok := light.Illuminate(core.NewVec3(0, 0, 3), core.NewVec2(0.3, 0.4))
	if !ok {
		t.Fatal("Expected front-face sample to succeed")
	}
	if sample.PDF <= 0 {
		t.Errorf("Expected positive PDF, got %f", sample.PDF)
	}
	if sample.Direction.Z >= 0 {
		t.Errorf("Expected direction toward the light (-Z), got %v", sample.Direction)
	}
	if math.Abs(sample.Direction.Length()-1.0) > 1e-9 {
		t.Errorf("Expected normalized direction, got length %f", sample.Direction.Length())
	}
	if sample.Radiance != core.NewVec3(2, 2, 2) {
		t.Errorf("Expected light intensity, got %v", sample.Radiance)
	}

	// Receiver below the light sees the back face
	if _, ok := light.Illuminate(core.NewVec3(0, 0, -3), core.NewVec2(0.3, 0.4)); ok {
		t.Error("Expected back-face sample to fail")
	}
}

func TestAreaLight_GetRadiance(t *testing.T) {
	intensity := core.NewVec3(5, 5, 5)
	light := NewAreaLight(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(-1, 1, 0),
		intensity)

	// Ray traveling -Z hits the front face (normal +Z)
	if got := light.GetRadiance(core.NewVec3(0, 0, -1)); got != intensity {
		t.Errorf("Expected front-face radiance %v, got %v", intensity, got)
	}
	if got := light.GetRadiance(core.NewVec3(0, 0, 1)); got != (core.Vec3{}) {
		t.Errorf("Expected zero back-face radiance, got %v", got)
	}
}

func TestPointLight_InverseSquareFalloff(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 0, 4), core.NewVec3(16, 16, 16))

	sample, ok := light.Illuminate(core.NewVec3(0, 0, 0), core.NewVec2(0.5, 0.5))
	if !ok {
		t.Fatal("Expected sample to succeed")
	}
	if math.Abs(sample.Distance-4.0) > 1e-9 {
		t.Errorf("Expected distance 4, got %f", sample.Distance)
	}
	// 16 / 4² = 1
	if math.Abs(sample.Radiance.X-1.0) > 1e-9 {
		t.Errorf("Expected radiance 1 after falloff, got %f", sample.Radiance.X)
	}
	if sample.PDF != 1.0 {
		t.Errorf("Expected delta PDF 1, got %f", sample.PDF)
	}
	if !light.IsDelta() || !light.IsFinite() {
		t.Error("Expected point light to be a finite delta light")
	}
}

func TestDirectionalLight_Illuminate(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(0, 0, -1), core.NewVec3(3, 2, 1))

	sample, ok := light.Illuminate(core.NewVec3(5, 5, 5), core.NewVec2(0.5, 0.5))
	if !ok {
		t.Fatal("Expected sample to succeed")
	}
	if sample.Direction.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected direction opposite to light travel, got %v", sample.Direction)
	}
	if sample.Distance != core.MaxDist {
		t.Errorf("Expected unbounded distance, got %f", sample.Distance)
	}
	if light.IsFinite() || !light.IsDelta() {
		t.Error("Expected directional light to be an infinite delta light")
	}
}

func TestBackgroundLight_Preprocess(t *testing.T) {
	light := NewBackgroundLight(2.0)

	// Without a scene sphere the sample distance falls back to the sentinel
	sample, ok := light.Illuminate(core.NewVec3(0, 0, 0), core.NewVec2(0.25, 0.75))
	if !ok {
		t.Fatal("Expected sample to succeed")
	}
	if sample.Distance != core.MaxDist {
		t.Errorf("Expected sentinel distance before preprocess, got %g", sample.Distance)
	}

	light.Preprocess(core.NewVec3(0, 0, 0), 10.0)
	sample, _ = light.Illuminate(core.NewVec3(0, 0, 0), core.NewVec2(0.25, 0.75))
	if math.Abs(sample.Distance-20.0) > 1e-9 {
		t.Errorf("Expected distance 2x scene radius, got %f", sample.Distance)
	}

	// Uniform sphere sampling PDF
	if math.Abs(sample.PDF-1.0/(4.0*math.Pi)) > 1e-12 {
		t.Errorf("Expected uniform sphere PDF, got %f", sample.PDF)
	}

	expected := light.Color.Multiply(2.0)
	if got := light.GetRadiance(core.NewVec3(0, 1, 0)); got != expected {
		t.Errorf("Expected scaled radiance %v, got %v", expected, got)
	}
}
