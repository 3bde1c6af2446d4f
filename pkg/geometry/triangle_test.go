package geometry

import (
	"math"
	"testing"

	"github.com/mkarlik/go-smallray/pkg/core"
)

func TestTriangle_Intersect(t *testing.T) {
	// Triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, 3)

	tests := []struct {
		name         string
		ray          core.Ray
		shouldHit    bool
		expectedDist float64
	}{
		{
			name:         "Ray hits triangle center",
			ray:          core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1), 0),
			shouldHit:    true,
			expectedDist: 1.0,
		},
		{
			name:         "Ray hits triangle edge",
			ray:          core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1), 0),
			shouldHit:    true,
			expectedDist: 1.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1), 0),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 0), core.NewVec3(1, 0, 0), 0),
			shouldHit: false,
		},
		{
			name:         "Ray hits from behind",
			ray:          core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1), 0),
			shouldHit:    true,
			expectedDist: 1.0,
		},
		{
			name:      "Hit before tMin is rejected",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1), 2.0),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isect := core.NewIsect()
			hit := triangle.Intersect(tt.ray, &isect)

			if hit != tt.shouldHit {
				t.Errorf("Expected hit=%v, got hit=%v", tt.shouldHit, hit)
				return
			}

			if tt.shouldHit {
				if math.Abs(isect.Dist-tt.expectedDist) > 1e-9 {
					t.Errorf("Expected dist=%f, got dist=%f", tt.expectedDist, isect.Dist)
				}
				if isect.MatID != 3 {
					t.Errorf("Expected matID=3, got %d", isect.MatID)
				}
			}
		})
	}
}

func TestTriangle_IntersectRespectsBound(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 0)
	ray := core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1), 0)

	// A closer hit is already recorded: the triangle at dist 1 must not replace it
	isect := core.NewIsect()
	isect.Dist = 0.5
	isect.MatID = 7
	if triangle.Intersect(ray, &isect) {
		t.Error("Expected no hit beyond the current closest distance")
	}
	if isect.MatID != 7 {
		t.Errorf("Expected isect to stay untouched, got matID=%d", isect.MatID)
	}
}

func TestTriangle_IntersectP(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 0)
	ray := core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1), 0)

	if !triangle.IntersectP(ray, 2.0) {
		t.Error("Expected any-hit within bound")
	}
	if triangle.IntersectP(ray, 0.5) {
		t.Error("Expected no hit beyond bound")
	}
}

func TestTriangle_GrowBBox(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(-1, 2, 0), core.NewVec3(3, 0, -2), core.NewVec3(0, 5, 1), 0)

	boxMin := core.NewVec3(core.MaxDist, core.MaxDist, core.MaxDist)
	boxMax := core.NewVec3(-core.MaxDist, -core.MaxDist, -core.MaxDist)
	triangle.GrowBBox(&boxMin, &boxMax)

	if boxMin != core.NewVec3(-1, 0, -2) {
		t.Errorf("Unexpected min %v", boxMin)
	}
	if boxMax != core.NewVec3(3, 5, 1) {
		t.Errorf("Unexpected max %v", boxMax)
	}
}

func TestTriangle_Normal(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 0)
	expected := core.NewVec3(0, 0, 1)
	if triangle.Normal().Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected normal %v, got %v", expected, triangle.Normal())
	}
}
