package geometry

import (
	"math"
	"testing"

	"github.com/mkarlik/go-smallray/pkg/core"
)

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 2)

	tests := []struct {
		name         string
		ray          core.Ray
		shouldHit    bool
		expectedDist float64
	}{
		{
			name:         "Ray through center",
			ray:          core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0),
			shouldHit:    true,
			expectedDist: 4.0,
		},
		{
			name:         "Grazing ray",
			ray:          core.NewRay(core.NewVec3(1, 0, -5), core.NewVec3(0, 0, 1), 0),
			shouldHit:    true,
			expectedDist: 5.0,
		},
		{
			name:      "Ray missing sphere",
			ray:       core.NewRay(core.NewVec3(2, 0, -5), core.NewVec3(0, 0, 1), 0),
			shouldHit: false,
		},
		{
			name:      "Sphere behind ray",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1), 0),
			shouldHit: false,
		},
		{
			name:         "Ray starting inside hits far side",
			ray:          core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0),
			shouldHit:    true,
			expectedDist: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isect := core.NewIsect()
			hit := sphere.Intersect(tt.ray, &isect)

			if hit != tt.shouldHit {
				t.Errorf("Expected hit=%v, got hit=%v", tt.shouldHit, hit)
				return
			}

			if tt.shouldHit {
				if math.Abs(isect.Dist-tt.expectedDist) > 1e-9 {
					t.Errorf("Expected dist=%f, got dist=%f", tt.expectedDist, isect.Dist)
				}
				if isect.MatID != 2 {
					t.Errorf("Expected matID=2, got %d", isect.MatID)
				}

				// Normal points from center to hit point with unit length
				hitPoint := tt.ray.At(isect.Dist)
				expectedNormal := hitPoint.Subtract(sphere.Center).Normalize()
				if isect.Normal.Subtract(expectedNormal).Length() > 1e-9 {
					t.Errorf("Expected normal %v, got %v", expectedNormal, isect.Normal)
				}
			}
		})
	}
}

func TestSphere_IntersectP(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0)

	if !sphere.IntersectP(ray, 10.0) {
		t.Error("Expected any-hit within bound")
	}
	if sphere.IntersectP(ray, 3.0) {
		t.Error("Expected no hit before entry point")
	}
}

func TestSphere_GrowBBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, 0)

	boxMin := core.NewVec3(core.MaxDist, core.MaxDist, core.MaxDist)
	boxMax := core.NewVec3(-core.MaxDist, -core.MaxDist, -core.MaxDist)
	sphere.GrowBBox(&boxMin, &boxMax)

	if boxMin != core.NewVec3(0.5, 1.5, 2.5) {
		t.Errorf("Unexpected min %v", boxMin)
	}
	if boxMax != core.NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Unexpected max %v", boxMax)
	}
}
