package geometry

import (
	"math"
	"testing"

	"github.com/softsun/go-pathtracer/pkg/core"
)

func TestBox_Hit(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial())

	tests := []struct {
		name           string
		ray            core.Ray
		wantHit        bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "Hit front face",
			ray:            core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1)),
			wantHit:        true,
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "Hit top face",
			ray:            core.NewRay(core.NewVec3(0.5, 5, 0.5), core.NewVec3(0, -1, 0)),
			wantHit:        true,
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:    "Ray beside the box misses",
			ray:     core.NewRay(core.NewVec3(3, 0.5, 5), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, 0.001, math.Inf(1), testRand())

			if isHit != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v", tt.wantHit, isHit)
			}
			if !tt.wantHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestBox_CornerOrderIrrelevant(t *testing.T) {
	// The corners may be given in any order
	a := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial())
	b := NewBox(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), testMaterial())

	ray := core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1))

	hitA, okA := a.Hit(ray, 0.001, math.Inf(1), testRand())
	hitB, okB := b.Hit(ray, 0.001, math.Inf(1), testRand())
	if !okA || !okB {
		t.Fatal("Expected both boxes to be hit")
	}
	if math.Abs(hitA.T-hitB.T) > 1e-9 {
		t.Errorf("Expected identical hits, got t=%v and t=%v", hitA.T, hitB.T)
	}
}

func TestBox_InsideHitsNearestWall(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2), testMaterial())

	// From the center the nearest wall along +x is at x=2
	ray := core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0))
	hit, isHit := box.Hit(ray, 0.001, math.Inf(1), testRand())
	if !isHit {
		t.Fatal("Expected hit from inside")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got %v", hit.T)
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside the box")
	}
}
