package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/softsun/go-pathtracer/pkg/core"
	"github.com/softsun/go-pathtracer/pkg/material"
)

func testMaterial() core.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		wantHit   bool
		expectedT float64
	}{
		{
			name:      "Head-on hit from outside",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      math.Inf(1),
			wantHit:   true,
			expectedT: 4.0,
		},
		{
			name:    "Ray pointing away misses",
			ray:     core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1)),
			tMin:    0.001,
			tMax:    math.Inf(1),
			wantHit: false,
		},
		{
			name:    "Offset ray misses",
			ray:     core.NewRay(core.NewVec3(0, 2, -5), core.NewVec3(0, 0, 1)),
			tMin:    0.001,
			tMax:    math.Inf(1),
			wantHit: false,
		},
		{
			name:      "Origin inside takes the far root",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      math.Inf(1),
			wantHit:   true,
			expectedT: 1.0,
		},
		{
			name:    "Hit beyond tMax rejected",
			ray:     core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			tMin:    0.001,
			tMax:    3.0,
			wantHit: false,
		},
		{
			name:    "Both roots behind tMin rejected",
			ray:     core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)),
			tMin:    0.001,
			tMax:    math.Inf(1),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, tt.tMin, tt.tMax, testRand())

			if isHit != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v", tt.wantHit, isHit)
			}
			if !tt.wantHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_NormalOrientation(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	// From outside: normal faces the ray, front face
	outside := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, isHit := sphere.Hit(outside, 0.001, math.Inf(1), testRand())
	if !isHit {
		t.Fatal("Expected hit from outside")
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit from outside")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}

	// From inside: normal flips inward, back face
	inside := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	hit, isHit = sphere.Hit(inside, 0.001, math.Inf(1), testRand())
	if !isHit {
		t.Fatal("Expected hit from inside")
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected inward normal (0,0,-1), got %v", hit.Normal)
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name      string
		point     core.Vec3
		expectedU float64
		expectedV float64
	}{
		{"Positive x is the texture seam center", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"North pole", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"South pole", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"Negative z quarter", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.point)
			if math.Abs(u-tt.expectedU) > 1e-9 || math.Abs(v-tt.expectedV) > 1e-9 {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.expectedU, tt.expectedV, u, v)
			}
		})
	}
}

func TestSphere_HitPointOnSurface(t *testing.T) {
	sphere := NewSphere(core.NewVec3(2, 1, -3), 1.5, testMaterial())
	ray := core.NewRay(core.NewVec3(2, 1, 5), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), testRand())
	if !isHit {
		t.Fatal("Expected hit")
	}

	distance := hit.Point.Subtract(sphere.Center).Length()
	if math.Abs(distance-sphere.Radius) > 1e-9 {
		t.Errorf("Hit point %v is not on the sphere surface", hit.Point)
	}
}
