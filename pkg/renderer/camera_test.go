package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/softsun/go-pathtracer/pkg/core"
)

func TestCamera_ImageDimensions(t *testing.T) {
	tests := []struct {
		name           string
		width          int
		aspectRatio    float64
		expectedHeight int
	}{
		{"Square", 100, 1.0, 100},
		{"Widescreen", 400, 16.0 / 9.0, 225},
		{"Extreme ratio clamps height to 1", 4, 100.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(CameraConfig{
				ImageWidth:  tt.width,
				AspectRatio: tt.aspectRatio,
				VFov:        40,
				LookFrom:    core.NewVec3(0, 0, 0),
				LookAt:      core.NewVec3(0, 0, -1),
				VUp:         core.NewVec3(0, 1, 0),
			})

			if camera.ImageWidth() != tt.width {
				t.Errorf("Expected width %d, got %d", tt.width, camera.ImageWidth())
			}
			if camera.ImageHeight() != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, camera.ImageHeight())
			}
		})
	}
}

func TestCamera_RaysStartAtEyeWithoutDefocus(t *testing.T) {
	eye := core.NewVec3(1, 2, 3)
	camera := NewCamera(CameraConfig{
		ImageWidth:  10,
		AspectRatio: 1.0,
		VFov:        40,
		LookFrom:    eye,
		LookAt:      core.NewVec3(1, 2, 0),
		VUp:         core.NewVec3(0, 1, 0),
	})

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		ray := camera.GetRay(i%10, i/10, random)
		if ray.Origin != eye {
			t.Fatalf("Expected origin %v with the lens disabled, got %v", eye, ray.Origin)
		}
		if math.Abs(ray.Direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %v", ray.Direction.Length())
		}
	}
}

func TestCamera_RaysPointTowardTarget(t *testing.T) {
	camera := NewCamera(CameraConfig{
		ImageWidth:  10,
		AspectRatio: 1.0,
		VFov:        20,
		LookFrom:    core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
	})

	forward := core.NewVec3(0, 0, -1)
	random := rand.New(rand.NewSource(42))
	for j := 0; j < 10; j++ {
		for i := 0; i < 10; i++ {
			ray := camera.GetRay(i, j, random)
			// A 20 degree FOV keeps every ray within a narrow cone
			if ray.Direction.Dot(forward) < 0.9 {
				t.Fatalf("Ray (%d,%d) direction %v strays from the view direction", i, j, ray.Direction)
			}
		}
	}
}

func TestCamera_DefocusSamplesLensDisk(t *testing.T) {
	eye := core.NewVec3(0, 0, 5)
	camera := NewCamera(CameraConfig{
		ImageWidth:    10,
		AspectRatio:   1.0,
		VFov:          20,
		LookFrom:      eye,
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		DefocusAngle:  2.0,
		FocusDistance: 5.0,
	})

	random := rand.New(rand.NewSource(42))
	sawOffCenter := false
	maxRadius := 5.0 * math.Tan(1.0*math.Pi/180)
	for i := 0; i < 50; i++ {
		ray := camera.GetRay(5, 5, random)
		offset := ray.Origin.Subtract(eye)
		if offset.Length() > maxRadius+1e-9 {
			t.Fatalf("Lens sample %v outside the aperture radius %v", ray.Origin, maxRadius)
		}
		if offset.Length() > 1e-12 {
			sawOffCenter = true
		}
	}
	if !sawOffCenter {
		t.Error("Expected lens sampling to move ray origins off the eye point")
	}
}

func TestCamera_JitterStaysInsidePixel(t *testing.T) {
	camera := NewCamera(CameraConfig{
		ImageWidth:  4,
		AspectRatio: 1.0,
		VFov:        90,
		LookFrom:    core.NewVec3(0, 0, 1),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
	})

	// Jittered samples for neighboring pixels never swap order along x
	random := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		left := camera.GetRay(0, 2, random)
		right := camera.GetRay(2, 2, random)
		if left.Direction.X >= right.Direction.X {
			t.Fatalf("Pixel ordering violated: left %v, right %v", left.Direction, right.Direction)
		}
	}
}
