package scene

import (
	"math/rand"

	"github.com/softsun/go-pathtracer/pkg/core"
	"github.com/softsun/go-pathtracer/pkg/geometry"
	"github.com/softsun/go-pathtracer/pkg/material"
	"github.com/softsun/go-pathtracer/pkg/renderer"
	"github.com/softsun/go-pathtracer/pkg/texture"
)

// skyGradient is the daylight background shared by the outdoor scenes
func skyGradient() core.Background {
	return renderer.GradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
}

// NewDefaultScene builds the classic random-sphere field: a checkered
// ground, a grid of small spheres with mixed materials and three large
// feature spheres, seen through a slightly defocused lens
func NewDefaultScene() *Scene {
	random := rand.New(rand.NewSource(7))
	var world geometry.HittableList

	checker := texture.NewChecker(3.0, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world = append(world, NewGroundSphere(material.NewTexturedLambertian(checker)))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(0, 1, random).MultiplyVec(core.RandomVec3(0, 1, random))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3(0.5, 1, random)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			world = append(world, geometry.NewSphere(center, 0.2, mat))
		}
	}

	world = append(world,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			ImageWidth:    400,
			AspectRatio:   16.0 / 9.0,
			VFov:          20,
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			DefocusAngle:  0.2,
			FocusDistance: 10.0,
		},
		Background: skyGradient(),
	}
}

// NewCheckeredSpheresScene builds two large checkered spheres facing each other
func NewCheckeredSpheresScene() *Scene {
	checker := texture.NewChecker(3.0, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	world := geometry.HittableList{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedLambertian(checker)),
	}

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			ImageWidth:  400,
			AspectRatio: 16.0 / 9.0,
			VFov:        20,
			LookFrom:    core.NewVec3(13, 2, 3),
			LookAt:      core.NewVec3(0, 0, 0),
			VUp:         core.NewVec3(0, 1, 0),
		},
		Background: skyGradient(),
	}
}

// NewEarthScene builds a single sphere wrapped in an earth image texture
func NewEarthScene(logger core.Logger) *Scene {
	earth := texture.NewImageFromFile("earthmap.jpg", logger)

	world := geometry.HittableList{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earth)),
	}

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			ImageWidth:  400,
			AspectRatio: 16.0 / 9.0,
			VFov:        20,
			LookFrom:    core.NewVec3(0, 0, 12),
			LookAt:      core.NewVec3(0, 0, 0),
			VUp:         core.NewVec3(0, 1, 0),
		},
		Background: skyGradient(),
	}
}
