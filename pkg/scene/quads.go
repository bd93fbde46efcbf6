package scene

import (
	"github.com/softsun/go-pathtracer/pkg/core"
	"github.com/softsun/go-pathtracer/pkg/geometry"
	"github.com/softsun/go-pathtracer/pkg/material"
	"github.com/softsun/go-pathtracer/pkg/renderer"
)

// NewQuadsScene builds five colored quads boxing in the viewport
func NewQuadsScene() *Scene {
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.HittableList{
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	}

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			ImageWidth:    400,
			AspectRatio:   1.0,
			VFov:          80,
			LookFrom:      core.NewVec3(0, 0, 9),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 1.0,
		},
		Background: skyGradient(),
	}
}

// NewSimpleLightsScene builds two diffuse spheres lit only by an emissive
// sphere and quad against a black background
func NewSimpleLightsScene() *Scene {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.HittableList{
		NewGroundSphere(gray),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, gray),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	}

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			ImageWidth:  400,
			AspectRatio: 16.0 / 9.0,
			VFov:        20,
			LookFrom:    core.NewVec3(26, 3, 6),
			LookAt:      core.NewVec3(0, 2, 0),
			VUp:         core.NewVec3(0, 1, 0),
		},
		Background: renderer.BlackBackground(),
	}
}
