package scene

import (
	"math/rand"

	"github.com/softsun/go-pathtracer/pkg/core"
	"github.com/softsun/go-pathtracer/pkg/geometry"
	"github.com/softsun/go-pathtracer/pkg/material"
	"github.com/softsun/go-pathtracer/pkg/renderer"
	"github.com/softsun/go-pathtracer/pkg/texture"
)

// NewFinalScene builds the showcase scene: a floor of randomly raised green
// boxes, fog spheres, a glass sphere wrapped in blue mist, an earth sphere
// and a rotated cluster of small white spheres. The reduced variant keeps
// the render tractable for quick runs and tests.
func NewFinalScene(reduced bool, logger core.Logger) *Scene {
	random := rand.New(rand.NewSource(11))
	var world geometry.HittableList

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))

	boxesPerSide := 20
	if reduced {
		boxesPerSide = 5
	}
	w := 100.0 * (20.0 / float64(boxesPerSide))
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1.0 + 100.0*random.Float64()

			world = append(world, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+w, y1, z0+w),
				ground,
			))
		}
	}

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world = append(world, geometry.NewQuad(
		core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	world = append(world,
		geometry.NewSphere(core.NewVec3(400, 400, 200), 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass sphere filled with blue mist
	mistBoundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world = append(world,
		mistBoundary,
		geometry.NewConstantMedium(
			geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5)),
			0.02, core.NewVec3(0.2, 0.4, 0.9)),
	)

	// A whisper of global fog over the whole scene
	world = append(world, geometry.NewConstantMedium(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5)),
		0.0001, core.NewVec3(1, 1, 1)))

	earth := texture.NewImageFromFile("earthmap.jpg", logger)
	world = append(world,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)),
	)

	if !reduced {
		white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
		for s := 0; s < 1000; s++ {
			world = append(world, geometry.NewTranslate(
				geometry.NewRotateY(
					geometry.NewSphere(core.RandomVec3(0, 165, random), 10, white), 15),
				core.NewVec3(-100, 270, 395)))
		}
	}

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			ImageWidth:  400,
			AspectRatio: 1.0,
			VFov:        40,
			LookFrom:    core.NewVec3(478, 278, -600),
			LookAt:      core.NewVec3(278, 278, 0),
			VUp:         core.NewVec3(0, 1, 0),
		},
		Background: renderer.BlackBackground(),
	}
}
