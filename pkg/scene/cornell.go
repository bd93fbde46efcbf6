package scene

import (
	"github.com/softsun/go-pathtracer/pkg/core"
	"github.com/softsun/go-pathtracer/pkg/geometry"
	"github.com/softsun/go-pathtracer/pkg/material"
	"github.com/softsun/go-pathtracer/pkg/renderer"
)

// cornellWalls builds the five walls of the standard 555-unit Cornell box
// plus the ceiling light
func cornellWalls(lightEmission core.Vec3, lightCorner, lightU, lightV core.Vec3) geometry.HittableList {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(lightEmission)

	return geometry.HittableList{
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green), // left
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),     // right
		geometry.NewQuad(lightCorner, lightU, lightV, light),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),       // floor
		geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white), // ceiling
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),     // back
	}
}

// cornellCamera is the standard Cornell box viewpoint
func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		ImageWidth:  400,
		AspectRatio: 1.0,
		VFov:        40,
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
	}
}

// NewCornellScene builds the Cornell box with two rotated white boxes
func NewCornellScene() *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	world := cornellWalls(
		core.NewVec3(15, 15, 15),
		core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105),
	)

	tall := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295))
	short := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65))

	world = append(world, tall, short)

	return &Scene{
		World:        world,
		CameraConfig: cornellCamera(),
		Background:   renderer.BlackBackground(),
	}
}

// NewCornellSmokeScene builds the Cornell box with the two boxes replaced by
// constant-density smoke volumes, one black and one white
func NewCornellSmokeScene() *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	world := cornellWalls(
		core.NewVec3(7, 7, 7),
		core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305),
	)

	tall := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295))
	short := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65))

	world = append(world,
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return &Scene{
		World:        world,
		CameraConfig: cornellCamera(),
		Background:   renderer.BlackBackground(),
	}
}
