package scene

import (
	"github.com/softsun/go-pathtracer/pkg/core"
	"github.com/softsun/go-pathtracer/pkg/geometry"
	"github.com/softsun/go-pathtracer/pkg/renderer"
)

// Scene contains everything needed for a render: the world, the camera
// configuration and the background. The world is built once and treated as
// read-only by the renderer.
type Scene struct {
	World        geometry.HittableList
	CameraConfig renderer.CameraConfig
	Background   core.Background
}

// NewGroundSphere creates the huge sphere conventionally used as a ground
// plane in sphere scenes
func NewGroundSphere(material core.Material) *geometry.Sphere {
	return geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material)
}
