package material

import (
	"math/rand"

	"github.com/softsun/go-pathtracer/pkg/core"
	"github.com/softsun/go-pathtracer/pkg/texture"
)

// DiffuseLight is a light-emitting material. It never scatters; paths end
// at its surface with the emitted radiance.
type DiffuseLight struct {
	Emit core.Texture
}

// NewDiffuseLight creates a light with a solid emission color
func NewDiffuseLight(emit core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolid(emit)}
}

// NewTexturedDiffuseLight creates a light with a textured emission
func NewTexturedDiffuseLight(emit core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements the Material interface; lights absorb incoming paths
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the emission texture value at the hit point
func (d *DiffuseLight) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return d.Emit.Value(u, v, point)
}
