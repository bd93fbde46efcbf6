package material

import (
	"math/rand"

	"github.com/softsun/go-pathtracer/pkg/core"
	"github.com/softsun/go-pathtracer/pkg/texture"
)

// Isotropic scatters uniformly in all directions. It is the phase function
// of constant-density volumes.
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolid(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a texture
func NewTexturedIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface; the outgoing direction is a
// uniform random point on the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, core.RandomUnitVector(random)),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

// Emitted returns no light
func (i *Isotropic) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
