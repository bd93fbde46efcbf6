package material

import (
	"math/rand"

	"github.com/softsun/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz is clamped to at most 1.
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering.
// The fuzzed direction is accepted even if it dips below the surface,
// matching the renderer this visual output is calibrated against.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal)
	if m.Fuzz > 0 {
		perturbation := core.RandomUnitVector(random).Multiply(m.Fuzz)
		reflected = reflected.Normalize().Add(perturbation)
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}

// Emitted returns no light; metals only reflect
func (m *Metal) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
