package geometry

import (
	"math"
	"math/rand"

	"github.com/softsun/go-pathtracer/pkg/core"
	"github.com/softsun/go-pathtracer/pkg/material"
)

// boundaryEpsilon nudges the second boundary test past the first hit to
// avoid re-intersecting the same surface
const boundaryEpsilon = 1e-4

// ConstantMedium is a participating volume of uniform density bounded by
// another hittable. A ray passing through may scatter at a randomly sampled
// free-path distance; the phase function is always isotropic.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium creates a volume with a solid scattering color
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// NewTexturedConstantMedium creates a volume with a textured scattering color
func NewTexturedConstantMedium(boundary core.Hittable, density float64, albedo core.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// Hit finds where the ray enters and exits the boundary, then samples an
// exponential free path; the medium scatters only if that path ends inside
// the boundary span
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	entry, isHit := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), random)
	if !isHit {
		return nil, false
	}

	exit, isHit := m.Boundary.Hit(ray, entry.T+boundaryEpsilon, math.Inf(1), random)
	if !isHit {
		return nil, false
	}

	tEntry := math.Max(entry.T, tMin)
	tExit := math.Min(exit.T, tMax)
	if tEntry >= tExit {
		return nil, false
	}
	if tEntry < 0 {
		tEntry = 0
	}

	// The ray direction is normalized, so its original length converts the
	// parametric span into a physical distance
	distanceInsideBoundary := (tExit - tEntry) * ray.Length
	hitDistance := m.negInvDensity * math.Log(random.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := tEntry + hitDistance/ray.Length
	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: m.PhaseFunction,
		// Normal and front face are arbitrary for a scattering event
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
	}, true
}
