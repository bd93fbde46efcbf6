package core

import "math/rand"

// Hittable is implemented by anything a ray can intersect
type Hittable interface {
	// Hit tests the ray against the surface over the open interval (tMin, tMax)
	// and returns the nearest intersection, if any. The rng exists for
	// probabilistic surfaces (constant-density media); solid shapes ignore it.
	Hit(ray Ray, tMin, tMax float64, random *rand.Rand) (*HitRecord, bool)
}

// Material decides how light interacts with a surface
type Material interface {
	// Scatter returns the outgoing ray and attenuation for a hit, or false if
	// the material absorbs the path (lights and other non-scattering surfaces)
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)

	// Emitted returns the light emitted at the hit point; zero for
	// everything except light sources
	Emitted(u, v float64, point Vec3) Vec3
}

// Texture maps surface coordinates and/or a world position to a color
type Texture interface {
	Value(u, v float64, point Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation applied to light carried back
}

// Background returns the radiance arriving from a direction that hit nothing
type Background func(direction Vec3) Vec3

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
