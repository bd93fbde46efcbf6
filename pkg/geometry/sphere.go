package geometry

import (
	"math"
	"math/rand"

	"github.com/softsun/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Prefer the nearer root, falling back to the farther one when the
	// nearer is behind tMin (ray origin inside the sphere)
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= tMin {
		root = (-halfB + sqrtD) / a
		if root <= tMin {
			return nil, false
		}
	}
	if root > tMax {
		return nil, false
	}

	outwardNormal := ray.At(root).Subtract(s.Center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		U:        u,
		V:        v,
		Material: s.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to texture coordinates using
// spherical parameterization: u from the azimuth, v from the polar angle
func sphereUV(p core.Vec3) (u, v float64) {
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	theta := math.Acos(-p.Y)

	return phi / (2 * math.Pi), theta / math.Pi
}
