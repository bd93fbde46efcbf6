package texture

import (
	"math"

	"github.com/softsun/go-pathtracer/pkg/core"
)

// Checker is a 3D checkerboard texture that alternates between two
// sub-textures based on the spatial cell the point falls in
type Checker struct {
	Scale float64
	Even  core.Texture
	Odd   core.Texture
}

// NewChecker creates a checker texture from two solid colors
func NewChecker(scale float64, even, odd core.Vec3) *Checker {
	return &Checker{
		Scale: scale,
		Even:  NewSolid(even),
		Odd:   NewSolid(odd),
	}
}

// NewCheckerFromTextures creates a checker texture from two sub-textures
func NewCheckerFromTextures(scale float64, even, odd core.Texture) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// Value selects a sub-texture by cell parity. Floor (not truncation) keeps
// the parity correct on the negative side of each axis.
func (c *Checker) Value(u, v float64, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.Scale * point.X))
	y := int(math.Floor(c.Scale * point.Y))
	z := int(math.Floor(c.Scale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, point)
	}
	return c.Odd.Value(u, v, point)
}
