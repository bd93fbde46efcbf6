package texture

import (
	"github.com/softsun/go-pathtracer/pkg/core"
)

// Solid is a texture with a single uniform color
type Solid struct {
	Albedo core.Vec3
}

// NewSolid creates a new solid color texture
func NewSolid(albedo core.Vec3) *Solid {
	return &Solid{Albedo: albedo}
}

// Value returns the solid color regardless of UV or position
func (s *Solid) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Albedo
}
