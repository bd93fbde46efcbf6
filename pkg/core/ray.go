package core

// Ray represents a ray with an origin and a unit direction.
// Length keeps the magnitude of the direction the ray was built from;
// constant-density media need it to turn parametric spans into distances.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Length    float64
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		Length:    direction.Length(),
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
