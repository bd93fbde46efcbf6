package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64  // Parameter t along the ray
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, oriented against the incoming ray
	FrontFace bool     // Whether the ray hit the surface from outside
	U, V      float64  // Texture coordinates in [0,1]
	Material  Material // Material of the hit object
}

// SetFaceNormal orients the normal against the incoming ray and records
// which side of the surface was hit
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) <= 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
